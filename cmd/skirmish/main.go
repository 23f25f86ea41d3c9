package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"sort"
	"syscall"

	"github.com/sirupsen/logrus"

	"github.com/szydell/ufoai/internal/config"
	"github.com/szydell/ufoai/internal/domain"
	"github.com/szydell/ufoai/internal/engine"
	"github.com/szydell/ufoai/internal/telemetry"
	"github.com/szydell/ufoai/internal/version"
	"github.com/szydell/ufoai/pkg/logger"
)

func init() {
	logger.Init()
}

func main() {
	// 1. Флаги. Они перекрывают файл настроек и окружение.
	var (
		configPath string
		dataDir    string
		seed       int64
		maxFrames  int
	)
	flag.StringVar(&configPath, "config", "", "Path to settings YAML (optional)")
	flag.StringVar(&dataDir, "data", "", "Directory with items/teamdefs/equipment/map YAML")
	flag.Int64Var(&seed, "seed", 0, "Master seed (0 for settings or random)")
	flag.IntVar(&maxFrames, "frames", 10000, "Frame limit (0 for no limit)")
	flag.Parse()

	settings, err := config.LoadSettings(configPath)
	if err != nil {
		logger.Log.Fatalf("Failed to load settings: %v", err)
	}
	if dataDir != "" {
		settings.DataDir = dataDir
	}
	if seed != 0 {
		settings.Seed = seed
	}

	logger.InitWith(settings.Log.Level, settings.Log.Format, os.Stdout)
	build := version.Current()
	logger.Log.WithFields(build.Fields()).Info(build.String())

	// 2. Данные и метрики
	catalog, err := config.LoadCatalog(settings.DataDir, settings.Mission.Map)
	if err != nil {
		logger.Log.Fatalf("Failed to load catalog: %v", err)
	}
	metrics, err := telemetry.New()
	if err != nil {
		logger.Log.Fatalf("Failed to create metrics: %v", err)
	}

	battle, err := engine.BuildSkirmish(settings, catalog, metrics)
	if err != nil {
		logger.Log.Fatalf("Failed to build skirmish: %v", err)
	}
	logger.Log.Infof("🎲 Master seed: %d", battle.Config.Seed)

	// 3. Бой до конца, предела кадров или Ctrl+C
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	sum := battle.Run(ctx, maxFrames)
	printSummary(sum)
}

func printSummary(sum engine.Summary) {
	teams := make([]domain.Team, 0, len(sum.Survivors))
	for t := range sum.Survivors {
		teams = append(teams, t)
	}
	sort.Slice(teams, func(i, j int) bool { return teams[i] < teams[j] })

	fields := logrus.Fields{
		"battle_id": sum.BattleID,
		"frames":    sum.Frames,
		"rounds":    sum.Rounds,
		"cancelled": sum.Cancelled,
	}
	for _, t := range teams {
		fields["survivors_"+t.String()] = sum.Survivors[t]
	}

	result := "draw"
	if sum.HasWinner {
		result = fmt.Sprintf("%s wins", sum.Winner)
	}
	logger.Log.WithFields(fields).Info("Skirmish result: " + result)
}
