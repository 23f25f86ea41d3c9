package engine

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/szydell/ufoai/internal/ai"
	"github.com/szydell/ufoai/internal/config"
	"github.com/szydell/ufoai/internal/domain"
	"github.com/szydell/ufoai/internal/systems"
	"github.com/szydell/ufoai/internal/telemetry"
	"github.com/szydell/ufoai/pkg/logger"
	"github.com/szydell/ufoai/pkg/mapgen"
	"github.com/szydell/ufoai/pkg/utils"
)

// spawnOrder - порядок появления команд (и порядок в списке юнитов)
var spawnOrder = []domain.Team{domain.TeamPhalanx, domain.TeamCivilian, domain.TeamAlien}

// BuildSkirmish собирает бой: мир по карте каталога (или сгенерированной, если
// карты нет), стратегии из настроек, игроки ИИ для всех команд с точками появления.
func BuildSkirmish(s *config.Settings, cat *config.Catalog, metrics *telemetry.Metrics) (*Battle, error) {
	cfg := ConfigFromSettings(s)
	rng := utils.NewRand(cfg.Seed)

	if cat.Map == nil {
		cat.Map = mapgen.Generate(rng, max(cfg.NumAliens, cfg.NumActors, cfg.NumCivilians))
	}
	w, err := cat.BuildWorld()
	if err != nil {
		return nil, fmt.Errorf("build world: %w", err)
	}
	w.Multiplayer = cfg.Multiplayer
	w.Night = w.Night || s.Mission.Night

	deps := ai.NewDeps(w, systems.NewBattlefield(w, rng), rng, metrics)

	strategies, err := buildStrategies(deps, s)
	if err != nil {
		return nil, err
	}
	for team, name := range cfg.TeamStrategy {
		if _, ok := strategies[name]; !ok && name != ai.StrategyBuiltin {
			return nil, fmt.Errorf("team %s: unknown strategy %q", team, name)
		}
	}

	exec := ai.NewExecutor(deps, ai.NewBuiltinStrategy(deps, s.AI.Config()), strategies)
	sched := NewScheduler(w, exec, cfg.Cadence, metrics)
	spawner := NewSpawner(w, cat, cfg, rng)

	for _, team := range spawnOrder {
		if len(w.SpawnPointsOf(team)) == 0 {
			continue
		}
		p, err := spawner.CreatePlayer(team)
		if err != nil {
			return nil, fmt.Errorf("create %s player: %w", team, err)
		}
		sched.AddPlayer(p)
	}

	logger.Log.WithFields(logrus.Fields{
		"component":  "skirmish",
		"map":        cat.Map.Name,
		"seed":       cfg.Seed,
		"units":      len(w.Units),
		"strategies": len(strategies),
	}).Info("Skirmish assembled")

	return NewBattle(w, sched, cfg), nil
}

func buildStrategies(deps ai.Deps, s *config.Settings) (map[string]ai.Strategy, error) {
	res := make(map[string]ai.Strategy, len(s.AI.Strategies))
	for name, src := range s.AI.Strategies {
		st, err := ai.NewScriptedStrategy(deps, s.AI.Config(), name, src)
		if err != nil {
			return nil, err
		}
		res[name] = st
	}
	return res, nil
}
