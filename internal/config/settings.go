package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/szydell/ufoai/internal/ai"
)

// EnvPrefix - префикс переменных окружения (UFOAI_AI_ENABLED и т.п.)
const EnvPrefix = "UFOAI"

// LogSettings - уровень и формат логов
type LogSettings struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// AISettings - параметры игрока-ИИ
type AISettings struct {
	Enabled bool `mapstructure:"enabled"`
	// Cadence - ИИ действует раз в столько кадров
	Cadence int `mapstructure:"cadence"`

	Weights ai.Weights `mapstructure:"weights"`
	Policy  ai.Policy  `mapstructure:"policy"`

	// Strategies - именованные формулы полезности
	Strategies map[string]string `mapstructure:"strategies"`
	// TeamStrategy - имя стратегии для команды ("alien" -> "cautious")
	TeamStrategy map[string]string `mapstructure:"team_strategy"`
}

// Config собирает параметры для планировщика
func (s AISettings) Config() ai.Config {
	return ai.Config{Weights: s.Weights, Policy: s.Policy}
}

// MissionSettings - состав боя
type MissionSettings struct {
	Map          string `mapstructure:"map"`
	NumAliens    int    `mapstructure:"num_aliens"`
	NumCivilians int    `mapstructure:"num_civilians"`
	NumActors    int    `mapstructure:"num_actors"`
	Multiplayer  bool   `mapstructure:"multiplayer"`
	Night        bool   `mapstructure:"night"`
	Equipment    string `mapstructure:"equipment"`
	CivilianTeam string `mapstructure:"civilian_team"`
	MaxRounds    int    `mapstructure:"max_rounds"`
}

// Settings - настройки запуска
type Settings struct {
	Seed    int64           `mapstructure:"seed"`
	DataDir string          `mapstructure:"data_dir"`
	Log     LogSettings     `mapstructure:"log"`
	AI      AISettings      `mapstructure:"ai"`
	Mission MissionSettings `mapstructure:"mission"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("seed", 0)
	v.SetDefault("data_dir", "./data")

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	v.SetDefault("ai.enabled", true)
	v.SetDefault("ai.cadence", 10)
	v.SetDefault("ai.strategies", map[string]string{})
	v.SetDefault("ai.team_strategy", map[string]string{})
	v.SetDefault("ai.policy.civilian_malus_when_insane", false)

	w := ai.DefaultWeights()
	v.SetDefault("ai.weights.hide", w.Hide)
	v.SetDefault("ai.weights.close_in", w.CloseIn)
	v.SetDefault("ai.weights.kill", w.Kill)
	v.SetDefault("ai.weights.random", w.Random)
	v.SetDefault("ai.weights.reaction_eradication", w.ReactionEradication)
	v.SetDefault("ai.weights.civ_factor", w.CivFactor)
	v.SetDefault("ai.weights.civ_random", w.CivRandom)
	v.SetDefault("ai.weights.civ_laziness", w.CivLaziness)
	v.SetDefault("ai.weights.reaction_trap", w.ReactionTrap)
	v.SetDefault("ai.weights.trap_vis", w.TrapVis)
	v.SetDefault("ai.weights.mission_target", w.MissionTarget)
	v.SetDefault("ai.weights.mission_opponent_target", w.MissionOpponentTarget)
	v.SetDefault("ai.weights.run_away_dist", w.RunAwayDist)
	v.SetDefault("ai.weights.waypoint_civ_dist", w.WaypointCivDist)
	v.SetDefault("ai.weights.close_in_dist", w.CloseInDist)
	v.SetDefault("ai.weights.hide_dist", w.HideDist)
	v.SetDefault("ai.weights.search_radius", w.SearchRadius)
	v.SetDefault("ai.weights.brave_morale", w.BraveMorale)

	v.SetDefault("mission.map", "map.yaml")
	v.SetDefault("mission.num_aliens", 4)
	v.SetDefault("mission.num_civilians", 4)
	v.SetDefault("mission.num_actors", 4)
	v.SetDefault("mission.multiplayer", false)
	v.SetDefault("mission.night", false)
	v.SetDefault("mission.equipment", "alien_standard")
	v.SetDefault("mission.civilian_team", "civilian")
	v.SetDefault("mission.max_rounds", 20)
}

// LoadSettings читает настройки из YAML-файла (path может быть пустым),
// поверх накладываются переменные окружения UFOAI_*.
func LoadSettings(path string) (*Settings, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return nil, fmt.Errorf("error decoding config: %w", err)
	}
	if s.AI.Cadence <= 0 {
		return nil, fmt.Errorf("ai.cadence must be positive, got %d", s.AI.Cadence)
	}
	return &s, nil
}
