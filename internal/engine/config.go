package engine

import (
	"time"

	"github.com/szydell/ufoai/internal/config"
)

// Config хранит параметры боя
type Config struct {
	// Seed - мастер-зерно. 0 - взять от времени.
	Seed int64

	AIEnabled bool
	// Cadence - ИИ действует раз в столько кадров
	Cadence int

	NumAliens    int
	NumCivilians int
	NumActors    int
	Multiplayer  bool
	Equipment    string
	CivilianTeam string

	// MaxRounds - предел раундов (0 - без предела)
	MaxRounds int
	// TeamStrategy - имя стратегии по команде
	TeamStrategy map[string]string
}

// NewConfig создает конфиг по умолчанию (случайный сид)
func NewConfig() Config {
	return Config{
		Seed:         time.Now().UnixNano(),
		AIEnabled:    true,
		Cadence:      10,
		NumAliens:    4,
		NumCivilians: 4,
		NumActors:    4,
		Equipment:    "alien_standard",
		CivilianTeam: "civilian",
		MaxRounds:    20,
	}
}

// ConfigFromSettings переносит настройки запуска в конфиг боя
func ConfigFromSettings(s *config.Settings) Config {
	cfg := Config{
		Seed:         s.Seed,
		AIEnabled:    s.AI.Enabled,
		Cadence:      s.AI.Cadence,
		NumAliens:    s.Mission.NumAliens,
		NumCivilians: s.Mission.NumCivilians,
		NumActors:    s.Mission.NumActors,
		Multiplayer:  s.Mission.Multiplayer,
		Equipment:    s.Mission.Equipment,
		CivilianTeam: s.Mission.CivilianTeam,
		MaxRounds:    s.Mission.MaxRounds,
		TeamStrategy: s.AI.TeamStrategy,
	}
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	return cfg
}
