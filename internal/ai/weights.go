package ai

// NothingFound - оценка "кандидата нет"
const NothingFound = -10000.0

// Weights - веса и пределы оценки клеток
type Weights struct {
	Hide                float64 `mapstructure:"hide"`
	CloseIn             float64 `mapstructure:"close_in"`
	Kill                float64 `mapstructure:"kill"`
	Random              float64 `mapstructure:"random"`
	ReactionEradication float64 `mapstructure:"reaction_eradication"`
	// CivFactor - множитель урона по гражданским
	CivFactor float64 `mapstructure:"civ_factor"`

	CivRandom   float64 `mapstructure:"civ_random"`
	CivLaziness float64 `mapstructure:"civ_laziness"`
	// ReactionTrap - штраф гражданскому за клетку под прицелом врага
	ReactionTrap float64 `mapstructure:"reaction_trap"`
	TrapVis      float64 `mapstructure:"trap_vis"`

	MissionTarget         float64 `mapstructure:"mission_target"`
	MissionOpponentTarget float64 `mapstructure:"mission_opponent_target"`

	// Дистанции
	RunAwayDist     int     `mapstructure:"run_away_dist"` // клеток
	WaypointCivDist float64 `mapstructure:"waypoint_civ_dist"`
	CloseInDist     float64 `mapstructure:"close_in_dist"`
	HideDist        int     `mapstructure:"hide_dist"`     // полуширина окна поиска укрытия
	SearchRadius    int     `mapstructure:"search_radius"` // полуширина окна планировщика

	// BraveMorale - мораль выше порога позволяет не прятаться
	BraveMorale int `mapstructure:"brave_morale"`
}

func DefaultWeights() Weights {
	return Weights{
		Hide:                  60,
		CloseIn:               20,
		Kill:                  30,
		Random:                10,
		ReactionEradication:   30,
		CivFactor:             0.25,
		CivRandom:             10,
		CivLaziness:           5,
		ReactionTrap:          25,
		TrapVis:               0.25,
		MissionTarget:         60,
		MissionOpponentTarget: 50,
		RunAwayDist:           160,
		WaypointCivDist:       768,
		CloseInDist:           1200,
		HideDist:              7,
		SearchRadius:          30,
		BraveMorale:           85,
	}
}

// Policy - спорные правила, которые выбираются конфигурацией
type Policy struct {
	// CivilianMalusWhenInsane: безумный стрелок тоже получает штраф за гражданских.
	// По умолчанию выключено: безумие снимает все ограничения.
	CivilianMalusWhenInsane bool `mapstructure:"civilian_malus_when_insane"`
}

// Config - полный набор параметров ИИ
type Config struct {
	Weights Weights `mapstructure:"weights"`
	Policy  Policy  `mapstructure:"policy"`
}

func DefaultConfig() Config {
	return Config{Weights: DefaultWeights()}
}
