package domain

// Waypoint - маркер цепочки для гражданских. Чем меньше Count, тем ближе к финалу.
type Waypoint struct {
	Pos   GridPos `yaml:"pos"`
	Count int     `yaml:"count"`
}

// Objective - цель миссии, принадлежащая команде
type Objective struct {
	Name string  `yaml:"name"`
	Pos  GridPos `yaml:"pos"`
	Team Team    `yaml:"-"`
}

// SpawnPoint - точка появления юнита команды
type SpawnPoint struct {
	Pos  GridPos `yaml:"pos"`
	Team Team    `yaml:"-"`
}

// World - явный контекст боя: сетка, юниты, маркеры карты.
// Передается скорерам и исполнителю вместо глобальных массивов.
type World struct {
	Width  int
	Height int
	Levels int
	Tiles  []TileKind // индекс: (z*Height + y)*Width + x

	// Юниты в порядке появления. Порядок важен для планировщика.
	Units []*Unit

	// Waypoints - упорядоченная цепочка (порядок = порядок на карте)
	Waypoints   []Waypoint
	Objectives  []Objective
	SpawnPoints []SpawnPoint

	// Предметы на полу
	FloorItems map[GridPos][]*Item

	ActiveTeam  Team
	Round       int
	Multiplayer bool
	Night       bool
	VisDist     float64

	nextIndex uint32
}

// NewWorld создает пустую карту, залитую полом
func NewWorld(width, height, levels int) *World {
	w := &World{
		Width:      width,
		Height:     height,
		Levels:     levels,
		Tiles:      make([]TileKind, width*height*levels),
		FloorItems: make(map[GridPos][]*Item),
		VisDist:    DefaultVisDist,
		ActiveTeam: TeamAlien,
	}
	return w
}
