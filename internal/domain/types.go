package domain

import "fmt"

// Team - принадлежность юнита
type Team uint8

const (
	TeamCivilian Team = 0
	TeamPhalanx  Team = 1
	TeamAlien    Team = 7

	MaxTeams = 8
)

func (t Team) String() string {
	switch t {
	case TeamCivilian:
		return "civilian"
	case TeamPhalanx:
		return "phalanx"
	case TeamAlien:
		return "alien"
	}
	return fmt.Sprintf("team%d", uint8(t))
}

// ParseTeam разбирает имя команды из конфигов.
func ParseTeam(s string) (Team, error) {
	switch s {
	case "civilian":
		return TeamCivilian, nil
	case "phalanx":
		return TeamPhalanx, nil
	case "alien":
		return TeamAlien, nil
	}
	return 0, fmt.Errorf("unknown team %q", s)
}

// TeamMask - битовая маска команд
type TeamMask uint8

func MaskOf(teams ...Team) TeamMask {
	var m TeamMask
	for _, t := range teams {
		m |= 1 << t
	}
	return m
}

// AllExcept - все команды кроме указанной (аналог "-team" в видимости)
func AllExcept(t Team) TeamMask {
	return ^MaskOf(t)
}

func (m TeamMask) Has(t Team) bool {
	return m&(1<<t) != 0
}

// StateFlags - флаги состояния юнита
type StateFlags uint16

const (
	StateCrouched StateFlags = 1 << iota
	StateReaction
	StatePanic
	StateRage
	StateInsane
	StateDead
)

func (s StateFlags) Has(f StateFlags) bool { return s&f != 0 }

// Hand - рука, из которой стреляем
type Hand uint8

const (
	HandRight Hand = iota
	HandLeft
	NumHands
)

func (h Hand) String() string {
	if h == HandLeft {
		return "left"
	}
	return "right"
}

// TileKind - тип клетки сетки
type TileKind uint8

const (
	TileFloor  TileKind = iota
	TileWall            // непроходимо, непрозрачно
	TileCover           // низкое укрытие: непроходимо, закрывает только нижнюю часть тела
	TileStairs          // проход на соседний уровень
	TileVoid            // вне карты
)

// Направления (против часовой, шаг 45 градусов, 0 = +X)
var DirVecs = [8][2]int{
	{1, 0}, {1, 1}, {0, 1}, {-1, 1},
	{-1, 0}, {-1, -1}, {0, -1}, {1, -1},
}
