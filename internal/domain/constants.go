package domain

// Геометрия поля боя
const (
	UnitSize   = 32 // мировых единиц на клетку
	UnitHeight = 64 // мировых единиц на уровень

	// DefaultVisDist - дальность зрения по умолчанию (мировые единицы)
	DefaultVisDist = 40 * UnitSize
	// MaxSpotDist - дальше этого враг не "замечает" юнита для решения о приседании
	MaxSpotDist = 768.0
)

// Стоимость действий в TU
const (
	TUMoveStraight = 2
	TUMoveDiagonal = 3
	TUCrouch       = 1 // присесть/встать
	// CrouchMoveFactor - множитель стоимости шага в присяде
	CrouchMoveFactor = 1.5

	// MaxRoute - предел таблицы стоимостей (в TU)
	MaxRoute = 255
)

// Пороги видимости
const (
	ActorVis0  = 0.0
	ActorVis50 = 0.5
)

// WaypointCountReset - значение прогресса, с которого гражданские начинают цепочку заново
const WaypointCountReset = 100
