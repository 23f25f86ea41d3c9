package ai

import "github.com/szydell/ufoai/internal/domain"

// Terms - слагаемые оценки клетки и контекст юнита.
// Встроенная стратегия просто складывает слагаемые, сценарная считает по формуле.
type Terms struct {
	Shoot    float64 // ожидаемый урон (с бонусом за убийство и шумом)
	Hide     float64
	CloseIn  float64 // атакующий сближается, оставаясь на виду
	Approach float64 // награда за близость к противнику
	Flee     float64 // гражданский: бегство и сбор
	Trap     float64 // гражданский: штраф за клетку под прицелом (<= 0)
	Lazy     float64
	Random   float64

	// Контекст (не суммируется)
	TULeft    int
	HPRatio   float64
	Morale    int
	Civilian  bool
	HasTarget bool
}

// Sum - встроенная функция полезности
func (t Terms) Sum() float64 {
	return t.Shoot + t.Hide + t.CloseIn + t.Approach + t.Flee + t.Trap + t.Lazy + t.Random
}

// Action - план хода одного юнита
type Action struct {
	To   domain.GridPos // куда идти
	Stop domain.GridPos // куда отойти после стрельбы (укрытие)

	Target  *domain.Unit // nil - стрелять не в кого
	Hand    domain.Hand
	FdIndex int
	Shots   int
	ZAlign  int

	// ExpectedDamage - ожидаемый урон без штрафов и шума
	ExpectedDamage float64

	Objective   *domain.Objective
	Waypoint    int
	HasWaypoint bool

	Score float64
	Terms Terms
}

func noAction(to domain.GridPos) Action {
	return Action{To: to, Stop: to}
}
