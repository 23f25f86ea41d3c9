package domain

// RouteUnreachable - стоимость недостижимой клетки
const RouteUnreachable = -1

// RouteTable - стоимость пути до каждой клетки от одной точки.
// Считается один раз за ход и дальше только читается.
type RouteTable struct {
	Origin   GridPos
	Crouched bool
	MaxRange int

	width, height, levels int
	cost                  []int
}

// NewRouteTable создает таблицу, где все клетки недостижимы
func NewRouteTable(w *World, origin GridPos, crouched bool, maxRange int) *RouteTable {
	rt := &RouteTable{
		Origin:   origin,
		Crouched: crouched,
		MaxRange: maxRange,
		width:    w.Width,
		height:   w.Height,
		levels:   w.Levels,
		cost:     make([]int, w.Width*w.Height*w.Levels),
	}
	for i := range rt.cost {
		rt.cost[i] = RouteUnreachable
	}
	return rt
}

func (rt *RouteTable) index(p GridPos) (int, bool) {
	if p.X < 0 || p.X >= rt.width || p.Y < 0 || p.Y >= rt.height || p.Z < 0 || p.Z >= rt.levels {
		return 0, false
	}
	return (p.Z*rt.height+p.Y)*rt.width + p.X, true
}

// MoveCost возвращает стоимость пути в TU или RouteUnreachable
func (rt *RouteTable) MoveCost(p GridPos) int {
	if rt == nil {
		return RouteUnreachable
	}
	idx, ok := rt.index(p)
	if !ok {
		return RouteUnreachable
	}
	return rt.cost[idx]
}

// Set записывает стоимость (используется оракулом путей)
func (rt *RouteTable) Set(p GridPos, cost int) {
	if idx, ok := rt.index(p); ok {
		rt.cost[idx] = cost
	}
}

// Reachable - клетка достижима не дороже budget
func (rt *RouteTable) Reachable(p GridPos, budget int) bool {
	c := rt.MoveCost(p)
	return c != RouteUnreachable && c <= budget
}
