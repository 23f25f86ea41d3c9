package systems

import (
	"container/heap"

	"github.com/szydell/ufoai/internal/domain"
)

// StepCost возвращает стоимость шага в TU.
func StepCost(diagonal, crouched bool) int {
	cost := domain.TUMoveStraight
	if diagonal {
		cost = domain.TUMoveDiagonal
	}
	if crouched {
		cost = int(float64(cost) * domain.CrouchMoveFactor)
	}
	return cost
}

// routeResult - таблица стоимостей плюс предки для восстановления пути
type routeResult struct {
	table  *domain.RouteTable
	parent map[domain.GridPos]domain.GridPos
}

// computeRoutes - Дейкстра по сетке. Клетки с живыми юнитами (кроме mover) заняты.
// Диагональный шаг запрещен, если срезает угол о стену.
func computeRoutes(w *domain.World, mover *domain.Unit, origin domain.GridPos, crouched bool, maxRange int) routeResult {
	res := routeResult{
		table:  domain.NewRouteTable(w, origin, crouched, maxRange),
		parent: make(map[domain.GridPos]domain.GridPos),
	}
	if !w.InBounds(origin) {
		return res
	}

	occupied := make(map[domain.GridPos]bool)
	for _, u := range w.Units {
		if u != mover && !u.IsDead() {
			occupied[u.Pos] = true
		}
	}

	passable := func(p domain.GridPos) bool {
		return w.IsWalkable(p) && !occupied[p]
	}

	pq := make(routeQueue, 0)
	items := make(map[domain.GridPos]*routeItem)
	done := make(map[domain.GridPos]bool)

	start := &routeItem{Pos: origin, Priority: 0}
	heap.Push(&pq, start)
	items[origin] = start

	relax := func(from, to domain.GridPos, cost int) {
		if cost > maxRange || done[to] || !passable(to) {
			return
		}
		if it, ok := items[to]; ok {
			if cost < it.Priority {
				pq.update(it, cost)
				res.parent[to] = from
			}
			return
		}
		it := &routeItem{Pos: to, Priority: cost}
		heap.Push(&pq, it)
		items[to] = it
		res.parent[to] = from
	}

	for pq.Len() > 0 {
		cur := heap.Pop(&pq).(*routeItem)
		done[cur.Pos] = true
		res.table.Set(cur.Pos, cur.Priority)

		for _, d := range domain.DirVecs {
			next := cur.Pos.Shift(d[0], d[1])
			diagonal := d[0] != 0 && d[1] != 0
			if diagonal {
				// 1. Не срезаем углы
				if !passable(cur.Pos.Shift(d[0], 0)) || !passable(cur.Pos.Shift(0, d[1])) {
					continue
				}
			}
			relax(cur.Pos, next, cur.Priority+StepCost(diagonal, crouched))
		}

		// 2. Лестницы связывают соседние уровни
		if w.TileAt(cur.Pos) == domain.TileStairs {
			for _, dz := range []int{-1, 1} {
				next := domain.GridPos{X: cur.Pos.X, Y: cur.Pos.Y, Z: cur.Pos.Z + dz}
				relax(cur.Pos, next, cur.Priority+StepCost(false, crouched))
			}
		}
	}

	return res
}

// ComputeReachability считает таблицу стоимостей от origin.
// Не меняет состояние мира.
func (b *Battlefield) ComputeReachability(u *domain.Unit, origin domain.GridPos, crouched bool, maxRange int) *domain.RouteTable {
	return computeRoutes(b.World, u, origin, crouched, maxRange).table
}

// path восстанавливает путь от origin до dest (без origin). nil - пути нет.
func (r routeResult) path(dest domain.GridPos) []domain.GridPos {
	if r.table.MoveCost(dest) == domain.RouteUnreachable {
		return nil
	}
	var rev []domain.GridPos
	for p := dest; p != r.table.Origin; {
		rev = append(rev, p)
		prev, ok := r.parent[p]
		if !ok {
			return nil
		}
		p = prev
	}
	steps := make([]domain.GridPos, len(rev))
	for i := range rev {
		steps[i] = rev[len(rev)-1-i]
	}
	return steps
}
