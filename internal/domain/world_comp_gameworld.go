package domain

import "errors"

// ErrOutOfBounds - клетка за пределами карты
var ErrOutOfBounds = errors.New("out of bounds")

func (w *World) GetIndex(p GridPos) int {
	return (p.Z*w.Height+p.Y)*w.Width + p.X
}

// InBounds проверяет границы по всем трем осям
func (w *World) InBounds(p GridPos) bool {
	return p.X >= 0 && p.X < w.Width &&
		p.Y >= 0 && p.Y < w.Height &&
		p.Z >= 0 && p.Z < w.Levels
}

// TileAt возвращает тип клетки. За пределами карты - TileVoid.
func (w *World) TileAt(p GridPos) TileKind {
	if !w.InBounds(p) {
		return TileVoid
	}
	return w.Tiles[w.GetIndex(p)]
}

func (w *World) SetTile(p GridPos, k TileKind) error {
	if !w.InBounds(p) {
		return ErrOutOfBounds
	}
	w.Tiles[w.GetIndex(p)] = k
	return nil
}

// IsWalkable - на клетку можно встать
func (w *World) IsWalkable(p GridPos) bool {
	k := w.TileAt(p)
	return k == TileFloor || k == TileStairs
}

// BlocksSight - клетка полностью закрывает обзор
func (w *World) BlocksSight(p GridPos) bool {
	k := w.TileAt(p)
	return k == TileWall || k == TileVoid
}

// BlocksLow - клетка закрывает нижнюю часть тела (низкое укрытие или стена)
func (w *World) BlocksLow(p GridPos) bool {
	return w.BlocksSight(p) || w.TileAt(p) == TileCover
}

// AddUnit регистрирует юнита и выдает ему ID
func (w *World) AddUnit(u *Unit) {
	u.ID = PackUnitID(u.Team, w.nextIndex)
	w.nextIndex++
	w.Units = append(w.Units, u)
}

// UnitAt возвращает живого юнита в клетке (или nil)
func (w *World) UnitAt(p GridPos) *Unit {
	for _, u := range w.Units {
		if u.Pos == p && !u.IsDead() {
			return u
		}
	}
	return nil
}

// LivingUnits возвращает живых юнитов в порядке появления
func (w *World) LivingUnits() []*Unit {
	res := make([]*Unit, 0, len(w.Units))
	for _, u := range w.Units {
		if !u.IsDead() {
			res = append(res, u)
		}
	}
	return res
}

// CountLiving - число живых юнитов команды
func (w *World) CountLiving(t Team) int {
	n := 0
	for _, u := range w.Units {
		if u.Team == t && !u.IsDead() {
			n++
		}
	}
	return n
}

// NextLivingOfTeam возвращает следующего живого юнита команды после after
// (after == nil - с начала списка). Без зацикливания: в конце списка - nil.
func (w *World) NextLivingOfTeam(after *Unit, t Team) *Unit {
	start := 0
	if after != nil {
		start = len(w.Units)
		for i, u := range w.Units {
			if u == after {
				start = i + 1
				break
			}
		}
	}
	for _, u := range w.Units[start:] {
		if u.Team == t && !u.IsDead() {
			return u
		}
	}
	return nil
}

// DropToFloor кладет предмет на пол
func (w *World) DropToFloor(p GridPos, it *Item) {
	if it == nil {
		return
	}
	if w.FloorItems == nil {
		w.FloorItems = make(map[GridPos][]*Item)
	}
	w.FloorItems[p] = append(w.FloorItems[p], it)
}

// SpawnPointsOf возвращает точки появления команды
func (w *World) SpawnPointsOf(t Team) []SpawnPoint {
	var res []SpawnPoint
	for _, sp := range w.SpawnPoints {
		if sp.Team == t {
			res = append(res, sp)
		}
	}
	return res
}
