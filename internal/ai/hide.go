package ai

import "github.com/szydell/ufoai/internal/domain"

// hideSpot - результат поиска укрытия
type hideSpot struct {
	Stop    domain.GridPos
	Cost    int
	Found   bool
	Checked int // сколько клеток проверено
}

// findHideSpot ищет ближайшую по порядку обхода клетку в окне ±HideDist вокруг to,
// куда можно дойти за budget TU и где юнита не видит ни одна чужая команда.
// Обход: y снаружи, x внутри. Таблица путей строится от to, а не от юнита.
func (s *Scorer) findHideSpot(u *domain.Unit, to domain.GridPos, budget int) hideSpot {
	var res hideSpot
	if budget <= 0 {
		return res
	}
	maxRange := budget
	if maxRange > domain.MaxRoute {
		maxRange = domain.MaxRoute
	}
	rt := s.Path.ComputeReachability(u, to, u.IsCrouched(), maxRange)

	r := s.Weights.HideDist
	minX, maxX := clamp(to.X-r, 0, s.World.Width-1), clamp(to.X+r, 0, s.World.Width-1)
	minY, maxY := clamp(to.Y-r, 0, s.World.Height-1), clamp(to.Y+r, 0, s.World.Height-1)
	hostile := domain.AllExcept(u.Team)

	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			p := domain.GridPos{X: x, Y: y, Z: to.Z}
			res.Checked++

			delta := rt.MoveCost(p)
			if delta == domain.RouteUnreachable || delta > budget {
				continue
			}
			if s.Vis.IsVisibleToTeam(u, p, hostile) {
				continue
			}
			res.Stop, res.Cost, res.Found = p, delta, true
			return res
		}
	}
	return res
}

// shouldCrouch - кто-то из врагов смотрит в сторону юнита, стоит близко
// и видит его хотя бы наполовину
func shouldCrouch(w *domain.World, vis Visibility, u *domain.Unit) bool {
	for _, check := range w.Units {
		if check == u || check.IsDead() {
			continue
		}
		if check.Team == u.Team || check.IsCivilian() {
			continue
		}
		if !vis.InFrustum(check, u.Origin()) {
			continue
		}
		if check.Origin().DistanceTo(u.Origin()) > domain.MaxSpotDist {
			continue
		}
		if vis.VisibilityFraction(check.Origin(), u, u.Pos, true) >= domain.ActorVis50 {
			return true
		}
	}
	return false
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
