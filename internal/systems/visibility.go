package systems

import (
	"math"

	"github.com/szydell/ufoai/internal/domain"
)

// Точки тела, по которым проверяется видимость.
// low=true - точка закрывается низким укрытием.
var (
	standingSamples = []bool{true, true, false} // ноги, корпус, голова
	crouchedSamples = []bool{true, true}        // в присяде головы над укрытием не видно
)

// frustumCos - косинус половины угла обзора (120 градусов)
var frustumCos = math.Cos(60 * math.Pi / 180)

// VisibilityFraction возвращает долю видимых точек тела юнита,
// если бы он стоял в клетке at. Наблюдатель задан мировыми координатами.
// Состояние мира не меняется.
func (b *Battlefield) VisibilityFraction(observer domain.Vec3, observed *domain.Unit, at domain.GridPos, night bool) float64 {
	w := b.World
	from := VecToGrid(observer)

	dist := observer.DistanceTo(at.Vec())
	maxDist := w.VisDist
	if night && w.Night {
		maxDist /= 2
	}
	if dist > maxDist {
		return domain.ActorVis0
	}

	samples := standingSamples
	if observed.IsCrouched() {
		samples = crouchedSamples
	}

	visible := 0
	for _, low := range samples {
		if HasLineOfSight(w, from, at, low) {
			visible++
		}
	}
	return float64(visible) / float64(len(samples))
}

// IsVisibleToTeam - видит ли хоть один живой юнит из команд mask юнита u в клетке at.
// Направление взгляда наблюдателей не учитывается.
func (b *Battlefield) IsVisibleToTeam(u *domain.Unit, at domain.GridPos, mask domain.TeamMask) bool {
	for _, obs := range b.World.Units {
		if obs == u || obs.IsDead() || !mask.Has(obs.Team) {
			continue
		}
		if b.VisibilityFraction(obs.Origin(), u, at, true) > domain.ActorVis0 {
			return true
		}
	}
	return false
}

// InFrustum - попадает ли точка в сектор обзора наблюдателя
func (b *Battlefield) InFrustum(observer *domain.Unit, point domain.Vec3) bool {
	delta := point.Sub(observer.Origin())
	delta.Z = 0
	if delta.Length() < domain.UnitSize*1.5 {
		return true
	}
	d := domain.DirVecs[observer.Dir&7]
	facing := domain.Vec3{X: float64(d[0]), Y: float64(d[1])}.Normalize()
	return facing.Dot(delta.Normalize()) >= frustumCos
}

// sees - наблюдатель видит юнита там, где тот стоит (с учетом сектора обзора)
func (b *Battlefield) sees(observer, target *domain.Unit) bool {
	if !b.InFrustum(observer, target.Origin()) {
		return false
	}
	return b.VisibilityFraction(observer.Origin(), target, target.Pos, true) > domain.ActorVis0
}
