package ai

import (
	"math/rand"

	"github.com/szydell/ufoai/internal/domain"
	"github.com/szydell/ufoai/internal/telemetry"
)

// Pathing - оракул стоимости путей
type Pathing interface {
	ComputeReachability(u *domain.Unit, origin domain.GridPos, crouched bool, maxRange int) *domain.RouteTable
}

// Visibility - оракул видимости. Ничего не меняет в мире.
type Visibility interface {
	VisibilityFraction(observer domain.Vec3, observed *domain.Unit, at domain.GridPos, night bool) float64
	IsVisibleToTeam(u *domain.Unit, at domain.GridPos, mask domain.TeamMask) bool
	InFrustum(observer *domain.Unit, point domain.Vec3) bool
}

// Mover меняет позицию и позу юнита
type Mover interface {
	CommitMove(u *domain.Unit, dest domain.GridPos, stopOnSight domain.TeamMask) domain.MoveResult
	ChangeCrouch(u *domain.Unit, crouched bool) bool
	Turn(u *domain.Unit, dir int)
}

// Shooter разрешает выстрелы
type Shooter interface {
	ApplyShot(u *domain.Unit, target domain.GridPos, hand domain.Hand, fdIndex int, zAlign int) domain.ShotResult
}

// Armoury - операции с инвентарем
type Armoury interface {
	CanReload(u *domain.Unit, hand domain.Hand) bool
	Reload(u *domain.Unit, hand domain.Hand) bool
	DropToFloor(u *domain.Unit, hand domain.Hand)
	DrawWeapon(u *domain.Unit) bool
}

// Engine - все внешние системы сразу (их реализует systems.Battlefield)
type Engine interface {
	Pathing
	Visibility
	Mover
	Shooter
	Armoury
}

// Deps - то, с чем работает ИИ. Отдельные поля можно подменить в тестах.
type Deps struct {
	World   *domain.World
	Path    Pathing
	Vis     Visibility
	Mover   Mover
	Shooter Shooter
	Armoury Armoury
	Rng     *rand.Rand
	Metrics *telemetry.Metrics
}

// NewDeps раскладывает один движок по всем ролям
func NewDeps(w *domain.World, eng Engine, rng *rand.Rand, metrics *telemetry.Metrics) Deps {
	return Deps{
		World:   w,
		Path:    eng,
		Vis:     eng,
		Mover:   eng,
		Shooter: eng,
		Armoury: eng,
		Rng:     rng,
		Metrics: metrics,
	}
}
