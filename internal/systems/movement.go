package systems

import (
	"github.com/sirupsen/logrus"

	"github.com/szydell/ufoai/internal/domain"
	"github.com/szydell/ufoai/pkg/logger"
)

// CommitMove ведет юнита по кратчайшему пути до dest шаг за шагом.
// После каждого шага противники на реакции могут выстрелить.
// stopOnSight != 0: остановиться, как только команды из маски заметят нового врага.
func (b *Battlefield) CommitMove(u *domain.Unit, dest domain.GridPos, stopOnSight domain.TeamMask) domain.MoveResult {
	moveLogger := logger.Log.WithFields(logrus.Fields{
		"component": "movement_system",
		"unit_id":   u.ID,
		"from":      u.Pos,
		"to":        dest,
	})

	var res domain.MoveResult
	if u.Pos == dest {
		res.Reached = true
		return res
	}

	crouched := u.IsCrouched()
	routes := computeRoutes(b.World, u, u.Pos, crouched, domain.MaxRoute)
	steps := routes.path(dest)
	if steps == nil {
		res.StoppedBy = "unreachable"
		moveLogger.Debug("Move aborted: destination unreachable.")
		return res
	}

	var seen map[*domain.Unit]bool
	if stopOnSight != 0 {
		seen = b.visibleEnemies(stopOnSight)
	}

	prev := u.Pos
	for _, next := range steps {
		diagonal := next.X != prev.X && next.Y != prev.Y
		cost := StepCost(diagonal, crouched)
		if u.TU < cost {
			res.StoppedBy = "tu"
			break
		}
		u.TU -= cost
		if dir := prev.DirectionTo(next); dir >= 0 {
			u.Dir = dir
		}
		u.Pos = next
		prev = next
		res.Steps++

		// 1. Реакция противника на движение
		b.ReactionFire(u)
		if u.IsDead() {
			res.StoppedBy = "died"
			break
		}

		// 2. Заметили нового врага - стоп
		if seen != nil {
			if newlySpotted(b.visibleEnemies(stopOnSight), seen) {
				res.StoppedBy = "spotted"
				break
			}
		}
	}

	res.Reached = u.Pos == dest && !u.IsDead()
	moveLogger.WithFields(logrus.Fields{
		"steps":      res.Steps,
		"reached":    res.Reached,
		"stopped_by": res.StoppedBy,
		"tu_left":    u.TU,
	}).Debug("Move finished.")
	return res
}

// visibleEnemies - юниты других команд, которых видит хоть кто-то из mask
func (b *Battlefield) visibleEnemies(mask domain.TeamMask) map[*domain.Unit]bool {
	res := make(map[*domain.Unit]bool)
	living := b.World.LivingUnits()
	for _, target := range living {
		if mask.Has(target.Team) {
			continue
		}
		for _, obs := range living {
			if !mask.Has(obs.Team) {
				continue
			}
			if b.VisibilityFraction(obs.Origin(), target, target.Pos, true) > domain.ActorVis0 {
				res[target] = true
				break
			}
		}
	}
	return res
}

func newlySpotted(now, before map[*domain.Unit]bool) bool {
	for u := range now {
		if !before[u] {
			return true
		}
	}
	return false
}

// ChangeCrouch меняет позу. Возвращает false, если не хватило TU.
func (b *Battlefield) ChangeCrouch(u *domain.Unit, crouched bool) bool {
	if u.IsCrouched() == crouched {
		return true
	}
	if u.TU < domain.TUCrouch {
		return false
	}
	u.TU -= domain.TUCrouch
	u.SetState(domain.StateCrouched, crouched)
	logger.Log.WithFields(logrus.Fields{
		"component": "movement_system",
		"unit_id":   u.ID,
		"crouched":  crouched,
	}).Debug("Posture changed.")
	return true
}

// Turn поворачивает юнита (бесплатно)
func (b *Battlefield) Turn(u *domain.Unit, dir int) {
	if dir < 0 || dir > 7 {
		return
	}
	u.Dir = dir
}
