package systems

import (
	"math"

	"github.com/sirupsen/logrus"

	"github.com/szydell/ufoai/internal/domain"
	"github.com/szydell/ufoai/pkg/logger"
	"github.com/szydell/ufoai/pkg/utils"
)

// ApplyShot производит одну активацию режима огня по клетке target,
// затем дает противникам на реакции ответить.
func (b *Battlefield) ApplyShot(u *domain.Unit, target domain.GridPos, hand domain.Hand, fdIndex int, zAlign int) domain.ShotResult {
	combatLogger := logger.Log.WithFields(logrus.Fields{
		"component":  "combat_system",
		"shooter_id": u.ID,
		"target_pos": target,
		"hand":       hand.String(),
		"fd_index":   fdIndex,
	})

	// --- Проверка граничных условий ---

	if u.IsDead() {
		return domain.ShotResult{Reason: "shooter is dead"}
	}
	item := u.Inv.Held(hand)
	if !item.CanShoot() {
		combatLogger.Warn("Shot skipped: nothing to shoot with in this hand.")
		return domain.ShotResult{Reason: "no usable weapon"}
	}
	fds := domain.FiredefsForItem(item)
	if fdIndex < 0 || fdIndex >= len(fds) {
		combatLogger.Warn("Shot skipped: fire mode index out of range.")
		return domain.ShotResult{Reason: "bad fire mode"}
	}
	fd := &fds[fdIndex]
	if u.TU < fd.Time {
		combatLogger.WithField("tu", u.TU).Debug("Shot skipped: not enough TU.")
		return domain.ShotResult{Reason: "not enough TU"}
	}

	// --- Активация ---

	u.TU -= fd.Time
	if dir := u.Pos.DirectionTo(target); dir >= 0 {
		u.Dir = dir
	}

	res := b.fire(u, target, item, fd)
	res.Fired = true

	combatLogger.WithFields(logrus.Fields{
		"firedef":  fd.Name,
		"hits":     res.Hits,
		"damage":   res.Damage,
		"killed":   len(res.Killed),
		"tu_after": u.TU,
		"z_align":  zAlign,
	}).Info("Shot resolved.")

	// --- Огонь на реакции по стрелку ---
	res.Killed = append(res.Killed, b.ReactionFire(u)...)
	return res
}

// fire - выстрелы одной активации без реакции противника
func (b *Battlefield) fire(u *domain.Unit, target domain.GridPos, item *domain.Item, fd *domain.FireDef) domain.ShotResult {
	var res domain.ShotResult

	shots := fd.Shots
	if shots <= 0 {
		shots = 1
	}
	if item.NeedsAmmo() {
		if shots > item.Ammo {
			shots = item.Ammo
		}
		item.Ammo -= shots
	}

	dist := u.Origin().DistanceTo(target.Vec())
	nspread := domain.NominalSpread(fd, u.Stats)

	for i := 0; i < shots; i++ {
		victim := b.World.UnitAt(target)
		chance := domain.HitFactor(nspread, dist)
		if victim != nil {
			chance *= b.VisibilityFraction(u.Origin(), victim, victim.Pos, true)
		}
		if utils.Frand(b.Rng) >= chance {
			continue
		}
		res.Hits++

		if victim != nil {
			dmg := b.rollDamage(fd.Damage, fd.DamageType, victim)
			res.Damage += dmg
			if victim.TakeDamage(dmg) {
				res.Killed = append(res.Killed, victim)
			}
		}

		// Осколки задевают всех в радиусе, включая своих
		if fd.SplashRadius > 0 && fd.SplashDamage[0] > 0 {
			for _, other := range b.World.LivingUnits() {
				if other == victim {
					continue
				}
				if other.Origin().DistanceTo(target.Vec()) > fd.SplashRadius {
					continue
				}
				dmg := b.rollDamage(fd.SplashDamage, fd.DamageType, other)
				res.Damage += dmg
				if other.TakeDamage(dmg) {
					res.Killed = append(res.Killed, other)
				}
			}
		}
	}
	return res
}

// rollDamage бросает урон с учетом брони цели
func (b *Battlefield) rollDamage(dmg [2]float64, damageType string, victim *domain.Unit) int {
	raw := math.Max(0, dmg[0]+dmg[1]*utils.Crand(b.Rng))
	protection := victim.Inv.ArmourProtection(damageType)
	return int(math.Round(raw * (1 - float64(protection)*0.01)))
}

// ReactionFire - противники на реакции, которые видят target, стреляют по нему
// одной активацией. Ответный огонь цепочек не порождает.
func (b *Battlefield) ReactionFire(target *domain.Unit) []*domain.Unit {
	var killed []*domain.Unit
	for _, r := range b.World.LivingUnits() {
		if target.IsDead() {
			break
		}
		if !r.InReaction() || !reactsAgainst(r, target) {
			continue
		}
		item, fd := reactionWeapon(r)
		if fd == nil || r.TU < fd.Time {
			continue
		}
		if r.Origin().DistanceTo(target.Origin()) > fd.Range {
			continue
		}
		if !b.sees(r, target) {
			continue
		}

		r.TU -= fd.Time
		if dir := r.Pos.DirectionTo(target.Pos); dir >= 0 {
			r.Dir = dir
		}
		res := b.fire(r, target.Pos, item, fd)
		killed = append(killed, res.Killed...)

		logger.Log.WithFields(logrus.Fields{
			"component":   "combat_system",
			"shooter_id":  r.ID,
			"target_id":   target.ID,
			"hits":        res.Hits,
			"damage":      res.Damage,
			"target_died": target.IsDead(),
		}).Info("Reaction fire.")
	}
	return killed
}

// reactsAgainst - стреляет ли r на реакции по target. По гражданским
// стреляют только пришельцы и обезумевшие.
func reactsAgainst(r, target *domain.Unit) bool {
	if r.Team == target.Team {
		return false
	}
	if target.IsCivilian() && r.Team != domain.TeamAlien && !r.IsInsane() {
		return false
	}
	return true
}

// reactionWeapon - первый режим огня, годный для реакции
func reactionWeapon(u *domain.Unit) (*domain.Item, *domain.FireDef) {
	for h := domain.HandRight; h < domain.NumHands; h++ {
		item := u.Inv.Held(h)
		if !item.CanShoot() {
			continue
		}
		fds := domain.FiredefsForItem(item)
		for i := range fds {
			if fds[i].Reaction {
				return item, &fds[i]
			}
		}
	}
	return nil, nil
}
