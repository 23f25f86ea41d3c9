package ai

import (
	"math"

	"github.com/sirupsen/logrus"

	"github.com/szydell/ufoai/internal/domain"
	"github.com/szydell/ufoai/pkg/logger"
	"github.com/szydell/ufoai/pkg/utils"
)

// playerWidth - полуширина юнита для проверки огня по своим
const playerWidth = 9.0

// ScoreCombatMove оценивает ход бойца в клетку to: стрельба оттуда,
// отход в укрытие и сближение. Возвращает NothingFound, если клетка недостижима.
func (s *Scorer) ScoreCombatMove(u *domain.Unit, to domain.GridPos) (float64, Action) {
	move := s.routesFor(u).MoveCost(to)
	if move == domain.RouteUnreachable || u.TU-move < 0 {
		return NothingFound, Action{}
	}
	return s.scoreFighter(u, to, move)
}

func (s *Scorer) scoreFighter(u *domain.Unit, to domain.GridPos, move int) (float64, Action) {
	wt := s.Weights
	tu := u.TU - move
	origin := to.Vec()

	act := noAction(to)
	var terms Terms

	// --- Стрельба ---

	maxDmg, bestTime := 0.0, 0
	for hand := domain.HandRight; hand < domain.NumHands; hand++ {
		item := u.Inv.Held(hand)
		if !item.CanShoot() {
			continue
		}
		fds := domain.FiredefsForItem(item)
		for i := range fds {
			fd := &fds[i]
			if fd.Time <= 0 {
				continue
			}
			shots := tu / fd.Time
			if shots == 0 {
				continue
			}
			perShot := fd.Shots
			if perShot <= 0 {
				perShot = 1
			}
			nspread := domain.NominalSpread(fd, u.Stats)

			for _, check := range s.World.Units {
				if check == u || check.IsDead() {
					continue
				}
				if check.Team == u.Team && !u.IsInsane() {
					continue
				}
				if !s.seenByTeam(check, u.Team) {
					continue
				}
				if check.IsCivilian() && s.World.Multiplayer && !u.IsInsane() {
					continue
				}
				dist, ok := s.checkShoot(u, origin, check, fd)
				if !ok {
					continue
				}
				vis := s.Vis.VisibilityFraction(origin, check, check.Pos, true)
				if vis <= domain.ActorVis0 {
					continue
				}

				dmg := vis * (fd.Damage[0] + fd.SplashDamage[0]) * float64(perShot*shots)
				dmg *= domain.HitFactor(nspread, dist)
				dmg *= 1 - float64(check.Inv.ArmourProtection(fd.DamageType))*0.01

				if hp := float64(check.HP()); dmg >= hp {
					dmg = hp + wt.Kill
					if check.InReaction() {
						dmg += wt.ReactionEradication
					}
				}
				expected := dmg

				// Не стоит патронов
				if (dmg < 25 && vis < 0.2) || (dmg < 10 && vis < 0.6) || dmg < 0.1 {
					continue
				}

				if check.IsCivilian() && (!u.IsInsane() || s.Policy.CivilianMalusWhenInsane) {
					dmg *= wt.CivFactor
				}
				dmg += wt.Random * utils.Frand(s.Rng)

				if dmg > maxDmg {
					maxDmg = dmg
					bestTime = fd.Time * shots
					act.Target = check
					act.Hand = hand
					act.FdIndex = i
					act.Shots = shots
					act.ExpectedDamage = expected
				}
			}
		}
	}

	if act.Target != nil {
		terms.Shoot = maxDmg
		tu -= bestTime
	}

	// --- Укрытие ---

	if !u.IsRaged() {
		seen := s.Vis.IsVisibleToTeam(u, to, domain.AllExcept(u.Team))
		if !seen || s.NoHideNeeded(u, to) {
			terms.Hide = wt.Hide
			if act.Target != nil {
				terms.Hide += wt.CloseIn
			}
		} else if act.Target != nil && tu >= domain.TUMoveStraight {
			terms.CloseIn = math.Max(0, wt.CloseIn-float64(move))
			if hs := s.findHideSpot(u, to, tu); hs.Found {
				act.Stop = hs.Stop
				terms.Hide = wt.Hide
				tu -= hs.Cost
			}
		}
	}

	// --- Сближение (от клетки, где юнит закончит ход) ---

	final := act.Stop.Vec()
	minDist := wt.CloseInDist
	for _, check := range s.World.Units {
		if check.IsDead() || check.Team == u.Team {
			continue
		}
		if d := final.DistanceTo(check.Origin()); d < minDist {
			minDist = d
		}
	}
	if wt.CloseInDist > 0 {
		terms.Approach = wt.CloseIn * (1 - minDist/wt.CloseInDist)
	}

	s.context(u, &terms, tu)
	terms.HasTarget = act.Target != nil
	act.Terms = terms
	act.Score = s.Eval.Utility(terms)

	if logger.Log.IsLevelEnabled(logrus.TraceLevel) {
		logger.Log.WithFields(logrus.Fields{
			"component": "ai_scorer",
			"unit_id":   u.ID,
			"to":        to,
			"stop":      act.Stop,
			"score":     act.Score,
			"target":    act.Target != nil,
		}).Trace("Tile scored.")
	}
	return act.Score, act
}

// checkShoot - цель в пределах дальности, не ближе радиуса осколков
// и на линии огня нет своих. Возвращает дистанцию.
func (s *Scorer) checkShoot(u *domain.Unit, origin domain.Vec3, check *domain.Unit, fd *domain.FireDef) (float64, bool) {
	dist := origin.DistanceTo(check.Origin())
	if dist > fd.Range {
		return dist, false
	}
	if dist < fd.SplashRadius {
		return dist, false
	}
	if !u.IsInsane() && s.friendlyInLine(u, origin, check.Origin(), fd) {
		return dist, false
	}
	return dist, true
}

// friendlyInLine - кто-то из своих стоит в конусе разброса перед целью
func (s *Scorer) friendlyInLine(u *domain.Unit, origin, target domain.Vec3, fd *domain.FireDef) bool {
	spread := math.Max(1, fd.Spread[0]) * math.Pi / 180
	cosSpread := math.Cos(spread)

	dtarget := target.Sub(origin).Normalize()
	back := dtarget.Scale(playerWidth / spread)

	for _, ally := range s.World.Units {
		if ally == u || ally.IsDead() || ally.Team != u.Team {
			continue
		}
		dcheck := ally.Origin().Sub(origin)
		if dtarget.Dot(dcheck) <= 0 {
			continue // позади стрелка
		}
		dcheck = dcheck.Add(back).Normalize()
		if dtarget.Dot(dcheck) > cosSpread {
			return true
		}
	}
	return false
}

// NoHideNeeded - смелому юниту в клетке to не нужно укрытие, если ни один
// видимый враг не способен снять треть его здоровья одной активацией.
func (s *Scorer) NoHideNeeded(u *domain.Unit, to domain.GridPos) bool {
	if !u.Stats.IsBrave(s.Weights.BraveMorale) {
		return false
	}
	origin := to.Vec()
	threshold := u.HP() / 3

	for _, from := range s.World.Units {
		if from == u || from.IsDead() || from.Team == u.Team {
			continue
		}
		if s.Vis.VisibilityFraction(origin, from, from.Pos, true) <= domain.ActorVis0 {
			continue
		}
		fd := firstFireDef(from)
		if fd == nil {
			continue
		}
		if fd.Range*fd.Range < origin.DistanceSquaredTo(from.Origin()) {
			continue
		}
		damage := int(math.Max(0, fd.Damage[0]+fd.Damage[1]*utils.Crand(s.Rng)))
		if damage >= threshold {
			return false
		}
	}
	return true
}

// firstFireDef - первый режим огня оружия в руках (правая, затем левая)
func firstFireDef(u *domain.Unit) *domain.FireDef {
	for h := domain.HandRight; h < domain.NumHands; h++ {
		item := u.Inv.Held(h)
		if !item.CanShoot() {
			continue
		}
		if fds := domain.FiredefsForItem(item); len(fds) > 0 {
			return &fds[0]
		}
	}
	return nil
}
