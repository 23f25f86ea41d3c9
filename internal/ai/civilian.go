package ai

import (
	"github.com/sirupsen/logrus"

	"github.com/szydell/ufoai/internal/domain"
	"github.com/szydell/ufoai/pkg/logger"
	"github.com/szydell/ufoai/pkg/utils"
)

// fleeScore - награда за удаленность от врага (в клетках).
// Растет ступенями и выходит на плато.
func fleeScore(dist float64) float64 {
	switch {
	case dist < 8:
		return 4 * dist
	case dist < 16:
		return 24 + dist
	case dist < 24:
		return 40 + (dist-16)/4
	default:
		return 42
	}
}

// ScoreCivilianMove оценивает клетку для гражданского или паникующего юнита:
// держаться подальше от врага, поближе к своим и не вставать под прицел.
func (s *Scorer) ScoreCivilianMove(u *domain.Unit, to domain.GridPos) (float64, Action) {
	move := s.routesFor(u).MoveCost(to)
	if move == domain.RouteUnreachable {
		return NothingFound, Action{}
	}
	tu := u.TU - move
	if tu < 0 {
		return NothingFound, Action{}
	}

	// Вооруженный и не паникующий воюет как боец
	if u.TeamDef != nil && u.TeamDef.Weapons && !u.IsPanicked() {
		return s.scoreFighter(u, to, move)
	}

	wt := s.Weights
	origin := to.Vec()
	far := float64(wt.RunAwayDist * domain.UnitSize)
	minHostile, minCiv, minFighter := far, far, far

	for _, check := range s.World.Units {
		if check == u || check.IsDead() {
			continue
		}
		dist := origin.DistanceTo(check.Origin())
		if dist == 0 {
			// клетка занята
			return NothingFound, Action{}
		}
		switch {
		case isHostile(u, check):
			minHostile = min(minHostile, dist)
		case check.IsCivilian():
			minCiv = min(minCiv, dist)
		case check.Team == domain.TeamPhalanx && u.IsCivilian(), check.Team == u.Team:
			minFighter = min(minFighter, dist)
		}
	}
	minHostile /= domain.UnitSize
	minCiv /= domain.UnitSize
	minFighter /= domain.UnitSize

	var terms Terms

	flee := fleeScore(minHostile)
	// держаться вместе
	if minCiv < 10 {
		flee += (10 - minCiv) / 3
	}
	if minFighter < 15 {
		flee += (15 - minFighter) / 5
	}
	// не мешать бойцам
	if minFighter < 2 {
		flee /= 10
	}
	terms.Flee = flee

	// Ловушка: клетка простреливается врагом, которого видно
	for _, check := range s.World.Units {
		if check == u || check.IsDead() {
			continue
		}
		if !isHostile(u, check) && !u.IsInsane() {
			continue
		}
		if !s.seenByTeam(check, u.Team) {
			continue
		}
		if s.Vis.VisibilityFraction(check.Origin(), u, to, true) > wt.TrapVis {
			terms.Trap -= wt.ReactionTrap
		}
	}

	if u.TU > 0 {
		terms.Lazy = wt.CivLaziness * float64(tu) / float64(u.TU)
	}
	terms.Random = wt.CivRandom * utils.Frand(s.Rng)

	s.context(u, &terms, tu)
	act := noAction(to)
	act.Terms = terms
	act.Score = s.Eval.Utility(terms)

	if logger.Log.IsLevelEnabled(logrus.TraceLevel) {
		logger.Log.WithFields(logrus.Fields{
			"component":   "ai_scorer",
			"unit_id":     u.ID,
			"to":          to,
			"min_hostile": minHostile,
			"score":       act.Score,
		}).Trace("Civilian tile scored.")
	}
	return act.Score, act
}
