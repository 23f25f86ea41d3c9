package ai

import (
	"github.com/sirupsen/logrus"

	"github.com/szydell/ufoai/internal/domain"
	"github.com/szydell/ufoai/internal/telemetry"
	"github.com/szydell/ufoai/pkg/logger"
)

// Planner выбирает лучший ход юнита и сразу выполняет перемещение
type Planner struct {
	Scorer  *Scorer
	World   *domain.World
	Mover   Mover
	Metrics *telemetry.Metrics
}

func NewPlanner(d Deps, cfg Config, eval Evaluator) *Planner {
	return &Planner{
		Scorer:  NewScorer(d, cfg, eval),
		World:   d.World,
		Mover:   d.Mover,
		Metrics: d.Metrics,
	}
}

// PlanBestAction перебирает клетки в окне ±SearchRadius на всех уровнях,
// сравнивает лучшую с целью миссии и ведет юнита в выбранную клетку.
// false - хода нет (кандидатов нет или юнит погиб по пути).
func (p *Planner) PlanBestAction(u *domain.Unit) (Action, bool) {
	s := p.Scorer
	w := p.World
	s.Invalidate()
	rt := s.routesFor(u)

	civilianMode := u.IsCivilian() || u.IsPanicked()
	r := s.Weights.SearchRadius
	minX, maxX := clamp(u.Pos.X-r, 0, w.Width-1), clamp(u.Pos.X+r, 0, w.Width-1)
	minY, maxY := clamp(u.Pos.Y-r, 0, w.Height-1), clamp(u.Pos.Y+r, 0, w.Height-1)

	best := NothingFound
	var bestAct Action
	tiles := 0

	for z := 0; z < w.Levels; z++ {
		for y := minY; y <= maxY; y++ {
			for x := minX; x <= maxX; x++ {
				to := domain.GridPos{X: x, Y: y, Z: z}
				if !rt.Reachable(to, u.TU) {
					continue
				}
				tiles++

				var score float64
				var act Action
				if civilianMode {
					score, act = s.ScoreCivilianMove(u, to)
				} else {
					score, act = s.ScoreCombatMove(u, to)
				}
				// строго больше: при равенстве остается первая
				if score > best {
					best, bestAct = score, act
				}
			}
		}
	}
	p.Metrics.TilesScored(u.Team.String(), tiles)

	mission := s.missionCandidate(u)
	if mission.ResetWaypoints && u.AI != nil {
		u.AI.ResetWaypoints()
	}
	if mission.Score > best {
		best, bestAct = mission.Score, mission.Action
	}

	planLogger := logger.Log.WithFields(logrus.Fields{
		"component": "ai_planner",
		"unit_id":   u.ID,
		"team":      u.Team.String(),
		"tiles":     tiles,
	})

	if best <= NothingFound {
		planLogger.Debug("No candidate found, unit idles.")
		return Action{}, false
	}
	bestAct.Score = best

	planLogger.WithFields(logrus.Fields{
		"to":       bestAct.To,
		"stop":     bestAct.Stop,
		"score":    best,
		"target":   targetID(bestAct.Target),
		"shots":    bestAct.Shots,
		"waypoint": bestAct.HasWaypoint,
	}).Info("Action chosen.")

	if u.IsCrouched() {
		p.Mover.ChangeCrouch(u, false)
	}
	moved := p.Mover.CommitMove(u, bestAct.To, 0)
	s.Invalidate()

	// точка засчитывается, только если до нее дошли
	if bestAct.HasWaypoint && moved.Reached && u.AI != nil {
		u.AI.AdvanceWaypoint(bestAct.Waypoint)
	}

	if u.IsDead() {
		planLogger.Info("Unit died while moving, action dropped.")
		return Action{}, false
	}
	return bestAct, true
}

func targetID(t *domain.Unit) any {
	if t == nil {
		return nil
	}
	return t.ID
}
