package ai

import "github.com/szydell/ufoai/internal/domain"

// missionResult - кандидат от целей миссии
type missionResult struct {
	Score  float64
	Action Action
	// ResetWaypoints: рядом нет ни одной точки цепочки, прогресс начинается заново
	ResetWaypoints bool
}

// missionCandidate - ход к цели миссии. Гражданские идут по цепочке точек,
// остальные - к объектам своей или чужой команды.
func (s *Scorer) missionCandidate(u *domain.Unit) missionResult {
	if u.IsCivilian() {
		return s.waypointCandidate(u)
	}
	return s.objectiveCandidate(u)
}

func (s *Scorer) waypointCandidate(u *domain.Unit) missionResult {
	res := missionResult{Score: NothingFound}
	if u.AI == nil {
		return res
	}
	rt := s.routesFor(u)
	origin := u.Origin()

	inRange := 0
	best, bestMove := -1, 0
	for i, wp := range s.World.Waypoints {
		if wp.Count >= u.AI.WaypointCount {
			continue
		}
		if origin.DistanceTo(wp.Pos.Vec()) > s.Weights.WaypointCivDist {
			continue
		}
		inRange++

		move := rt.MoveCost(wp.Pos)
		if move == domain.RouteUnreachable {
			continue
		}
		if other := s.World.UnitAt(wp.Pos); other != nil && other != u {
			continue
		}
		// ближе к концу цепочки - лучше; при равенстве первая по порядку
		if best < 0 || wp.Count < s.World.Waypoints[best].Count {
			best, bestMove = i, move
		}
	}

	if inRange == 0 {
		res.ResetWaypoints = true
	}
	if best < 0 {
		return res
	}

	wp := s.World.Waypoints[best]
	res.Score = s.Weights.MissionTarget + float64(u.TU-bestMove)
	res.Action = noAction(wp.Pos)
	res.Action.Waypoint = wp.Count
	res.Action.HasWaypoint = true
	res.Action.Score = res.Score
	return res
}

func (s *Scorer) objectiveCandidate(u *domain.Unit) missionResult {
	res := missionResult{Score: NothingFound}
	rt := s.routesFor(u)

	for i := range s.World.Objectives {
		obj := &s.World.Objectives[i]
		if rt.MoveCost(obj.Pos) == domain.RouteUnreachable {
			continue
		}
		if obj.Team == u.Team {
			res.Score = s.Weights.MissionTarget
			res.Action = noAction(obj.Pos)
			res.Action.Objective = obj
			break
		}
		res.Score = s.Weights.MissionOpponentTarget
		res.Action = noAction(obj.Pos)
		res.Action.Objective = obj
	}
	res.Action.Score = res.Score
	return res
}
