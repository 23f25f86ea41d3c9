package ai

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/szydell/ufoai/internal/domain"
)

func TestWaypointCandidate_LowestCountWins(t *testing.T) {
	w := openWorld(30, 1)
	w.Waypoints = []domain.Waypoint{
		{Pos: domain.GridPos{X: 5}, Count: 5},
		{Pos: domain.GridPos{X: 8}, Count: 3},
		{Pos: domain.GridPos{X: 3}, Count: 7},
		{Pos: domain.GridPos{X: 28}, Count: 1}, // дальше 768
	}
	s := newTestScorer(w, testConfig())
	civ := newTestUnit(w, domain.TeamCivilian, domain.GridPos{X: 0}, 30, 20)

	res := s.missionCandidate(civ)
	require.True(t, res.Action.HasWaypoint)
	assert.False(t, res.ResetWaypoints)
	assert.Equal(t, domain.GridPos{X: 8}, res.Action.To)
	assert.Equal(t, 3, res.Action.Waypoint)
	assert.InDelta(t, 60+float64(30-16), res.Score, 1e-9)
}

func TestWaypointCandidate_ProgressOnlyForward(t *testing.T) {
	w := openWorld(30, 1)
	w.Waypoints = []domain.Waypoint{
		{Pos: domain.GridPos{X: 5}, Count: 5},
		{Pos: domain.GridPos{X: 8}, Count: 3},
	}
	s := newTestScorer(w, testConfig())
	civ := newTestUnit(w, domain.TeamCivilian, domain.GridPos{X: 0}, 30, 20)

	civ.AI.WaypointCount = 4
	res := s.missionCandidate(civ)
	require.True(t, res.Action.HasWaypoint)
	assert.Equal(t, 3, res.Action.Waypoint)

	// Цепочка пройдена: рядом ничего нет, прогресс сбрасывается
	civ.AI.WaypointCount = 3
	res = s.missionCandidate(civ)
	assert.Equal(t, NothingFound, res.Score)
	assert.True(t, res.ResetWaypoints)
}

func TestObjectiveCandidate(t *testing.T) {
	w := openWorld(30, 1)
	s := newTestScorer(w, testConfig())
	alien := newTestUnit(w, domain.TeamAlien, domain.GridPos{X: 0}, 30, 20)

	res := s.missionCandidate(alien)
	assert.Equal(t, NothingFound, res.Score)

	w.Objectives = []domain.Objective{
		{Name: "generator", Pos: domain.GridPos{X: 5}, Team: domain.TeamPhalanx},
	}
	res = s.missionCandidate(alien)
	assert.InDelta(t, 50, res.Score, 1e-9)

	w.Objectives = append(w.Objectives, domain.Objective{Name: "ufo", Pos: domain.GridPos{X: 9}, Team: domain.TeamAlien})
	res = s.missionCandidate(alien)
	assert.InDelta(t, 60, res.Score, 1e-9)
	require.NotNil(t, res.Action.Objective)
	assert.Equal(t, "ufo", res.Action.Objective.Name)
	assert.Equal(t, domain.GridPos{X: 9}, res.Action.To)
}
