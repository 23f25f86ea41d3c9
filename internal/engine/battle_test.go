package engine

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/szydell/ufoai/internal/domain"
)

// twoTeamBattle - по одному юниту у пришельцев и людей, оба под ИИ
func twoTeamBattle(exec *stubExecutor, maxRounds int) (*Battle, *domain.World) {
	w := domain.NewWorld(8, 8, 1)
	exec.w = w
	newUnit(w, domain.TeamAlien, domain.GridPos{X: 0}, 0)
	newUnit(w, domain.TeamPhalanx, domain.GridPos{X: 7}, 0)

	s := NewScheduler(w, exec, 1, nil)
	s.AddPlayer(&AIPlayer{Name: "alien", Team: domain.TeamAlien})
	s.AddPlayer(&AIPlayer{Name: "phalanx", Team: domain.TeamPhalanx})

	cfg := NewConfig()
	cfg.MaxRounds = maxRounds
	return NewBattle(w, s, cfg), w
}

func TestBattle_StartRefillsActiveTeam(t *testing.T) {
	b, w := twoTeamBattle(&stubExecutor{}, 0)
	b.Start()

	assert.Equal(t, domain.TeamAlien, w.ActiveTeam)
	assert.Equal(t, 1, w.Round)
	assert.Equal(t, 20, w.Units[0].TU)
	assert.Equal(t, 0, w.Units[1].TU, "inactive team keeps its TU")
}

func TestBattle_StartSkipsEmptyTeam(t *testing.T) {
	w := domain.NewWorld(8, 8, 1)
	newUnit(w, domain.TeamPhalanx, domain.GridPos{}, 0)
	b := NewBattle(w, NewScheduler(w, &stubExecutor{w: w}, 1, nil), NewConfig())

	b.Start()
	assert.Equal(t, domain.TeamPhalanx, w.ActiveTeam)
}

func TestBattle_EndRound(t *testing.T) {
	b, w := twoTeamBattle(&stubExecutor{}, 0)
	b.Start()

	// alien(7) -> phalanx(1): переход через начало, новый раунд
	b.EndRound()
	assert.Equal(t, domain.TeamPhalanx, w.ActiveTeam)
	assert.Equal(t, 2, w.Round)
	assert.Equal(t, 20, w.Units[1].TU)

	b.EndRound()
	assert.Equal(t, domain.TeamAlien, w.ActiveTeam)
	assert.Equal(t, 2, w.Round)
}

func TestBattle_TeamWithoutAIIsSkipped(t *testing.T) {
	exec := &stubExecutor{}
	b, w := twoTeamBattle(exec, 0)
	civ := newUnit(w, domain.TeamCivilian, domain.GridPos{X: 4}, 0)
	b.Start()

	assert.Equal(t, PhaseUnitActed, b.RunFrame())
	assert.Equal(t, PhaseRoundEnded, b.RunFrame())
	assert.Equal(t, domain.TeamCivilian, w.ActiveTeam)

	// Гражданскими никто не управляет - сразу дальше
	assert.Equal(t, PhaseRoundEnded, b.RunFrame())
	assert.Equal(t, domain.TeamPhalanx, w.ActiveTeam)
	assert.NotContains(t, exec.acted, civ)
}

func TestBattle_WipedActiveTeamPassesRound(t *testing.T) {
	exec := &stubExecutor{}
	b, w := twoTeamBattle(exec, 0)
	civ := newUnit(w, domain.TeamCivilian, domain.GridPos{X: 4}, 0)
	b.Scheduler.AddPlayer(&AIPlayer{Name: "civilian", Team: domain.TeamCivilian})
	w.ActiveTeam = domain.TeamCivilian
	b.Start()
	require.Equal(t, domain.TeamCivilian, w.ActiveTeam)

	// Единственного гражданского убили до его хода
	civ.TakeDamage(100)

	assert.Equal(t, PhaseRoundEnded, b.RunFrame())
	assert.Equal(t, domain.TeamPhalanx, w.ActiveTeam)
	assert.Equal(t, 1, w.Round)

	assert.Equal(t, PhaseUnitActed, b.RunFrame())
	assert.Equal(t, w.Units[1], exec.acted[0])
	assert.NotContains(t, exec.acted, civ)
}

func TestBattle_RunEndsWithWinner(t *testing.T) {
	exec := &stubExecutor{kill: true}
	b, _ := twoTeamBattle(exec, 0)

	sum := b.Run(context.Background(), 100)
	assert.Equal(t, b.ID, sum.BattleID)
	_, err := uuid.Parse(sum.BattleID)
	assert.NoError(t, err)
	require.True(t, sum.HasWinner)
	assert.Equal(t, domain.TeamAlien, sum.Winner)
	assert.Equal(t, 1, sum.Frames)
	assert.Equal(t, 1, sum.Survivors[domain.TeamAlien])
	assert.Zero(t, sum.Survivors[domain.TeamPhalanx])
	assert.False(t, sum.Cancelled)
}

func TestBattle_RunFrameLimit(t *testing.T) {
	b, w := twoTeamBattle(&stubExecutor{}, 0)

	sum := b.Run(context.Background(), 5)
	assert.Equal(t, 5, sum.Frames)
	assert.False(t, sum.HasWinner)
	assert.Equal(t, 2, sum.Rounds)
	assert.Equal(t, domain.TeamAlien, w.ActiveTeam)
}

func TestBattle_RunRoundLimit(t *testing.T) {
	b, _ := twoTeamBattle(&stubExecutor{}, 1)

	sum := b.Run(context.Background(), 0)
	assert.Equal(t, 2, sum.Frames)
	assert.Equal(t, 2, sum.Rounds)
	assert.False(t, sum.HasWinner)
}

func TestBattle_RunCancelled(t *testing.T) {
	exec := &stubExecutor{}
	b, _ := twoTeamBattle(exec, 0)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	sum := b.Run(ctx, 0)
	assert.True(t, sum.Cancelled)
	assert.Zero(t, sum.Frames)
	assert.Empty(t, exec.acted)
}

func TestBattle_CiviliansDoNotCount(t *testing.T) {
	w := domain.NewWorld(8, 8, 1)
	newUnit(w, domain.TeamAlien, domain.GridPos{}, 0)
	newUnit(w, domain.TeamCivilian, domain.GridPos{X: 3}, 0)
	b := NewBattle(w, NewScheduler(w, &stubExecutor{w: w}, 1, nil), NewConfig())

	assert.True(t, b.Over())
	sum := b.Summary()
	assert.True(t, sum.HasWinner)
	assert.Equal(t, domain.TeamAlien, sum.Winner)
	assert.Equal(t, 1, sum.Survivors[domain.TeamCivilian])
}
