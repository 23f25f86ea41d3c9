package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/szydell/ufoai/internal/domain"
)

func TestScheduler_SkipsUnitsWithoutTU(t *testing.T) {
	w := domain.NewWorld(8, 8, 1)
	newUnit(w, domain.TeamAlien, domain.GridPos{X: 0}, 0)
	second := newUnit(w, domain.TeamAlien, domain.GridPos{X: 1}, 5)
	third := newUnit(w, domain.TeamAlien, domain.GridPos{X: 2}, 3)
	newUnit(w, domain.TeamPhalanx, domain.GridPos{X: 5}, 10)

	exec := &stubExecutor{}
	s := NewScheduler(w, exec, 1, nil)
	p := &AIPlayer{Name: "alien", Team: domain.TeamAlien}
	s.AddPlayer(p)

	rounds := 0
	s.OnRoundEnd = func(*AIPlayer) { rounds++ }

	assert.Equal(t, PhaseUnitActed, s.RunFrame(0))
	assert.Equal(t, second, p.Last())
	assert.Equal(t, PhaseUnitActed, s.RunFrame(1))
	assert.Equal(t, third, p.Last())

	// Все потратили TU - конец раунда
	assert.Equal(t, PhaseRoundEnded, s.RunFrame(2))
	assert.Nil(t, p.Last())
	assert.Equal(t, 1, rounds)

	require.Len(t, exec.acted, 2)
	assert.Equal(t, []*domain.Unit{second, third}, exec.acted)
}

func TestScheduler_Cadence(t *testing.T) {
	w := domain.NewWorld(8, 8, 1)
	newUnit(w, domain.TeamAlien, domain.GridPos{}, 10)

	exec := &stubExecutor{}
	s := NewScheduler(w, exec, 10, nil)
	s.AddPlayer(&AIPlayer{Name: "alien", Team: domain.TeamAlien})

	assert.Equal(t, PhaseIdle, s.RunFrame(3))
	assert.Empty(t, exec.acted)
	assert.Equal(t, PhaseUnitActed, s.RunFrame(10))
	assert.Len(t, exec.acted, 1)
}

func TestScheduler_NonPositiveCadence(t *testing.T) {
	s := NewScheduler(domain.NewWorld(1, 1, 1), &stubExecutor{}, 0, nil)
	assert.Equal(t, 1, s.Cadence)
}

func TestScheduler_InactiveTeamWaits(t *testing.T) {
	w := domain.NewWorld(8, 8, 1)
	w.ActiveTeam = domain.TeamPhalanx
	newUnit(w, domain.TeamAlien, domain.GridPos{}, 10)

	exec := &stubExecutor{}
	s := NewScheduler(w, exec, 1, nil)
	s.AddPlayer(&AIPlayer{Name: "alien", Team: domain.TeamAlien})

	assert.Equal(t, PhaseIdle, s.RunFrame(0))
	assert.Empty(t, exec.acted)
}

func TestScheduler_NoLivingUnitsEndsRound(t *testing.T) {
	w := domain.NewWorld(8, 8, 1)
	dead := newUnit(w, domain.TeamAlien, domain.GridPos{}, 10)
	dead.TakeDamage(100)

	exec := &stubExecutor{}
	s := NewScheduler(w, exec, 1, nil)
	p := &AIPlayer{Name: "alien", Team: domain.TeamAlien}
	s.AddPlayer(p)

	var ended []*AIPlayer
	s.OnRoundEnd = func(pl *AIPlayer) { ended = append(ended, pl) }

	assert.Equal(t, PhaseRoundEnded, s.RunFrame(0))
	assert.True(t, p.underflowReported)
	assert.Nil(t, p.Last())
	assert.Equal(t, []*AIPlayer{p}, ended)

	// Предупреждение одно, но раунд заканчивается каждый раз
	assert.Equal(t, PhaseRoundEnded, s.RunFrame(1))
	assert.True(t, p.underflowReported)
	assert.Len(t, ended, 2)
	assert.Empty(t, exec.acted)
}

func TestScheduler_TeamWipedMidRound(t *testing.T) {
	w := domain.NewWorld(8, 8, 1)
	first := newUnit(w, domain.TeamAlien, domain.GridPos{X: 0}, 10)
	second := newUnit(w, domain.TeamAlien, domain.GridPos{X: 1}, 10)

	exec := &stubExecutor{}
	s := NewScheduler(w, exec, 1, nil)
	p := &AIPlayer{Name: "alien", Team: domain.TeamAlien}
	s.AddPlayer(p)

	rounds := 0
	s.OnRoundEnd = func(*AIPlayer) { rounds++ }

	require.Equal(t, PhaseUnitActed, s.RunFrame(0))
	assert.Equal(t, first, p.Last())

	// Обоих убили огнем на реакции до хода второго
	first.TakeDamage(100)
	second.TakeDamage(100)

	assert.Equal(t, PhaseRoundEnded, s.RunFrame(1))
	assert.Equal(t, 1, rounds)
	assert.Nil(t, p.Last())
	assert.Equal(t, []*domain.Unit{first}, exec.acted)
}

func TestScheduler_Controls(t *testing.T) {
	s := NewScheduler(domain.NewWorld(1, 1, 1), &stubExecutor{}, 1, nil)
	s.AddPlayer(&AIPlayer{Name: "alien", Team: domain.TeamAlien})
	assert.True(t, s.Controls(domain.TeamAlien))
	assert.False(t, s.Controls(domain.TeamPhalanx))
}

func TestPhase_String(t *testing.T) {
	assert.Equal(t, "idle", PhaseIdle.String())
	assert.Equal(t, "unit_acted", PhaseUnitActed.String())
	assert.Equal(t, "round_ended", PhaseRoundEnded.String())
}
