package ai

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/szydell/ufoai/internal/domain"
)

// lethalShooter - стрелок, который погибает от первого же выстрела (ответный огонь)
type lethalShooter struct {
	calls int

	// где стоял и куда смотрел стрелок в момент гибели
	pos domain.GridPos
	dir int
}

func (s *lethalShooter) ApplyShot(u *domain.Unit, _ domain.GridPos, _ domain.Hand, _ int, _ int) domain.ShotResult {
	s.calls++
	u.TU -= 10
	u.TakeDamage(u.HP())
	s.pos, s.dir = u.Pos, u.Dir
	return domain.ShotResult{Fired: true}
}

// woundingShooter снимает damage HP с юнита в клетке цели и запоминает цели
type woundingShooter struct {
	w       *domain.World
	damage  int
	targets []domain.GridPos
}

func (s *woundingShooter) ApplyShot(u *domain.Unit, target domain.GridPos, _ domain.Hand, _ int, _ int) domain.ShotResult {
	s.targets = append(s.targets, target)
	u.TU -= 2
	res := domain.ShotResult{Fired: true, Hits: 1}
	if victim := s.w.UnitAt(target); victim != nil && victim.TakeDamage(s.damage) {
		res.Killed = append(res.Killed, victim)
	}
	return res
}

// recordingMover переставляет юнита без поиска пути и запоминает, в укрытии ли он шел
type recordingMover struct {
	dests  []domain.GridPos
	hiding []bool
	turns  []int
}

func (m *recordingMover) CommitMove(u *domain.Unit, dest domain.GridPos, _ domain.TeamMask) domain.MoveResult {
	m.dests = append(m.dests, dest)
	m.hiding = append(m.hiding, u.AI.Hiding)
	u.Pos = dest
	return domain.MoveResult{Reached: true}
}

func (m *recordingMover) ChangeCrouch(u *domain.Unit, crouched bool) bool {
	u.SetState(domain.StateCrouched, crouched)
	return true
}

func (m *recordingMover) Turn(u *domain.Unit, dir int) {
	m.turns = append(m.turns, dir)
	u.Dir = dir
}

// plannedStrategy отдает заранее заданные планы по очереди
type plannedStrategy struct {
	plans []Action
	calls int
}

func (s *plannedStrategy) Name() string { return "planned" }

func (s *plannedStrategy) DecideTurn(*domain.Unit) (Action, bool) {
	if s.calls >= len(s.plans) {
		return Action{}, false
	}
	a := s.plans[s.calls]
	s.calls++
	return a, true
}

func newTestExecutor(d Deps) *Executor {
	return NewExecutor(d, NewBuiltinStrategy(d, testConfig()), nil)
}

func TestExecuteTurn_KillsTarget(t *testing.T) {
	w := openWorld(12, 1)
	d, _ := newTestDeps(w)
	e := newTestExecutor(d)

	alien := newTestUnit(w, domain.TeamAlien, domain.GridPos{X: 0}, 14, 30)
	alien.Inv.Right = newRifle(5)
	target := newTestUnit(w, domain.TeamPhalanx, domain.GridPos{X: 10}, 0, 20)

	e.ExecuteTurn(alien)

	assert.True(t, target.IsDead())
	assert.False(t, alien.IsDead())
	assert.Equal(t, 4, alien.Inv.Right.Ammo)
	assert.Equal(t, 4, alien.TU)
	assert.False(t, alien.AI.Hiding)
}

func TestExecuteTurn_StopsWhenShooterDies(t *testing.T) {
	w := openWorld(12, 1)
	d, _ := newTestDeps(w)
	shooter := &lethalShooter{}
	d.Shooter = shooter
	e := newTestExecutor(d)

	alien := newTestUnit(w, domain.TeamAlien, domain.GridPos{X: 0}, 24, 30)
	alien.Inv.Right = newRifle(5)
	newTestUnit(w, domain.TeamPhalanx, domain.GridPos{X: 10}, 0, 100)

	e.ExecuteTurn(alien)

	assert.True(t, alien.IsDead())
	assert.Equal(t, 1, shooter.calls)
	assert.False(t, alien.AI.Hiding)

	// Мертвый не отходит и не поворачивается
	assert.Equal(t, shooter.pos, alien.Pos)
	assert.Equal(t, shooter.dir, alien.Dir)
}

func TestExecuteTurn_HidesAfterShooting(t *testing.T) {
	w := openWorld(12, 1)
	d, _ := newTestDeps(w)
	mover := &recordingMover{}
	shooter := &woundingShooter{w: w, damage: 10}
	d.Mover, d.Shooter = mover, shooter

	alien := newTestUnit(w, domain.TeamAlien, domain.GridPos{X: 2}, 20, 30)
	alien.Inv.Right = newRifle(5)
	target := newTestUnit(w, domain.TeamPhalanx, domain.GridPos{X: 11}, 0, 100)

	strategy := &plannedStrategy{plans: []Action{
		{To: alien.Pos, Stop: domain.GridPos{X: 0}, Target: target, Shots: 2},
	}}
	e := NewExecutor(d, strategy, nil)

	e.ExecuteTurn(alien)

	assert.Len(t, shooter.targets, 2)
	assert.Equal(t, 80, target.HP())

	require.Equal(t, []domain.GridPos{{X: 0}}, mover.dests)
	assert.Equal(t, []bool{true}, mover.hiding, "move to cover is made in hiding mode")
	assert.Equal(t, domain.GridPos{X: 0}, alien.Pos)
	assert.False(t, alien.AI.Hiding)

	// Развернулся к цели
	require.Len(t, mover.turns, 1)
	assert.Equal(t, domain.GridPos{X: 0}.DirectionTo(target.Pos), alien.Dir)
	assert.Equal(t, 1, strategy.calls)
}

func TestExecuteTurn_HidesWithoutTarget(t *testing.T) {
	w := openWorld(12, 1)
	d, _ := newTestDeps(w)
	mover := &recordingMover{}
	shooter := &woundingShooter{w: w}
	d.Mover, d.Shooter = mover, shooter

	alien := newTestUnit(w, domain.TeamAlien, domain.GridPos{X: 6}, 20, 30)
	e := NewExecutor(d, &plannedStrategy{plans: []Action{{To: alien.Pos, Stop: domain.GridPos{X: 9}}}}, nil)

	e.ExecuteTurn(alien)

	assert.Empty(t, shooter.targets)
	assert.Equal(t, []domain.GridPos{{X: 9}}, mover.dests)
	assert.Equal(t, domain.GridPos{X: 9}, alien.Pos)
	assert.Empty(t, mover.turns)
	assert.False(t, alien.AI.Hiding)
}

func TestExecuteTurn_ReplansAfterKill(t *testing.T) {
	w := openWorld(12, 1)
	d, _ := newTestDeps(w)
	mover := &recordingMover{}
	shooter := &woundingShooter{w: w, damage: 15}
	d.Mover, d.Shooter = mover, shooter

	alien := newTestUnit(w, domain.TeamAlien, domain.GridPos{X: 0}, 20, 30)
	alien.Inv.Right = newRifle(5)
	first := newTestUnit(w, domain.TeamPhalanx, domain.GridPos{X: 6}, 0, 10)
	second := newTestUnit(w, domain.TeamPhalanx, domain.GridPos{X: 11}, 0, 100)

	strategy := &plannedStrategy{plans: []Action{
		{To: alien.Pos, Stop: alien.Pos, Target: first, Shots: 3},
		{To: alien.Pos, Stop: domain.GridPos{X: 1}, Target: second, Shots: 2},
	}}
	e := NewExecutor(d, strategy, nil)

	e.ExecuteTurn(alien)

	assert.True(t, first.IsDead())
	assert.Equal(t, 70, second.HP())
	// Одна пуля в первого, остаток плана заменен новым: две во второго
	assert.Equal(t, []domain.GridPos{first.Pos, second.Pos, second.Pos}, shooter.targets)
	assert.Equal(t, 2, strategy.calls)

	// Отход по новому плану
	assert.Equal(t, []domain.GridPos{{X: 1}}, mover.dests)
	assert.Equal(t, domain.GridPos{X: 1}.DirectionTo(second.Pos), alien.Dir)
}

func TestExecuteTurn_StopsWhenNoNewTarget(t *testing.T) {
	w := openWorld(12, 1)
	d, _ := newTestDeps(w)
	mover := &recordingMover{}
	shooter := &woundingShooter{w: w, damage: 50}
	d.Mover, d.Shooter = mover, shooter

	alien := newTestUnit(w, domain.TeamAlien, domain.GridPos{X: 0}, 20, 30)
	alien.Inv.Right = newRifle(5)
	target := newTestUnit(w, domain.TeamPhalanx, domain.GridPos{X: 6}, 0, 10)

	strategy := &plannedStrategy{plans: []Action{
		{To: alien.Pos, Stop: domain.GridPos{X: 3}, Target: target, Shots: 3},
		{To: alien.Pos, Stop: domain.GridPos{X: 3}},
	}}
	e := NewExecutor(d, strategy, nil)

	e.ExecuteTurn(alien)

	assert.True(t, target.IsDead())
	assert.Len(t, shooter.targets, 1)
	assert.Empty(t, mover.dests, "no hiding once the target is gone")
	assert.Equal(t, domain.GridPos{X: 0}, alien.Pos)
}

func TestExecuteTurn_ReloadsEmptyWeapon(t *testing.T) {
	w := openWorld(8, 1)
	d, _ := newTestDeps(w)
	e := newTestExecutor(d)

	alien := newTestUnit(w, domain.TeamAlien, domain.GridPos{X: 0}, 20, 30)
	alien.Inv.Right = newRifle(0)
	alien.Inv.Backpack = []*domain.Item{{Def: testAmmo}}

	e.ExecuteTurn(alien)

	require.NotNil(t, alien.Inv.Right)
	assert.Equal(t, testRifle.Capacity, alien.Inv.Right.Ammo)
	assert.Empty(t, alien.Inv.Backpack)
	assert.Equal(t, 12, alien.TU)
}

func TestExecuteTurn_DropsUselessWeapon(t *testing.T) {
	w := openWorld(8, 1)
	d, _ := newTestDeps(w)
	e := newTestExecutor(d)

	alien := newTestUnit(w, domain.TeamAlien, domain.GridPos{X: 0}, 20, 30)
	alien.Inv.Right = newRifle(0)

	e.ExecuteTurn(alien)

	assert.Nil(t, alien.Inv.Right)
	assert.Len(t, w.FloorItems[domain.GridPos{X: 0}], 1)
}

func TestExecuteTurn_PanickedKeepsEmptyWeapon(t *testing.T) {
	w := openWorld(8, 1)
	d, _ := newTestDeps(w)
	e := newTestExecutor(d)

	alien := newTestUnit(w, domain.TeamAlien, domain.GridPos{X: 0}, 20, 30)
	alien.Inv.Right = newRifle(0)
	alien.SetState(domain.StatePanic, true)

	e.ExecuteTurn(alien)

	assert.NotNil(t, alien.Inv.Right)
}

func TestExecuteTurn_DrawsWeapon(t *testing.T) {
	w := openWorld(8, 1)
	d, _ := newTestDeps(w)
	e := newTestExecutor(d)

	alien := newTestUnit(w, domain.TeamAlien, domain.GridPos{X: 0}, 20, 30)
	alien.TeamDef = &domain.TeamDef{ID: "taman", Weapons: true}
	alien.Inv.Backpack = []*domain.Item{newRifle(5)}

	e.ExecuteTurn(alien)

	require.NotNil(t, alien.Inv.Right)
	assert.Equal(t, "rifle", alien.Inv.Right.Def.ID)
}

func TestExecutor_StrategyFor(t *testing.T) {
	w := openWorld(8, 1)
	d, _ := newTestDeps(w)
	scripted, err := NewScriptedStrategy(d, testConfig(), "cautious", "Hide * 2 + Default")
	require.NoError(t, err)

	e := NewExecutor(d, NewBuiltinStrategy(d, testConfig()), map[string]Strategy{"cautious": scripted})

	u := newTestUnit(w, domain.TeamAlien, domain.GridPos{X: 0}, 20, 30)
	assert.Equal(t, StrategyBuiltin, e.StrategyFor(u).Name())

	u.AI.Strategy = "cautious"
	assert.Equal(t, "cautious", e.StrategyFor(u).Name())

	u.AI.Strategy = "unknown"
	assert.Equal(t, StrategyBuiltin, e.StrategyFor(u).Name())
}
