package ai

import (
	"github.com/sirupsen/logrus"

	"github.com/szydell/ufoai/internal/domain"
	"github.com/szydell/ufoai/internal/telemetry"
	"github.com/szydell/ufoai/pkg/logger"
)

// execState - фаза хода юнита
type execState int

const (
	execPlan execState = iota
	execShoot
	execHide
	execDone
)

// Executor проводит один ход юнита: подготовка оружия, план, стрельба, отход.
// После каждого действия, способного убить юнита, проверяется его смерть.
type Executor struct {
	World   *domain.World
	Vis     Visibility
	Mover   Mover
	Shooter Shooter
	Armoury Armoury
	Metrics *telemetry.Metrics

	Default    Strategy
	Strategies map[string]Strategy
}

func NewExecutor(d Deps, def Strategy, named map[string]Strategy) *Executor {
	if named == nil {
		named = make(map[string]Strategy)
	}
	return &Executor{
		World:      d.World,
		Vis:        d.Vis,
		Mover:      d.Mover,
		Shooter:    d.Shooter,
		Armoury:    d.Armoury,
		Metrics:    d.Metrics,
		Default:    def,
		Strategies: named,
	}
}

// StrategyFor - стратегия юнита по имени, иначе стратегия по умолчанию
func (e *Executor) StrategyFor(u *domain.Unit) Strategy {
	if u.AI != nil && u.AI.Strategy != "" {
		if s, ok := e.Strategies[u.AI.Strategy]; ok {
			return s
		}
	}
	return e.Default
}

// ExecuteTurn - полный ход одного юнита ИИ
func (e *Executor) ExecuteTurn(u *domain.Unit) {
	if u.IsDead() {
		return
	}
	strategy := e.StrategyFor(u)
	turnLogger := logger.Log.WithFields(logrus.Fields{
		"component": "ai_executor",
		"unit_id":   u.ID,
		"team":      u.Team.String(),
		"strategy":  strategy.Name(),
	})
	e.Metrics.TurnExecuted(u.Team.String())

	// 1. Оружие: перезарядить или выбросить пустое
	if !u.IsPanicked() {
		e.prepareWeapons(u)
	}
	// 2. Достать оружие, если руки пусты
	if u.CanUseWeapons() && u.Inv.HandsEmpty() {
		if !e.Armoury.DrawWeapon(u) {
			turnLogger.Debug("No weapon to draw.")
		}
	}

	var act Action
	state := execPlan
	for state != execDone {
		switch state {
		case execPlan:
			var ok bool
			act, ok = strategy.DecideTurn(u)
			switch {
			case !ok || u.IsDead():
				state = execDone
			case act.Target != nil:
				state = execShoot
			default:
				state = execHide
			}
		case execShoot:
			state = e.shoot(u, strategy, &act)
		case execHide:
			e.hide(u, act)
			state = execDone
		}
	}

	turnLogger.WithFields(logrus.Fields{
		"pos":     u.Pos,
		"tu_left": u.TU,
		"dead":    u.IsDead(),
	}).Debug("Turn finished.")
}

// prepareWeapons перезаряжает пустое оружие в руках, а если нечем - бросает его
func (e *Executor) prepareWeapons(u *domain.Unit) {
	for h := domain.HandRight; h < domain.NumHands; h++ {
		item := u.Inv.Held(h)
		if !item.IsEmpty() {
			continue
		}
		if e.Armoury.CanReload(u, h) {
			e.Armoury.Reload(u, h)
		} else {
			e.Armoury.DropToFloor(u, h)
		}
	}
}

// shoot стреляет запланированное число раз. Если цель погибла,
// план пересчитывается; без новой цели ход заканчивается.
func (e *Executor) shoot(u *domain.Unit, strategy Strategy, act *Action) execState {
	for act.Shots > 0 {
		res := e.Shooter.ApplyShot(u, act.Target.Pos, act.Hand, act.FdIndex, act.ZAlign)
		act.Shots--
		if res.Fired {
			e.Metrics.ShotFired(u.Team.String(), len(res.Killed))
		}

		if u.IsDead() {
			return execDone
		}
		if act.Target.IsDead() {
			next, ok := strategy.DecideTurn(u)
			if !ok || u.IsDead() || next.Target == nil {
				return execDone
			}
			*act = next
		}
	}
	return execHide
}

// hide уводит юнита в укрытие, при необходимости приседает
// и разворачивает его к цели
func (e *Executor) hide(u *domain.Unit, act Action) {
	if u.AI != nil {
		u.AI.Hiding = true
		defer func() { u.AI.Hiding = false }()
	}

	e.Mover.CommitMove(u, act.Stop, domain.MaskOf(u.Team))
	if u.IsDead() {
		return
	}
	if shouldCrouch(e.World, e.Vis, u) {
		e.Mover.ChangeCrouch(u, true)
	}
	if act.Target != nil {
		if dir := u.Pos.DirectionTo(act.Target.Pos); dir >= 0 {
			e.Mover.Turn(u, dir)
		}
	}
}
