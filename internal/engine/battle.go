package engine

import (
	"context"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/szydell/ufoai/internal/domain"
	"github.com/szydell/ufoai/pkg/logger"
)

// Summary - итог боя
type Summary struct {
	BattleID  string
	Frames    int
	Rounds    int
	Survivors map[domain.Team]int
	// Winner - единственная уцелевшая боевая команда (если есть)
	Winner    domain.Team
	HasWinner bool
	Cancelled bool
}

// Battle - один изолированный бой: мир, расписание и смена команд
type Battle struct {
	// ID - для связи записей лога одного боя
	ID        string
	World     *domain.World
	Scheduler *Scheduler
	Config    Config

	frame int
}

func NewBattle(w *domain.World, sched *Scheduler, cfg Config) *Battle {
	b := &Battle{ID: uuid.New().String(), World: w, Scheduler: sched, Config: cfg}
	sched.OnRoundEnd = func(*AIPlayer) { b.EndRound() }
	return b
}

// Start выбирает первую команду с живыми юнитами и дает ей TU
func (b *Battle) Start() {
	if b.World.CountLiving(b.World.ActiveTeam) == 0 {
		if next, ok := b.nextTeam(b.World.ActiveTeam); ok {
			b.World.ActiveTeam = next
		}
	}
	if b.World.Round == 0 {
		b.World.Round = 1
	}
	b.refillTU(b.World.ActiveTeam)

	logger.Log.WithFields(logrus.Fields{
		"component": "battle",
		"battle_id": b.ID,
		"team":      b.World.ActiveTeam.String(),
		"units":     len(b.World.Units),
	}).Info("Battle started")
}

// RunFrame - один кадр боя
func (b *Battle) RunFrame() Phase {
	frame := b.frame
	b.frame++

	// Команду без ИИ пропускаем сразу
	if !b.Scheduler.Controls(b.World.ActiveTeam) {
		b.EndRound()
		return PhaseRoundEnded
	}
	return b.Scheduler.RunFrame(frame)
}

// EndRound передает ход следующей команде с живыми юнитами
func (b *Battle) EndRound() {
	w := b.World
	prev := w.ActiveTeam
	next, ok := b.nextTeam(prev)
	if !ok {
		return
	}
	if next <= prev {
		w.Round++
	}
	w.ActiveTeam = next
	b.refillTU(next)

	logger.Log.WithFields(logrus.Fields{
		"component": "battle",
		"battle_id": b.ID,
		"from":      prev.String(),
		"to":        next.String(),
		"round":     w.Round,
	}).Info("Round passed to next team")
}

// nextTeam - следующая по номеру команда с живыми юнитами (по кругу)
func (b *Battle) nextTeam(from domain.Team) (domain.Team, bool) {
	for i := 1; i <= domain.MaxTeams; i++ {
		t := domain.Team((int(from) + i) % domain.MaxTeams)
		if b.World.CountLiving(t) > 0 {
			return t, true
		}
	}
	return from, false
}

func (b *Battle) refillTU(team domain.Team) {
	for _, u := range b.World.Units {
		if u.Team == team && !u.IsDead() {
			u.TU = u.MaxTU
		}
	}
}

// combatTeams - боевые команды с живыми юнитами (гражданские не в счет)
func (b *Battle) combatTeams() []domain.Team {
	var res []domain.Team
	for t := domain.Team(1); t < domain.MaxTeams; t++ {
		if b.World.CountLiving(t) > 0 {
			res = append(res, t)
		}
	}
	return res
}

// Over - осталась не больше чем одна боевая команда или вышли раунды
func (b *Battle) Over() bool {
	if len(b.combatTeams()) <= 1 {
		return true
	}
	return b.Config.MaxRounds > 0 && b.World.Round > b.Config.MaxRounds
}

// Run крутит кадры до конца боя, предела кадров (0 - без предела) или отмены ctx
func (b *Battle) Run(ctx context.Context, maxFrames int) Summary {
	b.Start()

	cancelled := false
	for !b.Over() {
		if maxFrames > 0 && b.frame >= maxFrames {
			break
		}
		select {
		case <-ctx.Done():
			cancelled = true
		default:
		}
		if cancelled {
			break
		}
		b.RunFrame()
	}

	sum := b.Summary()
	sum.Cancelled = cancelled
	logger.Log.WithFields(logrus.Fields{
		"component":  "battle",
		"battle_id":  b.ID,
		"frames":     sum.Frames,
		"rounds":     sum.Rounds,
		"has_winner": sum.HasWinner,
		"winner":     sum.Winner.String(),
		"cancelled":  cancelled,
	}).Info("Battle finished")
	return sum
}

// Summary - текущее состояние боя
func (b *Battle) Summary() Summary {
	sum := Summary{
		BattleID:  b.ID,
		Frames:    b.frame,
		Rounds:    b.World.Round,
		Survivors: make(map[domain.Team]int),
	}
	for _, u := range b.World.Units {
		if !u.IsDead() {
			sum.Survivors[u.Team]++
		}
	}
	if teams := b.combatTeams(); len(teams) == 1 {
		sum.Winner, sum.HasWinner = teams[0], true
	}
	return sum
}
