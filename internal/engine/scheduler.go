package engine

import (
	"github.com/sirupsen/logrus"

	"github.com/szydell/ufoai/internal/domain"
	"github.com/szydell/ufoai/internal/telemetry"
	"github.com/szydell/ufoai/pkg/logger"
)

// Phase - что произошло за кадр
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseUnitActed
	PhaseRoundEnded
)

func (p Phase) String() string {
	switch p {
	case PhaseUnitActed:
		return "unit_acted"
	case PhaseRoundEnded:
		return "round_ended"
	default:
		return "idle"
	}
}

// TurnExecutor проводит ход одного юнита
type TurnExecutor interface {
	ExecuteTurn(u *domain.Unit)
}

// AIPlayer - игрок под управлением ИИ. Помнит последнего сходившего юнита.
type AIPlayer struct {
	Name string
	Team domain.Team

	last              *domain.Unit
	underflowReported bool
}

// Last - юнит, сходивший последним в этом раунде
func (p *AIPlayer) Last() *domain.Unit { return p.last }

// Scheduler раз в Cadence кадров дает сходить одному юниту активной команды
type Scheduler struct {
	World    *domain.World
	Executor TurnExecutor
	Cadence  int
	Players  []*AIPlayer
	Metrics  *telemetry.Metrics

	// OnRoundEnd вызывается, когда у игрока не осталось юнитов с TU
	OnRoundEnd func(p *AIPlayer)
}

func NewScheduler(w *domain.World, exec TurnExecutor, cadence int, metrics *telemetry.Metrics) *Scheduler {
	if cadence <= 0 {
		cadence = 1
	}
	return &Scheduler{
		World:    w,
		Executor: exec,
		Cadence:  cadence,
		Metrics:  metrics,
	}
}

// AddPlayer регистрирует игрока ИИ
func (s *Scheduler) AddPlayer(p *AIPlayer) {
	s.Players = append(s.Players, p)
	logger.Log.WithFields(logrus.Fields{
		"component": "scheduler",
		"player":    p.Name,
		"team":      p.Team.String(),
	}).Debug("AI player registered")
}

// Controls - есть ли у команды игрок ИИ
func (s *Scheduler) Controls(team domain.Team) bool {
	for _, p := range s.Players {
		if p.Team == team {
			return true
		}
	}
	return false
}

// RunFrame - один кадр. Один юнит за вызов, продолжая после последнего сходившего.
// Если юнитов с TU не осталось - конец раунда для игрока.
func (s *Scheduler) RunFrame(frame int) Phase {
	if frame%s.Cadence != 0 {
		return PhaseIdle
	}

	for _, p := range s.Players {
		if p.Team != s.World.ActiveTeam {
			continue
		}
		var next *domain.Unit
		if s.World.CountLiving(p.Team) == 0 {
			// Команду выбили посреди раунда: ходить некому, раунд все равно заканчиваем
			if !p.underflowReported {
				p.underflowReported = true
				logger.Log.WithFields(logrus.Fields{
					"component": "scheduler",
					"player":    p.Name,
					"team":      p.Team.String(),
				}).Warn("AI player has no living units")
			}
		} else {
			next = s.World.NextLivingOfTeam(p.last, p.Team)
			for next != nil && next.TU <= 0 {
				next = s.World.NextLivingOfTeam(next, p.Team)
			}
		}

		if next != nil {
			p.last = next
			s.Executor.ExecuteTurn(next)
			return PhaseUnitActed
		}

		// Все сходили (или некому)
		p.last = nil
		s.Metrics.RoundEnded(p.Team.String())
		logger.Log.WithFields(logrus.Fields{
			"component": "scheduler",
			"player":    p.Name,
			"frame":     frame,
		}).Info("AI player ends round")
		if s.OnRoundEnd != nil {
			s.OnRoundEnd(p)
		}
		return PhaseRoundEnded
	}
	return PhaseIdle
}
