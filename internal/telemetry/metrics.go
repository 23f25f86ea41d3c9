package telemetry

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const instrumentationName = "github.com/szydell/ufoai/internal/telemetry"

func meter() metric.Meter {
	return otel.Meter(instrumentationName)
}

// Metrics - счетчики ИИ. Методы безопасны для nil-получателя.
type Metrics struct {
	tilesScored   metric.Int64Counter
	turnsExecuted metric.Int64Counter
	shotsFired    metric.Int64Counter
	unitsKilled   metric.Int64Counter
	roundsEnded   metric.Int64Counter
}

// New создает счетчики на глобальном провайдере OTel (no-op, если SDK не подключен).
func New() (*Metrics, error) {
	m := meter()
	var (
		res Metrics
		err error
	)

	if res.tilesScored, err = m.Int64Counter("ai.tiles.scored",
		metric.WithDescription("Candidate tiles evaluated by the planner")); err != nil {
		return nil, fmt.Errorf("creating tiles counter: %w", err)
	}
	if res.turnsExecuted, err = m.Int64Counter("ai.turns.executed",
		metric.WithDescription("AI unit turns executed")); err != nil {
		return nil, fmt.Errorf("creating turns counter: %w", err)
	}
	if res.shotsFired, err = m.Int64Counter("ai.shots.fired",
		metric.WithDescription("Weapon activations")); err != nil {
		return nil, fmt.Errorf("creating shots counter: %w", err)
	}
	if res.unitsKilled, err = m.Int64Counter("battle.units.killed",
		metric.WithDescription("Units killed")); err != nil {
		return nil, fmt.Errorf("creating kills counter: %w", err)
	}
	if res.roundsEnded, err = m.Int64Counter("battle.rounds.ended",
		metric.WithDescription("Team rounds ended by the scheduler")); err != nil {
		return nil, fmt.Errorf("creating rounds counter: %w", err)
	}
	return &res, nil
}

func teamAttr(team string) metric.AddOption {
	return metric.WithAttributes(attribute.String("team", team))
}

func (m *Metrics) TilesScored(team string, n int) {
	if m == nil || n == 0 {
		return
	}
	m.tilesScored.Add(context.Background(), int64(n), teamAttr(team))
}

func (m *Metrics) TurnExecuted(team string) {
	if m == nil {
		return
	}
	m.turnsExecuted.Add(context.Background(), 1, teamAttr(team))
}

func (m *Metrics) ShotFired(team string, kills int) {
	if m == nil {
		return
	}
	m.shotsFired.Add(context.Background(), 1, teamAttr(team))
	if kills > 0 {
		m.unitsKilled.Add(context.Background(), int64(kills), teamAttr(team))
	}
}

func (m *Metrics) RoundEnded(team string) {
	if m == nil {
		return
	}
	m.roundsEnded.Add(context.Background(), 1, teamAttr(team))
}
