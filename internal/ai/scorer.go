package ai

import (
	"math/rand"

	"github.com/szydell/ufoai/internal/domain"
	"github.com/szydell/ufoai/pkg/utils"
)

// Evaluator сворачивает слагаемые в одно число
type Evaluator interface {
	Utility(t Terms) float64
}

// SumEvaluator - встроенная полезность: сумма слагаемых
type SumEvaluator struct{}

func (SumEvaluator) Utility(t Terms) float64 { return t.Sum() }

// Scorer оценивает клетки для одного юнита. Чистая функция от мира:
// гипотетическая позиция передается явно, мир не меняется.
type Scorer struct {
	World   *domain.World
	Path    Pathing
	Vis     Visibility
	Weights Weights
	Policy  Policy
	Eval    Evaluator
	Rng     *rand.Rand

	// таблица путей текущего хода и ее владелец
	routes      *domain.RouteTable
	routesOwner *domain.Unit
}

func NewScorer(d Deps, cfg Config, eval Evaluator) *Scorer {
	if eval == nil {
		eval = SumEvaluator{}
	}
	rng := d.Rng
	if rng == nil {
		rng = utils.NewRand(0)
	}
	return &Scorer{
		World:   d.World,
		Path:    d.Path,
		Vis:     d.Vis,
		Weights: cfg.Weights,
		Policy:  cfg.Policy,
		Eval:    eval,
		Rng:     rng,
	}
}

// routesFor возвращает таблицу путей юнита, считая ее при необходимости.
// Таблица годится для того же юнита, пока он не сдвинулся и не сменил позу.
// Чужие перемещения кэш не видит: после них нужен Invalidate.
func (s *Scorer) routesFor(u *domain.Unit) *domain.RouteTable {
	rt := s.routes
	if rt != nil && s.routesOwner == u && rt.Origin == u.Pos && rt.Crouched == u.IsCrouched() {
		return rt
	}
	s.routes = s.Path.ComputeReachability(u, u.Pos, u.IsCrouched(), domain.MaxRoute)
	s.routesOwner = u
	return s.routes
}

// Invalidate сбрасывает таблицу путей (после реального перемещения)
func (s *Scorer) Invalidate() {
	s.routes, s.routesOwner = nil, nil
}

// context заполняет не суммируемые поля
func (s *Scorer) context(u *domain.Unit, t *Terms, tuLeft int) {
	t.TULeft = tuLeft
	t.Civilian = u.IsCivilian()
	if u.Stats != nil {
		t.Morale = u.Stats.Morale
		if u.Stats.MaxHP > 0 {
			t.HPRatio = float64(u.Stats.HP) / float64(u.Stats.MaxHP)
		}
	}
}

// isHostile - считается ли check врагом для бегства гражданского/паникера
func isHostile(u, check *domain.Unit) bool {
	if u.IsCivilian() {
		return check.Team == domain.TeamAlien
	}
	return check.Team != u.Team && !check.IsCivilian()
}

// seenByTeam - check виден хоть кому-то из команды team
func (s *Scorer) seenByTeam(check *domain.Unit, team domain.Team) bool {
	return s.Vis.IsVisibleToTeam(check, check.Pos, domain.MaskOf(team))
}
