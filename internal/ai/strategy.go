package ai

import "github.com/szydell/ufoai/internal/domain"

// StrategyBuiltin - имя встроенной стратегии
const StrategyBuiltin = "builtin"

// Strategy решает ход юнита. Исполнитель не знает, какая реализация за ней стоит.
type Strategy interface {
	Name() string
	// DecideTurn выбирает действие и выполняет перемещение к нему
	DecideTurn(u *domain.Unit) (Action, bool)
}

// BuiltinStrategy - оценка суммой слагаемых с весами из конфигурации
type BuiltinStrategy struct {
	planner *Planner
}

func NewBuiltinStrategy(d Deps, cfg Config) *BuiltinStrategy {
	return &BuiltinStrategy{planner: NewPlanner(d, cfg, SumEvaluator{})}
}

func (b *BuiltinStrategy) Name() string { return StrategyBuiltin }

func (b *BuiltinStrategy) DecideTurn(u *domain.Unit) (Action, bool) {
	return b.planner.PlanBestAction(u)
}

// ScriptedStrategy - полезность клетки считается формулой из конфигурации
type ScriptedStrategy struct {
	name    string
	planner *Planner
}

func NewScriptedStrategy(d Deps, cfg Config, name, src string) (*ScriptedStrategy, error) {
	eval, err := CompileScript(name, src)
	if err != nil {
		return nil, err
	}
	return &ScriptedStrategy{name: name, planner: NewPlanner(d, cfg, eval)}, nil
}

func (s *ScriptedStrategy) Name() string { return s.name }

func (s *ScriptedStrategy) DecideTurn(u *domain.Unit) (Action, bool) {
	return s.planner.PlanBestAction(u)
}
