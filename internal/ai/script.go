package ai

import (
	"fmt"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
	"github.com/sirupsen/logrus"

	"github.com/szydell/ufoai/pkg/logger"
)

// ScoreEnv - переменные, доступные формуле полезности
type ScoreEnv struct {
	Shoot    float64
	Hide     float64
	CloseIn  float64
	Approach float64
	Flee     float64
	Trap     float64
	Lazy     float64
	Random   float64
	// Default - значение встроенной полезности
	Default float64

	TULeft    int
	HPRatio   float64
	Morale    int
	Civilian  bool
	HasTarget bool
}

func envFromTerms(t Terms) ScoreEnv {
	return ScoreEnv{
		Shoot:     t.Shoot,
		Hide:      t.Hide,
		CloseIn:   t.CloseIn,
		Approach:  t.Approach,
		Flee:      t.Flee,
		Trap:      t.Trap,
		Lazy:      t.Lazy,
		Random:    t.Random,
		Default:   t.Sum(),
		TULeft:    t.TULeft,
		HPRatio:   t.HPRatio,
		Morale:    t.Morale,
		Civilian:  t.Civilian,
		HasTarget: t.HasTarget,
	}
}

// ScriptEvaluator считает полезность скомпилированной формулой
type ScriptEvaluator struct {
	Name   string
	Source string

	program *vm.Program
}

// CompileScript компилирует формулу полезности. Формула должна возвращать число.
func CompileScript(name, src string) (*ScriptEvaluator, error) {
	program, err := expr.Compile(src, expr.Env(ScoreEnv{}), expr.AsFloat64())
	if err != nil {
		return nil, fmt.Errorf("compile strategy %q: %w", name, err)
	}
	return &ScriptEvaluator{Name: name, Source: src, program: program}, nil
}

// Utility выполняет формулу. При ошибке выполнения используется встроенная сумма.
func (e *ScriptEvaluator) Utility(t Terms) float64 {
	out, err := vm.Run(e.program, envFromTerms(t))
	if err != nil {
		logger.Log.WithFields(logrus.Fields{
			"component": "ai_script",
			"strategy":  e.Name,
		}).WithError(err).Warn("Strategy script failed, falling back to builtin utility.")
		return t.Sum()
	}
	v, ok := out.(float64)
	if !ok {
		return t.Sum()
	}
	return v
}
