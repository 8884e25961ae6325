package rules

import (
	exprlang "github.com/expr-lang/expr"
	exprvm "github.com/expr-lang/expr/vm"

	"github.com/wudi/tagkit/observability"
)

// exprEvaluator executes rule expressions using github.com/expr-lang/expr.
type exprEvaluator struct {
	cfg config
}

// NewExprEvaluator constructs an Evaluator backed by expr-lang/expr. It is
// the default engine.
func NewExprEvaluator(opts ...Option) Evaluator {
	return &exprEvaluator{cfg: applyOptions(opts)}
}

func (e *exprEvaluator) Engine() string { return "expr" }

func (e *exprEvaluator) Evaluate(snapshot map[string]any, expression string) (any, error) {
	if expression == "" {
		return nil, evalError("expr", "", ErrEmptyExpression)
	}
	env := environment(snapshot)
	if e.cfg.cache == nil {
		result, err := exprlang.Eval(expression, env)
		if err != nil {
			return nil, evalError("expr", expression, err)
		}
		return result, nil
	}
	program, err := e.loadOrCompile(expression)
	if err != nil {
		return nil, err
	}
	result, err := exprlang.Run(program, env)
	if err != nil {
		return nil, evalError("expr", expression, err)
	}
	return result, nil
}

func (e *exprEvaluator) loadOrCompile(expression string) (*exprvm.Program, error) {
	key := cacheKey("expr", expression, nil)
	if cached, ok := e.cfg.cache.Get(key); ok {
		if program, ok := cached.(*exprvm.Program); ok {
			return program, nil
		}
	}
	program, err := exprlang.Compile(expression,
		exprlang.Env(map[string]any{}),
		exprlang.AllowUndefinedVariables(),
	)
	if err != nil {
		return nil, evalError("expr", expression, err)
	}
	e.cfg.log.Debug("compiled rule", observability.String("engine", "expr"), observability.String("expr", expression))
	e.cfg.cache.Set(key, program)
	return program, nil
}

func environment(snapshot map[string]any) map[string]any {
	env := make(map[string]any, len(snapshot))
	for key, value := range snapshot {
		env[key] = value
	}
	return env
}
