package rules

import (
	"fmt"

	"github.com/dop251/goja"

	"github.com/wudi/tagkit/observability"
)

type jsEvaluator struct {
	cfg config
}

// NewJSEvaluator constructs an Evaluator backed by goja. Each evaluation runs
// in a fresh runtime.
func NewJSEvaluator(opts ...Option) Evaluator {
	return &jsEvaluator{cfg: applyOptions(opts)}
}

func (e *jsEvaluator) Engine() string { return "js" }

func (e *jsEvaluator) Evaluate(snapshot map[string]any, expression string) (any, error) {
	if expression == "" {
		return nil, evalError("js", "", ErrEmptyExpression)
	}
	program, err := e.loadOrCompile(expression)
	if err != nil {
		return nil, evalError("js", expression, err)
	}
	vm := goja.New()
	for key, value := range snapshot {
		if err := vm.Set(key, value); err != nil {
			return nil, evalError("js", expression, err)
		}
	}
	value, err := vm.RunProgram(program)
	if err != nil {
		return nil, evalError("js", expression, err)
	}
	return value.Export(), nil
}

func (e *jsEvaluator) loadOrCompile(expression string) (*goja.Program, error) {
	key := cacheKey("js", expression, nil)
	if e.cfg.cache != nil {
		if cached, ok := e.cfg.cache.Get(key); ok {
			if program, ok := cached.(*goja.Program); ok {
				return program, nil
			}
		}
	}
	program, err := goja.Compile("", wrapExpression(expression), false)
	if err != nil {
		return nil, err
	}
	e.cfg.log.Debug("compiled rule", observability.String("engine", "js"), observability.String("expr", expression))
	if e.cfg.cache != nil {
		e.cfg.cache.Set(key, program)
	}
	return program, nil
}

func wrapExpression(expression string) string {
	return fmt.Sprintf("(function(){ return (%s); })()", expression)
}
