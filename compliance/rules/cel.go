package rules

import (
	celgo "github.com/google/cel-go/cel"

	"github.com/wudi/tagkit/observability"
)

type celProgram struct {
	env     *celgo.Env
	program celgo.Program
}

type celEvaluator struct {
	cfg config
}

// NewCELEvaluator constructs an Evaluator backed by cel-go. Every snapshot
// key is declared as a dynamically typed variable.
func NewCELEvaluator(opts ...Option) Evaluator {
	return &celEvaluator{cfg: applyOptions(opts)}
}

func (e *celEvaluator) Engine() string { return "cel" }

func (e *celEvaluator) Evaluate(snapshot map[string]any, expression string) (any, error) {
	if expression == "" {
		return nil, evalError("cel", "", ErrEmptyExpression)
	}
	if snapshot == nil {
		snapshot = map[string]any{}
	}
	program, err := e.loadOrCompile(expression, snapshot)
	if err != nil {
		return nil, evalError("cel", expression, err)
	}
	out, _, err := program.program.Eval(environment(snapshot))
	if err != nil {
		return nil, evalError("cel", expression, err)
	}
	return out.Value(), nil
}

func (e *celEvaluator) loadOrCompile(expression string, snapshot map[string]any) (*celProgram, error) {
	key := cacheKey("cel", expression, snapshot)
	if e.cfg.cache != nil {
		if cached, ok := e.cfg.cache.Get(key); ok {
			if program, ok := cached.(*celProgram); ok {
				return program, nil
			}
		}
	}

	opts := make([]celgo.EnvOption, 0, len(snapshot))
	for name := range snapshot {
		opts = append(opts, celgo.Variable(name, celgo.DynType))
	}
	env, err := celgo.NewEnv(opts...)
	if err != nil {
		return nil, err
	}
	ast, issues := env.Parse(expression)
	if issues != nil && issues.Err() != nil {
		return nil, issues.Err()
	}
	checked, issues := env.Check(ast)
	if issues != nil && issues.Err() != nil {
		return nil, issues.Err()
	}
	prg, err := env.Program(checked)
	if err != nil {
		return nil, err
	}

	bundle := &celProgram{env: env, program: prg}
	e.cfg.log.Debug("compiled rule", observability.String("engine", "cel"), observability.String("expr", expression))
	if e.cfg.cache != nil {
		e.cfg.cache.Set(key, bundle)
	}
	return bundle, nil
}
