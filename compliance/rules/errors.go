package rules

import (
	"errors"
	"fmt"
)

// ErrEmptyExpression is wrapped when a rule has no expression to evaluate.
var ErrEmptyExpression = errors.New("empty expression")

// EvaluationError reports an expression that failed to compile, run or
// yield a boolean. Rule is the code of the rule being checked, if any.
type EvaluationError struct {
	Engine string
	Expr   string
	Rule   string
	Err    error
}

// Error reads like a report line: rule code, engine, expression, cause.
func (e *EvaluationError) Error() string {
	code := e.Rule
	if code == "" {
		code = "-"
	}
	return fmt.Sprintf("rules: %s %s %q: %v", code, e.Engine, e.Expr, e.Err)
}

func (e *EvaluationError) Unwrap() error { return e.Err }

func evalError(engine, expr string, err error) error {
	return &EvaluationError{Engine: engine, Expr: expr, Err: err}
}

// forRule attributes err to a rule. Engine errors already carry the
// expression and only gain the code.
func forRule(engine, expr, code string, err error) error {
	var ee *EvaluationError
	if errors.As(err, &ee) {
		if ee.Rule == "" {
			ee.Rule = code
		}
		return err
	}
	return &EvaluationError{Engine: engine, Expr: expr, Rule: code, Err: err}
}
