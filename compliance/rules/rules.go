// Package rules evaluates user supplied accessibility rules against tag
// snapshots. Rules are expressions in expr, CEL or JavaScript.
package rules

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/wudi/tagkit/observability"
)

// ErrNotBool is wrapped when a rule expression yields a non-boolean value.
var ErrNotBool = errors.New("rule result is not a boolean")

// Evaluator runs an expression against a snapshot.
type Evaluator interface {
	Evaluate(snapshot map[string]any, expression string) (any, error)
	Engine() string
}

// ProgramCache stores compiled expression programs keyed by expression
// strings.
type ProgramCache interface {
	Get(key string) (any, bool)
	Set(key string, value any)
}

type mapCache struct {
	mu       sync.RWMutex
	programs map[string]any
}

// NewProgramCache returns an in-memory ProgramCache safe for concurrent use.
func NewProgramCache() ProgramCache {
	return &mapCache{programs: make(map[string]any)}
}

func (c *mapCache) Get(key string) (any, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	v, ok := c.programs[key]
	return v, ok
}

func (c *mapCache) Set(key string, value any) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.programs[key] = value
}

type config struct {
	cache ProgramCache
	log   observability.Logger
}

// Option configures an evaluator.
type Option func(*config)

// WithProgramCache wires a ProgramCache into the evaluator.
func WithProgramCache(cache ProgramCache) Option {
	return func(c *config) {
		c.cache = cache
	}
}

func WithLogger(l observability.Logger) Option {
	return func(c *config) {
		c.log = l
	}
}

func applyOptions(opts []Option) config {
	cfg := config{}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	cfg.log = observability.OrNop(cfg.log)
	return cfg
}

// cacheKey scopes a cached program to an engine and the snapshot variables
// it was compiled against.
func cacheKey(engine, expression string, snapshot map[string]any) string {
	keys := make([]string, 0, len(snapshot))
	for k := range snapshot {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return engine + "\x00" + strings.Join(keys, ",") + "\x00" + expression
}

// NewEvaluator returns the evaluator for engine: "expr" (or empty), "cel"
// or "js".
func NewEvaluator(engine string, opts ...Option) (Evaluator, error) {
	switch engine {
	case "", "expr":
		return NewExprEvaluator(opts...), nil
	case "cel":
		return NewCELEvaluator(opts...), nil
	case "js", "javascript":
		return NewJSEvaluator(opts...), nil
	}
	return nil, fmt.Errorf("rules: unknown engine %q", engine)
}

// Rule is a condition every matching tag must satisfy.
type Rule struct {
	Code        string
	Description string
	// When selects the tags the rule applies to. Empty applies to all.
	When string
	// Expr must evaluate to true for a selected tag.
	Expr string
}

// Check reports whether snapshot satisfies rule.
func Check(ev Evaluator, rule Rule, snapshot map[string]any) (bool, error) {
	if rule.When != "" {
		applies, err := evalBool(ev, rule, rule.When, snapshot)
		if err != nil {
			return false, err
		}
		if !applies {
			return true, nil
		}
	}
	return evalBool(ev, rule, rule.Expr, snapshot)
}

func evalBool(ev Evaluator, rule Rule, expression string, snapshot map[string]any) (bool, error) {
	out, err := ev.Evaluate(snapshot, expression)
	if err != nil {
		return false, forRule(ev.Engine(), expression, rule.Code, err)
	}
	b, ok := out.(bool)
	if !ok {
		return false, forRule(ev.Engine(), expression, rule.Code, fmt.Errorf("%w: got %T", ErrNotBool, out))
	}
	return b, nil
}
