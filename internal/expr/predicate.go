package expr

import (
	"sync"

	"github.com/google/cel-go/cel"

	"github.com/KirkDiggler/roll-bonuses/internal/errors"
)

// Fields is the fixed set of values a predicate can read
type Fields struct {
	Item   map[string]any
	Action map[string]any
}

// Predicates compiles boolean expressions over Fields. Programs are cached
// by expression text.
type Predicates struct {
	env *cel.Env

	mu    sync.Mutex
	cache map[string]cel.Program
}

func NewPredicates() (*Predicates, error) {
	env, err := cel.NewEnv(
		cel.Variable("item", cel.MapType(cel.StringType, cel.DynType)),
		cel.Variable("action", cel.MapType(cel.StringType, cel.DynType)),
	)
	if err != nil {
		return nil, errors.Wrap(err, "creating predicate environment")
	}
	return &Predicates{env: env, cache: map[string]cel.Program{}}, nil
}

// Compile checks expression and caches its program
func (p *Predicates) Compile(expression string) (cel.Program, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if program, ok := p.cache[expression]; ok {
		return program, nil
	}

	ast, iss := p.env.Compile(expression)
	if iss.Err() != nil {
		return nil, errors.InvalidArgumentf("invalid predicate: %v", iss.Err()).
			WithMeta("expression", expression)
	}
	if !ast.OutputType().IsExactType(cel.BoolType) {
		return nil, errors.InvalidArgumentf("predicate %q must produce a bool", expression)
	}
	program, err := p.env.Program(ast)
	if err != nil {
		return nil, errors.Wrapf(err, "building predicate %q", expression)
	}

	p.cache[expression] = program
	return program, nil
}

// Match evaluates expression against fields
func (p *Predicates) Match(expression string, fields Fields) (bool, error) {
	program, err := p.Compile(expression)
	if err != nil {
		return false, err
	}

	item, action := fields.Item, fields.Action
	if item == nil {
		item = map[string]any{}
	}
	if action == nil {
		action = map[string]any{}
	}

	out, _, err := program.Eval(map[string]any{"item": item, "action": action})
	if err != nil {
		return false, errors.Wrapf(err, "evaluating predicate %q", expression)
	}
	matched, ok := out.Value().(bool)
	return ok && matched, nil
}
