// Package expr evaluates roll formulas and target predicates with CEL.
//
// Formulas use the host's arithmetic syntax ("1d6 + @abilities.str.mod[Strength]").
// They are rewritten into CEL: dice terms call roll(count, sides), @ references
// read from the vars map and bracketed flavor labels are dropped.
package expr

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
	"sync"

	"github.com/google/cel-go/cel"
	"github.com/google/cel-go/common/types"
	"github.com/google/cel-go/common/types/ref"

	"github.com/KirkDiggler/roll-bonuses/internal/dice"
	"github.com/KirkDiggler/roll-bonuses/internal/domain/rolls"
	"github.com/KirkDiggler/roll-bonuses/internal/errors"
)

var (
	flavorPattern = regexp.MustCompile(`\[[^\]]*\]`)
	termPattern   = regexp.MustCompile(`(\d*)d(\d+)|@([A-Za-z_][\w.]*)|\d+(\.\d+)?`)
)

type compiled struct {
	program cel.Program
	vars    []string
}

// engine is one CEL environment bound to a roller
type engine struct {
	env *cel.Env

	mu    sync.Mutex
	cache map[string]*compiled
}

func newEngine(roller dice.Roller) (*engine, error) {
	env, err := cel.NewEnv(
		cel.Variable("vars", cel.MapType(cel.StringType, cel.DoubleType)),
		cel.Function("roll",
			cel.Overload("roll_double_double",
				[]*cel.Type{cel.DoubleType, cel.DoubleType},
				cel.DoubleType,
				cel.BinaryBinding(func(count, sides ref.Val) ref.Val {
					result, err := roller.Roll(int(count.(types.Double)), int(sides.(types.Double)))
					if err != nil {
						return types.NewErr("%s", err.Error())
					}
					return types.Double(result.Total)
				}),
			),
		),
		unaryMath("floor", math.Floor),
		unaryMath("ceil", math.Ceil),
		unaryMath("abs", math.Abs),
		binaryMath("min", math.Min),
		binaryMath("max", math.Max),
	)
	if err != nil {
		return nil, errors.Wrap(err, "creating formula environment")
	}
	return &engine{env: env, cache: map[string]*compiled{}}, nil
}

func unaryMath(name string, fn func(float64) float64) cel.EnvOption {
	return cel.Function(name,
		cel.Overload(name+"_double",
			[]*cel.Type{cel.DoubleType},
			cel.DoubleType,
			cel.UnaryBinding(func(v ref.Val) ref.Val {
				return types.Double(fn(float64(v.(types.Double))))
			}),
		),
	)
}

func binaryMath(name string, fn func(float64, float64) float64) cel.EnvOption {
	return cel.Function(name,
		cel.Overload(name+"_double_double",
			[]*cel.Type{cel.DoubleType, cel.DoubleType},
			cel.DoubleType,
			cel.BinaryBinding(func(a, b ref.Val) ref.Val {
				return types.Double(fn(float64(a.(types.Double)), float64(b.(types.Double))))
			}),
		),
	)
}

func (e *engine) compile(formula string) (*compiled, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if c, ok := e.cache[formula]; ok {
		return c, nil
	}

	source, vars := Translate(formula)
	ast, iss := e.env.Compile(source)
	if iss.Err() != nil {
		return nil, errors.InvalidArgumentf("invalid formula %q: %v", formula, iss.Err()).
			WithMeta("formula", formula)
	}
	if !ast.OutputType().IsExactType(cel.DoubleType) {
		return nil, errors.InvalidArgumentf("formula %q does not produce a number", formula)
	}
	program, err := e.env.Program(ast)
	if err != nil {
		return nil, errors.Wrapf(err, "building program for %q", formula)
	}

	c := &compiled{program: program, vars: vars}
	e.cache[formula] = c
	return c, nil
}

func (e *engine) eval(formula string, data rolls.RollData) (float64, error) {
	if strings.TrimSpace(formula) == "" {
		return 0, nil
	}

	c, err := e.compile(formula)
	if err != nil {
		return 0, err
	}

	vars := make(map[string]float64, len(c.vars))
	for _, path := range c.vars {
		vars[path] = data.Number(path)
	}

	out, _, err := c.program.Eval(map[string]any{"vars": vars})
	if err != nil {
		return 0, errors.Wrapf(err, "evaluating %q", formula)
	}
	value, ok := out.Value().(float64)
	if !ok {
		return 0, errors.Internalf("formula %q returned %T", formula, out.Value())
	}
	return value, nil
}

// Translate rewrites a host formula into CEL source and lists the roll data
// paths it references.
func Translate(formula string) (string, []string) {
	source := flavorPattern.ReplaceAllString(formula, "")
	source = strings.TrimPrefix(strings.TrimSpace(source), "+")

	var vars []string
	seen := map[string]bool{}
	source = termPattern.ReplaceAllStringFunc(source, func(term string) string {
		m := termPattern.FindStringSubmatch(term)
		switch {
		case m[2] != "":
			count := 1
			if m[1] != "" {
				count, _ = strconv.Atoi(m[1])
			}
			return fmt.Sprintf("roll(%d.0, %s.0)", count, m[2])
		case m[3] != "":
			path := strings.TrimRight(m[3], ".")
			if !seen[path] {
				seen[path] = true
				vars = append(vars, path)
			}
			return fmt.Sprintf("vars[%q]", path)
		case m[4] != "":
			return term
		}
		return term + ".0"
	})
	return source, vars
}

// Evaluator implements rolls.Evaluator. Max uses a roller that always rolls
// the highest face.
type Evaluator struct {
	roll *engine
	max  *engine
}

var _ rolls.Evaluator = (*Evaluator)(nil)

func NewEvaluator(roller dice.Roller) (*Evaluator, error) {
	roll, err := newEngine(roller)
	if err != nil {
		return nil, err
	}
	highest, err := newEngine(dice.NewMaxRoller())
	if err != nil {
		return nil, err
	}
	return &Evaluator{roll: roll, max: highest}, nil
}

func (e *Evaluator) Evaluate(formula string, data rolls.RollData) (float64, error) {
	return e.roll.eval(formula, data)
}

func (e *Evaluator) Max(formula string, data rolls.RollData) (float64, error) {
	return e.max.eval(formula, data)
}
