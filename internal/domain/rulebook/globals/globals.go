// Package globals holds the bonuses every action use gets from the board
// position, unless the world, the actor or the attack dialog switches them off.
package globals

import (
	stderrors "errors"
	"fmt"

	"github.com/KirkDiggler/roll-bonuses/internal/domain/geometry"
	"github.com/KirkDiggler/roll-bonuses/internal/domain/rolls"
	"github.com/KirkDiggler/roll-bonuses/internal/domain/rulebook/sources"
	"github.com/KirkDiggler/roll-bonuses/internal/errors"
)

// All returns a fresh instance of every global bonus
func All() []sources.Kind {
	return []sources.Kind{
		NewShootIntoMelee(),
		NewFlanking(),
		NewHigherGround(),
	}
}

// Apply runs every enabled global bonus for use. A failing bonus does not
// stop the others; the errors are joined.
func Apply(env *sources.Env, use *rolls.ActionUse) error {
	var errs []error
	for _, g := range env.Registry.Globals() {
		if g.Disabled(env, use) {
			continue
		}
		if err := g.Apply(env, use); err != nil {
			errs = append(errs, errors.Wrapf(err, "applying %s", g.Key()))
		}
	}
	return stderrors.Join(errs...)
}

// pairs builds the positional pair of the acting token with every target
func pairs(use *rolls.ActionUse) ([]*geometry.Pair, error) {
	if use.Token == nil || len(use.Targets) == 0 {
		return nil, nil
	}
	out := make([]*geometry.Pair, 0, len(use.Targets))
	for _, target := range use.Targets {
		p, err := geometry.NewPair(use.Token, target)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, nil
}

// attackConditional applies a single attack modifier to the use
func attackConditional(env *sources.Env, use *rolls.ActionUse, name string, value int) error {
	if value == 0 || use.Shared == nil {
		return nil
	}
	c := &rolls.Conditional{
		ID:      env.NewID(),
		Name:    name,
		Default: true,
		Modifiers: []rolls.Modifier{{
			ID:      env.NewID(),
			Formula: fmt.Sprintf("%d", value),
			Target:  rolls.TargetAttack,
			Type:    "untyped",
		}},
	}
	return use.Shared.ApplyConditional(c, env.Eval)
}
