package join

import (
	"github.com/KirkDiggler/roll-bonuses/internal/domain/entity"
	"github.com/KirkDiggler/roll-bonuses/internal/domain/rolls"
	"github.com/KirkDiggler/roll-bonuses/internal/domain/rulebook/sources"
	"github.com/KirkDiggler/roll-bonuses/internal/errors"
)

// Conditionals collects the conditionals every applicable source offers for use
func (e *Engine) Conditionals(use *rolls.ActionUse) []*rolls.Conditional {
	if use == nil {
		return nil
	}
	subject := sources.ForUse(use)

	var out []*rolls.Conditional
	e.ForEach(subject, func(source *entity.Item, bonus sources.Bonus) {
		if c := bonus.Conditional(e.env, source, subject); c != nil && len(c.Modifiers) > 0 {
			out = append(out, c)
		}
	})
	return out
}

// HandleConditionals applies the conditionals of use to its shared roll state
func (e *Engine) HandleConditionals(use *rolls.ActionUse) error {
	if use == nil || use.Shared == nil {
		return nil
	}
	for _, c := range e.Conditionals(use) {
		if err := use.Shared.ApplyConditional(c, e.env.Eval); err != nil {
			return errors.Wrapf(err, "failed to apply conditional %q", c.Name).
				WithMeta("conditional_id", c.ID)
		}
	}
	return nil
}

// AlterRollData lets bonuses change the roll data of use in place. Uses of
// an item by anyone but its owner are left alone.
func (e *Engine) AlterRollData(use *rolls.ActionUse) {
	if use == nil || use.Actor == nil || use.Item == nil || use.Shared == nil {
		return
	}
	if use.Item.Actor != use.Actor {
		return
	}
	e.ForEach(sources.ForItem(use.Item), func(source *entity.Item, bonus sources.Bonus) {
		bonus.AlterRollData(e.env, source, use.Shared)
	})
}

// AttackSources appends the attack tooltip lines of item's bonuses
func (e *Engine) AttackSources(item *entity.Item, in []rolls.ModifierSource) []rolls.ModifierSource {
	if item == nil || item.Actor == nil {
		return in
	}
	e.ForEach(sources.ForItem(item), func(source *entity.Item, bonus sources.Bonus) {
		in = append(in, bonus.AttackSources(e.env, source)...)
	})
	return in
}

// DamageSources appends the damage tooltip lines of action's bonuses
func (e *Engine) DamageSources(action *entity.Action, in []rolls.Change) []rolls.Change {
	if action == nil || action.Actor() == nil {
		return in
	}
	e.ForEach(sources.ForAction(action), func(source *entity.Item, bonus sources.Bonus) {
		in = append(in, bonus.DamageSources(e.env, source)...)
	})
	return in
}
