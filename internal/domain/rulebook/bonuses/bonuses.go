// Package bonuses holds the bonus kinds. A bonus kind reads its values from
// the source item's flags and contributes them to whatever the source targets.
package bonuses

import (
	"github.com/KirkDiggler/roll-bonuses/internal/domain/entity"
	"github.com/KirkDiggler/roll-bonuses/internal/domain/rolls"
	"github.com/KirkDiggler/roll-bonuses/internal/domain/rulebook/sources"
	"github.com/KirkDiggler/roll-bonuses/internal/domain/sheet"
)

// Types are the stacking categories a typed bonus may use
var Types = []string{
	"untyped",
	"alchemical",
	"circumstance",
	"competence",
	"deflection",
	"dodge",
	"enhancement",
	"insight",
	"luck",
	"morale",
	"profane",
	"racial",
	"resistance",
	"sacred",
	"size",
	"trait",
}

// All returns a fresh instance of every bonus kind
func All() []sources.Kind {
	return []sources.Kind{
		NewAttackBonus(),
		NewCritBonus(),
		NewDamageBonus(),
		NewEffectiveSizeBonus(),
		NewFortuneBonus(),
		NewMisfortuneBonus(),
		NewInitiativeBonus(),
	}
}

// typeOf reads a bonus type flag, untyped when missing
func typeOf(item *entity.Item, key string) string {
	if t := item.Flags.String(key); t != "" {
		return t
	}
	return "untyped"
}

func typeChoices() []sheet.Choice {
	out := make([]sheet.Choice, 0, len(Types))
	for _, t := range Types {
		out = append(out, sheet.Choice{Key: t, Label: t})
	}
	return out
}

// formulaAndType is the formula input with its bonus type select
func formulaAndType(env *sources.Env, d *sources.Descriptor, item *entity.Item, formulaKey, typeKey string, editable bool) sheet.Input {
	input := d.InputFor(env, item, formulaKey, sheet.InputFormulaType, editable)
	secondary := d.InputFor(env, item, typeKey, sheet.InputSelect, editable)
	secondary.Choices = typeChoices()
	if secondary.Value == nil {
		secondary.Value = "untyped"
	}
	input.Secondary = &secondary
	return input
}

func conditional(env *sources.Env, source *entity.Item, modifiers ...rolls.Modifier) *rolls.Conditional {
	if len(modifiers) == 0 {
		return nil
	}
	return &rolls.Conditional{
		ID:        env.NewID(),
		Name:      source.Name,
		Default:   true,
		Modifiers: modifiers,
	}
}
