package bonuses

import (
	"github.com/KirkDiggler/roll-bonuses/internal/domain/entity"
	"github.com/KirkDiggler/roll-bonuses/internal/domain/rolls"
	"github.com/KirkDiggler/roll-bonuses/internal/domain/rulebook/sources"
	"github.com/KirkDiggler/roll-bonuses/internal/domain/sheet"
)

// AttackBonus adds a typed formula to attack rolls
type AttackBonus struct {
	sources.BaseBonus
}

func NewAttackBonus() *AttackBonus {
	return &AttackBonus{BaseBonus: sources.NewBaseBonus("attack", sources.Journal(sources.JournalBonuses, "attack"))}
}

func (b *AttackBonus) TypeKey() string { return b.SubKey("type") }

func (b *AttackBonus) Conditional(env *sources.Env, source *entity.Item, _ sources.Subject) *rolls.Conditional {
	formula := source.Flags.String(b.Key())
	if formula == "" {
		return nil
	}
	return conditional(env, source, rolls.Modifier{
		ID:      env.NewID(),
		Formula: formula,
		Target:  rolls.TargetAttack,
		Type:    typeOf(source, b.TypeKey()),
	})
}

// AttackSources needs a value, formulas that do not evaluate stay off the tooltip
func (b *AttackBonus) AttackSources(env *sources.Env, source *entity.Item) []rolls.ModifierSource {
	value, ok := env.FormulaValue(source, b.Key(), rollData(source))
	if !ok || value == 0 {
		return nil
	}
	return []rolls.ModifierSource{{
		Value:    value,
		Name:     source.Name,
		Modifier: typeOf(source, b.TypeKey()),
	}}
}

func (b *AttackBonus) Hints(_ *sources.Env, source *entity.Item) []string {
	if formula := source.Flags.String(b.Key()); formula != "" {
		return []string{formula}
	}
	return nil
}

func (b *AttackBonus) Inputs(env *sources.Env, item *entity.Item, editable bool) []sheet.Input {
	return []sheet.Input{formulaAndType(env, &b.Descriptor, item, b.Key(), b.TypeKey(), editable)}
}

// rollData is the minimal data a source formula may reference outside a roll
func rollData(source *entity.Item) rolls.RollData {
	data := rolls.RollData{}
	if actor := source.Actor; actor != nil {
		data.Set("size", float64(actor.Size))
		for skill, mod := range actor.Skills {
			data.Set("skills."+skill+".mod", float64(mod))
		}
	}
	return data
}
