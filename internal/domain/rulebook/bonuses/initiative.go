package bonuses

import (
	"slices"

	"github.com/KirkDiggler/roll-bonuses/internal/domain/entity"
	"github.com/KirkDiggler/roll-bonuses/internal/domain/rolls"
	"github.com/KirkDiggler/roll-bonuses/internal/domain/rulebook/sources"
	"github.com/KirkDiggler/roll-bonuses/internal/domain/sheet"
)

// InitiativeBonus is a typed initiative change. It does not use targets;
// the conditional targets on its source, if any, must all accept the actor.
type InitiativeBonus struct {
	sources.BaseBonus
}

func NewInitiativeBonus() *InitiativeBonus {
	return &InitiativeBonus{
		BaseBonus: sources.NewBaseBonus("initiative", sources.Journal(sources.JournalBonuses, "initiative")),
	}
}

func (b *InitiativeBonus) FormulaKey() string { return b.SubKey("formula") }
func (b *InitiativeBonus) TypeKey() string    { return b.SubKey("type") }

// DefaultChanges adds one init change per qualifying source
func (b *InitiativeBonus) DefaultChanges(env *sources.Env, actor *entity.Actor, changes []rolls.Change) []rolls.Change {
	for _, source := range actor.ItemsWithBooleanFlag(b.Key()) {
		if !b.accepted(env, actor, source) {
			continue
		}
		if change, ok := b.Change(env, source); ok {
			changes = append(changes, change)
		}
	}
	return changes
}

func (b *InitiativeBonus) accepted(env *sources.Env, actor *entity.Actor, source *entity.Item) bool {
	if env.Registry == nil {
		return true
	}
	subject := sources.ForActor(actor)
	for _, target := range env.Registry.Targets() {
		if !target.Meta().Conditional || !target.IsSource(source) {
			continue
		}
		if !slices.Contains(target.SourcesFor(env, subject), source) {
			return false
		}
	}
	return true
}

// Change builds the init change of source, false without a formula
func (b *InitiativeBonus) Change(env *sources.Env, source *entity.Item) (rolls.Change, bool) {
	formula := source.Flags.String(b.FormulaKey())
	if formula == "" {
		return rolls.Change{}, false
	}
	value, _ := env.FormulaValue(source, b.FormulaKey(), rollData(source))
	return rolls.Change{
		ID:      b.Key() + "_" + source.ID,
		Formula: formula,
		Value:   value,
		Target:  "init",
		Type:    typeOf(source, b.TypeKey()),
		Name:    source.Name,
	}, true
}

func (b *InitiativeBonus) Hints(env *sources.Env, source *entity.Item) []string {
	if source.Actor == nil {
		return nil
	}
	formula := source.Flags.String(b.FormulaKey())
	if formula == "" {
		return nil
	}
	return []string{b.Tooltip(env.Loc), formula}
}

func (b *InitiativeBonus) Inputs(env *sources.Env, item *entity.Item, editable bool) []sheet.Input {
	return []sheet.Input{
		b.Input(env, item, sheet.InputLabel, editable),
		formulaAndType(env, &b.Descriptor, item, b.FormulaKey(), b.TypeKey(), editable),
	}
}
