package targets

import (
	"slices"

	"github.com/KirkDiggler/roll-bonuses/internal/domain/entity"
	"github.com/KirkDiggler/roll-bonuses/internal/domain/rulebook/sources"
	"github.com/KirkDiggler/roll-bonuses/internal/domain/sheet"
)

// ItemTarget applies to the items referenced by the source's flag. References
// are either bare ids or document paths ending in the id.
type ItemTarget struct {
	sources.BaseTarget
}

func NewItemTarget() *ItemTarget {
	return &ItemTarget{BaseTarget: sources.NewBaseTarget("item", sources.Journal(sources.JournalTargets, "item"))}
}

func (t *ItemTarget) targetedIDs(source *entity.Item) []string {
	refs := source.Flags.Strings(t.Key())
	ids := make([]string, 0, len(refs))
	for _, ref := range refs {
		ids = append(ids, entity.ReferenceID(ref))
	}
	return ids
}

func (t *ItemTarget) SourcesFor(_ *sources.Env, subject sources.Subject) []*entity.Item {
	item := subject.ResolveItem()
	if item == nil {
		return nil
	}
	return filter(t.Candidates(subject), func(source *entity.Item) bool {
		return slices.Contains(t.targetedIDs(source), item.ID)
	})
}

func (t *ItemTarget) Hints(_ *sources.Env, source *entity.Item) []string {
	var names []string
	for _, id := range t.targetedIDs(source) {
		if item := source.Actor.Item(id); item != nil {
			names = append(names, item.Name)
		}
	}
	return joinHint(names)
}

// Inputs offers the actor's attack capable items
func (t *ItemTarget) Inputs(env *sources.Env, item *entity.Item, editable bool) []sheet.Input {
	input := t.Input(env, item, sheet.InputItems, editable)
	if item.Actor != nil {
		for _, candidate := range item.Actor.Items {
			if candidate.HasAttack() {
				input.Choices = append(input.Choices, sheet.Choice{Key: candidate.ID, Label: candidate.Name})
			}
		}
	}
	return []sheet.Input{input}
}
