package specific

import (
	"slices"

	"github.com/KirkDiggler/roll-bonuses/internal/domain/entity"
	"github.com/KirkDiggler/roll-bonuses/internal/domain/rolls"
	"github.com/KirkDiggler/roll-bonuses/internal/domain/rulebook/sources"
)

// FatesFavored increases every luck bonus of the actor by 1
type FatesFavored struct {
	sources.BaseSpecific
}

func NewFatesFavored() *FatesFavored {
	return &FatesFavored{
		BaseSpecific: sources.NewBaseSpecific("fates-favored", sources.Journal(sources.JournalSpecifics, "fates-favored")),
	}
}

// RewriteAttackSources splits the extra point out of the luck lines so the
// tooltip shows it as its own source
func (f *FatesFavored) RewriteAttackSources(env *sources.Env, item *entity.Item, attackSources []rolls.ModifierSource) []rolls.ModifierSource {
	if item == nil || !item.Actor.HasAnyBooleanFlag(f.Key()) {
		return attackSources
	}

	var extra *rolls.ModifierSource
	for i := range attackSources {
		if attackSources[i].Modifier != "luck" {
			continue
		}
		attackSources[i].Value--
		extra = &rolls.ModifierSource{
			Value:    1,
			Name:     f.Label(env.Loc),
			Modifier: "luck",
			Sort:     attackSources[i].Sort + 1,
		}
	}
	if extra == nil {
		return attackSources
	}

	attackSources = append(attackSources, *extra)
	slices.SortStableFunc(attackSources, func(a, b rolls.ModifierSource) int {
		return b.Sort - a.Sort
	})
	return attackSources
}

// DefaultChanges adds the point to luck changes
func (f *FatesFavored) DefaultChanges(_ *sources.Env, actor *entity.Actor, changes []rolls.Change) []rolls.Change {
	if !actor.HasAnyBooleanFlag(f.Key()) {
		return changes
	}
	for i := range changes {
		if changes[i].Type != "luck" {
			continue
		}
		changes[i].Value++
		if changes[i].Formula != "" {
			changes[i].Formula += " + 1"
		}
	}
	return changes
}
