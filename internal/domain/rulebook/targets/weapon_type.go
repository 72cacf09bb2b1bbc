package targets

import (
	"github.com/KirkDiggler/roll-bonuses/internal/domain/entity"
	"github.com/KirkDiggler/roll-bonuses/internal/domain/rulebook/sources"
	"github.com/KirkDiggler/roll-bonuses/internal/domain/sheet"
)

// WeaponTypeTarget applies to items whose base types ("longsword") are listed
type WeaponTypeTarget struct {
	sources.BaseTarget
}

func NewWeaponTypeTarget() *WeaponTypeTarget {
	return &WeaponTypeTarget{
		BaseTarget: sources.NewBaseTarget("weapon-type", sources.Journal(sources.JournalTargets, "weapon-type")),
	}
}

func (t *WeaponTypeTarget) SourcesFor(_ *sources.Env, subject sources.Subject) []*entity.Item {
	item := subject.ResolveItem()
	if item == nil || len(item.BaseTypes) == 0 {
		return nil
	}
	return filter(t.Candidates(subject), func(source *entity.Item) bool {
		return intersects(source.Flags.Strings(t.Key()), item.BaseTypes)
	})
}

func (t *WeaponTypeTarget) Hints(_ *sources.Env, source *entity.Item) []string {
	return joinHint(source.Flags.Strings(t.Key()))
}

// Inputs offers the base types of the actor's weapons
func (t *WeaponTypeTarget) Inputs(env *sources.Env, item *entity.Item, editable bool) []sheet.Input {
	var types []string
	if item.Actor != nil {
		for _, i := range item.Actor.Items {
			if i.Kind.IsWeaponLike() {
				types = append(types, i.BaseTypes...)
			}
		}
	}
	types = append(types, item.Flags.Strings(t.Key())...)

	input := t.Input(env, item, sheet.InputTrait, editable)
	input.Choices = choices(unique(types))
	return []sheet.Input{input}
}

func unique(values []string) []string {
	seen := make(map[string]bool, len(values))
	var out []string
	for _, v := range values {
		if v != "" && !seen[v] {
			seen[v] = true
			out = append(out, v)
		}
	}
	return out
}
