package targets

import (
	"slices"

	"github.com/KirkDiggler/roll-bonuses/internal/domain/entity"
	"github.com/KirkDiggler/roll-bonuses/internal/domain/rulebook/sources"
	"github.com/KirkDiggler/roll-bonuses/internal/domain/sheet"
)

// StandardWeaponGroups are the host's built in groups. Actors may add custom ones.
var StandardWeaponGroups = []string{
	"axes",
	"bladesHeavy",
	"bladesLight",
	"bows",
	"close",
	"crossbows",
	"double",
	"firearms",
	"flails",
	"hammers",
	"monk",
	"natural",
	"polearms",
	"siegeEngines",
	"spears",
	"thrown",
	"tribal",
}

// WeaponGroupTarget applies to items in any of the listed weapon groups,
// including groups added by a weapon group override.
type WeaponGroupTarget struct {
	sources.BaseTarget
}

func NewWeaponGroupTarget() *WeaponGroupTarget {
	return &WeaponGroupTarget{
		BaseTarget: sources.NewBaseTarget("weapon-group", sources.Journal(sources.JournalTargets, "weapon-group")),
	}
}

func (t *WeaponGroupTarget) SourcesFor(env *sources.Env, subject sources.Subject) []*entity.Item {
	item := subject.ResolveItem()
	if item == nil {
		return nil
	}
	groups := env.Index.WeaponGroups(item)
	if len(groups) == 0 {
		return nil
	}
	return filter(t.Candidates(subject), func(source *entity.Item) bool {
		return intersects(source.Flags.Strings(t.Key()), groups)
	})
}

func (t *WeaponGroupTarget) Hints(_ *sources.Env, source *entity.Item) []string {
	return joinHint(source.Flags.Strings(t.Key()))
}

func (t *WeaponGroupTarget) Inputs(env *sources.Env, item *entity.Item, editable bool) []sheet.Input {
	input := t.Input(env, item, sheet.InputTrait, editable)
	input.Choices = choices(ActorWeaponGroups(env, item.Actor, item.Flags.Strings(t.Key())))
	return []sheet.Input{input}
}

// ActorWeaponGroups lists the standard groups, then the sorted custom groups
// used by the actor's weapons or already selected
func ActorWeaponGroups(env *sources.Env, actor *entity.Actor, selected []string) []string {
	var custom []string
	add := func(groups []string) {
		for _, g := range groups {
			if !slices.Contains(StandardWeaponGroups, g) && !slices.Contains(custom, g) {
				custom = append(custom, g)
			}
		}
	}
	if actor != nil {
		for _, i := range actor.Items {
			if i.Kind.IsWeaponLike() {
				add(env.Index.WeaponGroups(i))
			}
		}
	}
	add(selected)
	slices.Sort(custom)
	return append(slices.Clone(StandardWeaponGroups), custom...)
}
