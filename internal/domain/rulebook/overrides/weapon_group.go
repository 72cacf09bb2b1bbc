package overrides

import (
	"slices"

	"github.com/KirkDiggler/roll-bonuses/internal/domain/entity"
	"github.com/KirkDiggler/roll-bonuses/internal/domain/rulebook/sources"
	"github.com/KirkDiggler/roll-bonuses/internal/domain/rulebook/targets"
	"github.com/KirkDiggler/roll-bonuses/internal/domain/sheet"
)

// WeaponGroupOverride puts a non weapon item, such as a spell or a buff
// granted attack, into weapon groups so weapon group targets see it
type WeaponGroupOverride struct {
	sources.BaseTargetOverride
}

func NewWeaponGroupOverride() *WeaponGroupOverride {
	return &WeaponGroupOverride{
		BaseTargetOverride: sources.NewBaseTargetOverride("weapon-group-override",
			sources.Journal(sources.JournalTargetOverrides, "weapon-group-override")),
	}
}

// IsInvalidItem is true for weapons and attacks, which have groups of their own
func (o *WeaponGroupOverride) IsInvalidItem(item *entity.Item) bool {
	return item == nil || item.Kind.IsWeaponLike()
}

func (o *WeaponGroupOverride) Prepare(_ *sources.Env, item *entity.Item, prepared *sources.Prepared) {
	if o.IsInvalidItem(item) {
		return
	}
	for _, group := range item.Flags.Strings(o.Key()) {
		if !slices.Contains(prepared.WeaponGroups, group) {
			prepared.WeaponGroups = append(prepared.WeaponGroups, group)
		}
	}
}

func (o *WeaponGroupOverride) Hints(_ *sources.Env, source *entity.Item) []string {
	groups := source.Flags.Strings(o.Key())
	if len(groups) == 0 {
		return nil
	}
	return groups
}

func (o *WeaponGroupOverride) Inputs(env *sources.Env, item *entity.Item, editable bool) []sheet.Input {
	input := o.Input(env, item, sheet.InputTrait, editable)
	for _, group := range targets.ActorWeaponGroups(env, item.Actor, item.Flags.Strings(o.Key())) {
		input.Choices = append(input.Choices, sheet.Choice{Key: group, Label: group})
	}
	return invalidate(env, o, item, []sheet.Input{input})
}
