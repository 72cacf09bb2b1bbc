package entity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/roll-bonuses/internal/domain/entity"
)

func TestFlagsNormalization(t *testing.T) {
	flags := entity.Flags{
		"list":   []any{"monk", 3, "natural"},
		"single": "fire",
		"num":    2,
		"on":     true,
	}

	assert.Equal(t, []string{"monk", "natural"}, flags.Strings("list"))
	assert.Equal(t, []string{"fire"}, flags.Strings("single"))
	assert.Nil(t, flags.Strings("missing"))
	assert.Equal(t, "fire", flags.String("single"))

	n, ok := flags.Number("num")
	assert.True(t, ok)
	assert.Equal(t, 2.0, n)
	assert.True(t, flags.Bool("on"))
	assert.True(t, flags.Bool("num"))
	assert.False(t, flags.Bool("missing"))
}

func TestFlagsCloneDoesNotAlias(t *testing.T) {
	flags := entity.Flags{"groups": []string{"monk"}}
	clone := flags.Clone()
	clone["groups"].([]string)[0] = "natural"

	assert.Equal(t, []string{"monk"}, flags.Strings("groups"))
}

func TestReferenceID(t *testing.T) {
	assert.Equal(t, "def", entity.ReferenceID("Actor.abc.Item.def"))
	assert.Equal(t, "plain", entity.ReferenceID("plain"))
}

func TestItemBooleanFlags(t *testing.T) {
	item := &entity.Item{ID: "i1"}
	assert.False(t, item.HasBooleanFlag("bonus_attack"))

	item.AddBooleanFlag("bonus_attack")
	item.AddBooleanFlag("target_item")
	assert.True(t, item.HasBooleanFlag("bonus_attack"))
	assert.Equal(t, []string{"bonus_attack", "target_item"}, item.BooleanFlagKeys())

	item.RemoveBooleanFlag("bonus_attack")
	assert.False(t, item.HasBooleanFlag("bonus_attack"))

	var missing *entity.Item
	assert.False(t, missing.HasBooleanFlag("anything"))
}

func TestItemCompendiumID(t *testing.T) {
	item := &entity.Item{CompendiumSource: "Compendium.pf1.feats.Item.6HVdbIFcRuTq8o7p"}

	assert.True(t, item.HasCompendiumID("6HVdbIFcRuTq8o7p"))
	assert.False(t, item.HasCompendiumID("p"))
	assert.False(t, item.HasCompendiumID(""))
}

func TestActionRanges(t *testing.T) {
	actor := &entity.Actor{ID: "a", Size: entity.SizeLarge, Reach: 10}
	item := actor.AddItem(&entity.Item{ID: "glaive", Kind: entity.ItemKindWeapon})
	melee := item.AddAction(&entity.Action{ID: "m", Type: entity.ActionMeleeWeapon, Range: entity.Range{Units: entity.RangeMelee}})
	reach := item.AddAction(&entity.Action{ID: "r", Type: entity.ActionMeleeWeapon, Range: entity.Range{Units: entity.RangeReach}})
	bow := item.AddAction(&entity.Action{ID: "b", Type: entity.ActionRangedWeapon, Range: entity.Range{Units: entity.RangeFeet, Value: 100, MaxIncrements: 10}})
	pole := item.AddAction(&entity.Action{ID: "p", Type: entity.ActionMeleeWeapon, Range: entity.Range{Units: entity.RangeFeet, Value: 10}})

	assert.Equal(t, 10.0, melee.MaxRange())
	assert.Equal(t, 20.0, reach.MaxRange())
	assert.Equal(t, 1000.0, bow.MaxRange())
	assert.True(t, bow.IsRanged())
	assert.True(t, melee.IsMelee())
	assert.True(t, reach.HasReachRange())
	assert.True(t, pole.HasReachRange())
	assert.False(t, bow.HasReachRange())
	assert.Same(t, actor, pole.Actor())
	assert.True(t, item.HasAttack())
}

func TestSizes(t *testing.T) {
	size, err := entity.ParseSize("huge")
	require.NoError(t, err)
	assert.Equal(t, entity.SizeHuge, size)
	assert.Equal(t, "lg", entity.SizeLarge.String())
	assert.Equal(t, entity.SizeColossal, (entity.SizeColossal + 3).Clamp())
	assert.Equal(t, 2, int(entity.SizeHuge-entity.SizeMedium))

	_, err = entity.ParseSize("enormous")
	assert.Error(t, err)
}

func TestItemKinds(t *testing.T) {
	kind, err := entity.ParseItemKind("spell")
	require.NoError(t, err)
	assert.Equal(t, entity.ItemKindSpell, kind)
	assert.Equal(t, "weapon", entity.ItemKindWeapon.String())
	assert.True(t, entity.ItemKindAttack.IsWeaponLike())

	_, err = entity.ParseItemKind("vehicle")
	assert.Error(t, err)
}

func TestActorHelpers(t *testing.T) {
	actor := &entity.Actor{ID: "a", Conditions: map[entity.Condition]bool{entity.ConditionBlind: true}}
	armor := actor.AddItem(&entity.Item{ID: "plate", Kind: entity.ItemKindEquipment, Slot: "armor", Active: true})
	feat := actor.AddItem(&entity.Item{ID: "feat", Kind: entity.ItemKindFeat, Active: true})
	feat.AddBooleanFlag("fates-favored")
	inactive := actor.AddItem(&entity.Item{ID: "off", Kind: entity.ItemKindFeat})
	inactive.AddBooleanFlag("fates-favored")

	assert.True(t, actor.HasCondition(entity.ConditionBlind))
	assert.Same(t, armor, actor.WornArmor())
	assert.Equal(t, []*entity.Item{feat}, actor.ItemsWithBooleanFlag("fates-favored"))
	assert.True(t, actor.HasAnyBooleanFlag("fates-favored"))
	assert.Equal(t, 5.0, actor.NaturalReach())
	assert.Same(t, feat, actor.Item("feat"))
	assert.Nil(t, actor.Item("nope"))
}
