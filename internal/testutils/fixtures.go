package testutils

import (
	"fmt"

	"github.com/KirkDiggler/roll-bonuses/internal/domain/entity"
	"github.com/KirkDiggler/roll-bonuses/internal/domain/geometry"
)

// CreateTestScene creates a square grid scene with 100px cells worth 5ft
func CreateTestScene(id string) *geometry.Scene {
	return &geometry.Scene{
		ID: id,
		Grid: geometry.Grid{
			Size:      100,
			Distance:  5,
			Type:      geometry.GridSquare,
			Diagonals: geometry.Diagonals5105,
		},
	}
}

// CreateTestActor creates an actor with no items
func CreateTestActor(id string, size entity.Size) *entity.Actor {
	return &entity.Actor{
		ID:         id,
		Name:       fmt.Sprintf("Actor %s", id),
		Size:       size,
		Conditions: map[entity.Condition]bool{},
		Skills:     map[string]int{},
		Flags:      entity.Flags{},
	}
}

// CreateTestWeapon gives actor an active melee weapon with a single attack
func CreateTestWeapon(actor *entity.Actor, id string, groups ...string) *entity.Item {
	weapon := &entity.Item{
		ID:           id,
		Name:         id,
		Kind:         entity.ItemKindWeapon,
		Active:       true,
		Usable:       true,
		WeaponGroups: groups,
		Proficient:   true,
		Flags:        entity.Flags{},
	}
	weapon.AddAction(&entity.Action{
		ID:        id + "-attack",
		Name:      "Attack",
		Type:      entity.ActionMeleeWeapon,
		Range:     entity.Range{Units: entity.RangeMelee},
		CritRange: 20,
		CritMult:  2,
	})
	if actor != nil {
		actor.AddItem(weapon)
	}
	return weapon
}

// CreateTestReachWeapon gives actor an active reach weapon
func CreateTestReachWeapon(actor *entity.Actor, id string) *entity.Item {
	weapon := CreateTestWeapon(actor, id, "polearms")
	weapon.Actions[0].Range = entity.Range{Units: entity.RangeReach}
	return weapon
}

// CreateTestBow gives actor an active ranged weapon with a 100ft increment
func CreateTestBow(actor *entity.Actor, id string) *entity.Item {
	bow := CreateTestWeapon(actor, id, "bows")
	bow.Actions[0].Type = entity.ActionRangedWeapon
	bow.Actions[0].Range = entity.Range{Units: entity.RangeFeet, Value: 100, MaxIncrements: 10}
	return bow
}

// PlaceTestToken puts actor on the grid at column, row spanning cells squares per side
func PlaceTestToken(scene *geometry.Scene, actor *entity.Actor, col, row, cells float64, disposition geometry.Disposition) *geometry.Token {
	size := scene.Grid.Size
	return scene.AddToken(&geometry.Token{
		ID:          fmt.Sprintf("token-%s", actor.ID),
		Bounds:      geometry.Rect{X: col * size, Y: row * size, W: cells * size, H: cells * size},
		Disposition: disposition,
		Actor:       actor,
	})
}

// CreateTestFeat gives actor an active feat carrying the boolean flags
func CreateTestFeat(actor *entity.Actor, id, name string, booleanFlags ...string) *entity.Item {
	feat := &entity.Item{
		ID:     id,
		Name:   name,
		Kind:   entity.ItemKindFeat,
		Active: true,
		Flags:  entity.Flags{},
	}
	for _, key := range booleanFlags {
		feat.AddBooleanFlag(key)
	}
	if actor != nil {
		actor.AddItem(feat)
	}
	return feat
}

// CreateTestSpell gives actor a spell with a single ranged spell attack
func CreateTestSpell(actor *entity.Actor, id string, damageTypes ...string) *entity.Item {
	spell := &entity.Item{
		ID:     id,
		Name:   id,
		Kind:   entity.ItemKindSpell,
		Active: true,
		Usable: true,
		Flags:  entity.Flags{},
	}
	spell.AddAction(&entity.Action{
		ID:          id + "-cast",
		Name:        "Cast",
		Type:        entity.ActionRangedSpell,
		Range:       entity.Range{Units: entity.RangeClose},
		DamageTypes: damageTypes,
	})
	if actor != nil {
		actor.AddItem(spell)
	}
	return spell
}
