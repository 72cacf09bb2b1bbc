// Package overrides holds target overrides: kinds that change how their own
// source item is matched rather than contributing a bonus.
package overrides

import (
	"github.com/KirkDiggler/roll-bonuses/internal/domain/entity"
	"github.com/KirkDiggler/roll-bonuses/internal/domain/rulebook/sources"
	"github.com/KirkDiggler/roll-bonuses/internal/domain/sheet"
)

// All returns a fresh instance of every target override
func All() []sources.Kind {
	return []sources.Kind{
		NewWeaponGroupOverride(),
		NewProficiencyOverride(),
	}
}

// invalidate marks inputs of an override on an item it cannot apply to
func invalidate(env *sources.Env, override sources.TargetOverride, item *entity.Item, inputs []sheet.Input) []sheet.Input {
	if !override.IsInvalidItem(item) {
		return inputs
	}
	for i := range inputs {
		inputs[i].Invalid = true
		inputs[i].Tooltip = env.Loc.Text("target-override.invalid")
	}
	return inputs
}
