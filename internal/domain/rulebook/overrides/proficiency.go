package overrides

import (
	"github.com/KirkDiggler/roll-bonuses/internal/domain/entity"
	"github.com/KirkDiggler/roll-bonuses/internal/domain/rulebook/sources"
	"github.com/KirkDiggler/roll-bonuses/internal/domain/sheet"
)

// ProficiencyOverride makes its item count as proficient, for spells and
// other items the host has no proficiency toggle for
type ProficiencyOverride struct {
	sources.BaseTargetOverride
}

func NewProficiencyOverride() *ProficiencyOverride {
	return &ProficiencyOverride{
		BaseTargetOverride: sources.NewBaseTargetOverride("proficiency",
			sources.Journal(sources.JournalTargetOverrides, "proficiency")),
	}
}

func (o *ProficiencyOverride) IsInvalidItem(item *entity.Item) bool {
	if item == nil {
		return true
	}
	switch item.Kind {
	case entity.ItemKindAttack, entity.ItemKindEquipment, entity.ItemKindWeapon:
		return true
	}
	return false
}

func (o *ProficiencyOverride) Prepare(_ *sources.Env, item *entity.Item, prepared *sources.Prepared) {
	if !o.IsInvalidItem(item) {
		prepared.Proficient = true
	}
}

func (o *ProficiencyOverride) Inputs(env *sources.Env, item *entity.Item, editable bool) []sheet.Input {
	return invalidate(env, o, item, []sheet.Input{o.Input(env, item, sheet.InputEnabledLabel, editable)})
}
