package bonuses

import (
	"github.com/KirkDiggler/roll-bonuses/internal/domain/entity"
	"github.com/KirkDiggler/roll-bonuses/internal/domain/rolls"
	"github.com/KirkDiggler/roll-bonuses/internal/domain/rulebook/sources"
	"github.com/KirkDiggler/roll-bonuses/internal/domain/sheet"
)

// PathSize is the roll data size category, an entity.Size offset from medium
const PathSize = "size"

// EffectiveSizeBonus rolls damage as if the wielder were a number of size
// categories larger or smaller
type EffectiveSizeBonus struct {
	sources.BaseBonus
}

func NewEffectiveSizeBonus() *EffectiveSizeBonus {
	return &EffectiveSizeBonus{
		BaseBonus: sources.NewBaseBonus("effective-size", sources.Journal(sources.JournalBonuses, "effective-size")),
	}
}

func (b *EffectiveSizeBonus) AlterRollData(env *sources.Env, source *entity.Item, shared *rolls.Shared) {
	delta, ok := env.FormulaValue(source, b.Key(), shared.RollData)
	if !ok || delta == 0 {
		return
	}
	size := entity.Size(int(shared.RollData.Number(PathSize)) + int(delta))
	shared.RollData.Set(PathSize, float64(size.Clamp()))
}

func (b *EffectiveSizeBonus) Hints(env *sources.Env, source *entity.Item) []string {
	if f := source.Flags.String(b.Key()); f != "" {
		return []string{env.Loc.Text("bonus_effective-size.hint", f)}
	}
	return nil
}

func (b *EffectiveSizeBonus) Inputs(env *sources.Env, item *entity.Item, editable bool) []sheet.Input {
	return []sheet.Input{b.Input(env, item, sheet.InputFormula, editable)}
}
