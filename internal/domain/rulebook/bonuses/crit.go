package bonuses

import (
	"github.com/KirkDiggler/roll-bonuses/internal/domain/entity"
	"github.com/KirkDiggler/roll-bonuses/internal/domain/rolls"
	"github.com/KirkDiggler/roll-bonuses/internal/domain/rulebook/sources"
	"github.com/KirkDiggler/roll-bonuses/internal/domain/sheet"
)

// Roll data paths of the action being used
const (
	PathCritRange   = "action.critRange"
	PathCritMult    = "action.critMult"
	PathCritConfirm = "action.critConfirmBonus"
)

// CritBonus changes critical hits: keen doubles the threat range, then the
// offset widens it further, the multiplier offset and the confirmation bonus
// are added as is
type CritBonus struct {
	sources.BaseBonus
}

func NewCritBonus() *CritBonus {
	return &CritBonus{BaseBonus: sources.NewBaseBonus("crit", sources.Journal(sources.JournalBonuses, "crit"))}
}

func (b *CritBonus) KeenKey() string    { return b.SubKey("keen") }
func (b *CritBonus) OffsetKey() string  { return b.SubKey("offset") }
func (b *CritBonus) MultKey() string    { return b.SubKey("mult") }
func (b *CritBonus) ConfirmKey() string { return b.SubKey("confirm") }

func (b *CritBonus) AlterRollData(env *sources.Env, source *entity.Item, shared *rolls.Shared) {
	data := shared.RollData

	if threat := data.Number(PathCritRange); threat > 0 {
		if source.Flags.Bool(b.KeenKey()) {
			threat = 21 - (21-threat)*2
		}
		if offset, ok := env.FormulaValue(source, b.OffsetKey(), data); ok {
			threat -= offset
		}
		data.Set(PathCritRange, min(max(threat, 2), 20))
	}

	if mult, ok := env.FormulaValue(source, b.MultKey(), data); ok {
		data.Add(PathCritMult, mult)
	}
	if confirm, ok := env.FormulaValue(source, b.ConfirmKey(), data); ok {
		data.Add(PathCritConfirm, confirm)
	}
}

func (b *CritBonus) Hints(env *sources.Env, source *entity.Item) []string {
	var hints []string
	if source.Flags.Bool(b.KeenKey()) {
		hints = append(hints, env.Loc.Text("bonus_crit.keen"))
	}
	if f := source.Flags.String(b.OffsetKey()); f != "" {
		hints = append(hints, env.Loc.Text("bonus_crit.offset", f))
	}
	if f := source.Flags.String(b.MultKey()); f != "" {
		hints = append(hints, env.Loc.Text("bonus_crit.mult", f))
	}
	if f := source.Flags.String(b.ConfirmKey()); f != "" {
		hints = append(hints, env.Loc.Text("bonus_crit.confirm", f))
	}
	return hints
}

func (b *CritBonus) Inputs(env *sources.Env, item *entity.Item, editable bool) []sheet.Input {
	return []sheet.Input{
		b.Input(env, item, sheet.InputLabel, editable),
		b.InputFor(env, item, b.KeenKey(), sheet.InputEnabledLabel, editable),
		b.InputFor(env, item, b.OffsetKey(), sheet.InputFormula, editable),
		b.InputFor(env, item, b.MultKey(), sheet.InputFormula, editable),
		b.InputFor(env, item, b.ConfirmKey(), sheet.InputFormula, editable),
	}
}
