package bonuses

import (
	"fmt"
	"strings"

	"github.com/KirkDiggler/roll-bonuses/internal/domain/entity"
	"github.com/KirkDiggler/roll-bonuses/internal/domain/rolls"
	"github.com/KirkDiggler/roll-bonuses/internal/domain/rulebook/sources"
	"github.com/KirkDiggler/roll-bonuses/internal/domain/sheet"
)

// DamageEntry is one formula of a damage bonus
type DamageEntry struct {
	Formula  string
	Types    []string
	Critical rolls.CriticalMode
}

// DamageBonus adds one or more typed damage formulas
type DamageBonus struct {
	sources.BaseBonus
}

func NewDamageBonus() *DamageBonus {
	return &DamageBonus{BaseBonus: sources.NewBaseBonus("damage", sources.Journal(sources.JournalBonuses, "damage"))}
}

// Entries decodes the flag, a list of {formula, types, crit} maps. A plain
// string is a single untyped entry.
func (b *DamageBonus) Entries(source *entity.Item) []DamageEntry {
	var raw []any
	switch v := source.Flags[b.Key()].(type) {
	case string:
		if v == "" {
			return nil
		}
		return []DamageEntry{{Formula: v, Critical: rolls.CriticalNormal}}
	case []any:
		raw = v
	case []map[string]any:
		for _, m := range v {
			raw = append(raw, m)
		}
	case []DamageEntry:
		return v
	}

	var entries []DamageEntry
	for _, r := range raw {
		m, ok := r.(map[string]any)
		if !ok {
			continue
		}
		fields := entity.Flags(m)
		entry := DamageEntry{
			Formula:  fields.String("formula"),
			Types:    fields.Strings("types"),
			Critical: rolls.CriticalMode(fields.String("crit")),
		}
		if entry.Formula == "" {
			continue
		}
		if entry.Critical == "" {
			entry.Critical = rolls.CriticalNormal
		}
		entries = append(entries, entry)
	}
	return entries
}

func (b *DamageBonus) Conditional(env *sources.Env, source *entity.Item, _ sources.Subject) *rolls.Conditional {
	var modifiers []rolls.Modifier
	for _, e := range b.Entries(source) {
		modifiers = append(modifiers, rolls.Modifier{
			ID:          env.NewID(),
			Formula:     e.Formula,
			Target:      rolls.TargetDamage,
			Type:        "untyped",
			DamageTypes: e.Types,
			Critical:    e.Critical,
		})
	}
	return conditional(env, source, modifiers...)
}

// DamageSources keeps the formula text even when it has no static value
func (b *DamageBonus) DamageSources(env *sources.Env, source *entity.Item) []rolls.Change {
	var changes []rolls.Change
	data := rollData(source)
	for _, e := range b.Entries(source) {
		if e.Critical == rolls.CriticalOnly {
			continue
		}
		value, _ := env.Evaluate(e.Formula, data)
		changes = append(changes, rolls.Change{
			Formula: e.Formula,
			Value:   value,
			Target:  "damage",
			Type:    strings.Join(e.Types, ", "),
			Name:    source.Name,
		})
	}
	return changes
}

func (b *DamageBonus) Hints(env *sources.Env, source *entity.Item) []string {
	var hints []string
	for _, e := range b.Entries(source) {
		hint := e.Formula
		if len(e.Types) > 0 {
			hint = fmt.Sprintf("%s (%s)", e.Formula, strings.Join(e.Types, ", "))
		}
		switch e.Critical {
		case rolls.CriticalOnly:
			hint += " " + env.Loc.Text("bonus_damage.crit-only")
		case rolls.CriticalNonCrit:
			hint += " " + env.Loc.Text("bonus_damage.non-crit")
		}
		hints = append(hints, hint)
	}
	return hints
}

func (b *DamageBonus) Inputs(env *sources.Env, item *entity.Item, editable bool) []sheet.Input {
	return []sheet.Input{b.Input(env, item, sheet.InputFormula, editable)}
}
