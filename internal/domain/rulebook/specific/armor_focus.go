package specific

import (
	"context"
	"slices"
	"strings"

	"github.com/KirkDiggler/roll-bonuses/internal/domain/entity"
	"github.com/KirkDiggler/roll-bonuses/internal/domain/rolls"
	"github.com/KirkDiggler/roll-bonuses/internal/domain/rulebook/sources"
	"github.com/KirkDiggler/roll-bonuses/internal/domain/sheet"
	"github.com/KirkDiggler/roll-bonuses/internal/i18n"
)

// Roll data paths of an armor item
const (
	PathArmorACP   = "item.armor.acp"
	PathArmorTotal = "item.armor.total"
)

// ArmorFocus adds 1 to the armor bonus of the chosen armor base type
type ArmorFocus struct {
	sources.BaseSpecific
}

func NewArmorFocus() *ArmorFocus {
	f := &ArmorFocus{
		BaseSpecific: sources.NewBaseSpecific("armor-focus", sources.Journal(sources.JournalSpecifics, "armor-focus")),
	}
	f.Required = []string{f.Key()}
	return f
}

// Focused lists the armor types chosen on the actor's armor focus feats
func (f *ArmorFocus) Focused(actor *entity.Actor) []string {
	return focusedValues(actor, f.Key())
}

func (f *ArmorFocus) DefaultChanges(env *sources.Env, actor *entity.Actor, changes []rolls.Change) []rolls.Change {
	armor := actor.WornArmor()
	if armor == nil || !intersects(f.Focused(actor), armor.BaseTypes) {
		return changes
	}
	return append(changes, rolls.Change{
		ID:      f.Key() + "_" + armor.ID,
		Formula: "1",
		Value:   1,
		Target:  "aac",
		Type:    "untyped",
		Name:    f.Label(env.Loc),
		Flavor:  f.Label(env.Loc),
	})
}

func (f *ArmorFocus) Hints(env *sources.Env, source *entity.Item) []string {
	if armor := source.Flags.String(f.Key()); armor != "" {
		return []string{armor}
	}
	return nil
}

// Inputs offers the base types of the actor's armor
func (f *ArmorFocus) Inputs(env *sources.Env, item *entity.Item, editable bool) []sheet.Input {
	input := f.Input(env, item, sheet.InputSelect, editable)
	var types []string
	if item.Actor != nil {
		for _, i := range item.Actor.Items {
			if i.Kind == entity.ItemKindEquipment && i.Slot == "armor" {
				types = append(types, i.BaseTypes...)
			}
		}
	}
	input.Choices = valueChoices(types, input.Value)
	return []sheet.Input{input}
}

// ImprovedArmorFocus lowers the armor check penalty of an armor type already
// chosen for armor focus by 1, never below 0
type ImprovedArmorFocus struct {
	sources.BaseSpecific
}

func NewImprovedArmorFocus() *ImprovedArmorFocus {
	f := &ImprovedArmorFocus{
		BaseSpecific: sources.NewBaseSpecific("improved-armor-focus",
			sources.Journal(sources.JournalSpecifics, "armor-focus"), "WmEE6BOuP5Uh7pEE"),
	}
	f.Required = []string{f.Key()}
	f.Parent = "armor-focus"
	return f
}

// Detect matches names containing both the armor focus name and "improved",
// whatever the word order of the language
func (f *ImprovedArmorFocus) Detect(env *sources.Env, item *entity.Item) bool {
	if f.MatchesCompendium(item) {
		return true
	}
	if item == nil || item.Name == "" {
		return false
	}
	name := env.Loc.Fold(item.Name)
	return strings.Contains(name, env.Loc.Fold(env.Loc.Text(i18n.NameKey(f.Parent)))) &&
		strings.Contains(name, env.Loc.Fold(env.Loc.Text("improved")))
}

func (f *ImprovedArmorFocus) focusedArmor(actor *entity.Actor) *entity.Item {
	armor := actor.WornArmor()
	if armor == nil || !intersects(focusedValues(actor, f.Key()), armor.BaseTypes) {
		return nil
	}
	return armor
}

// RollData lowers the acp in the roll data of the focused armor
func (f *ImprovedArmorFocus) RollData(_ *sources.Env, subject sources.Subject, data rolls.RollData) {
	item := subject.ResolveItem()
	if item == nil || item.Kind != entity.ItemKindEquipment {
		return
	}
	if f.focusedArmor(item.Actor) == nil {
		return
	}
	current := data.Number(PathArmorACP)
	updated := max(current-1, 0)
	if updated != current {
		data.Set(PathArmorACP, updated)
		data.Add(PathArmorTotal, -1)
	}
}

func (f *ImprovedArmorFocus) DefaultChanges(env *sources.Env, actor *entity.Actor, changes []rolls.Change) []rolls.Change {
	armor := f.focusedArmor(actor)
	if armor == nil || armor.Armor.ACP <= 0 {
		return changes
	}
	return append(changes, rolls.Change{
		ID:      f.Key() + "_" + armor.ID,
		Formula: "-1",
		Value:   -1,
		Target:  "acpA",
		Type:    "untypedPerm",
		Name:    f.Label(env.Loc),
		Flavor:  f.Label(env.Loc),
	})
}

// OnCreate picks the first armor focus choice when none is set
func (f *ImprovedArmorFocus) OnCreate(ctx context.Context, env *sources.Env, item *entity.Item) error {
	if item.Flags.String(f.Key()) != "" {
		return nil
	}
	focused := focusedValues(item.Actor, f.Parent)
	if len(focused) == 0 {
		return nil
	}
	return env.SetValues(ctx, item, map[string]any{f.Key(): focused[0]})
}

func (f *ImprovedArmorFocus) Hints(env *sources.Env, source *entity.Item) []string {
	if armor := source.Flags.String(f.Key()); armor != "" {
		return []string{armor, f.Tooltip(env.Loc)}
	}
	return nil
}

// Inputs offers the armor types chosen for armor focus
func (f *ImprovedArmorFocus) Inputs(env *sources.Env, item *entity.Item, editable bool) []sheet.Input {
	input := f.Input(env, item, sheet.InputSelect, editable)
	input.Choices = valueChoices(focusedValues(item.Actor, f.Parent), input.Value)
	return []sheet.Input{input}
}

func focusedValues(actor *entity.Actor, key string) []string {
	var values []string
	for _, source := range actorSources(actor, key) {
		if v := source.Flags.String(key); v != "" && !slices.Contains(values, v) {
			values = append(values, v)
		}
	}
	return values
}

// valueChoices keeps the current value selectable even when it is no longer offered
func valueChoices(keys []string, current any) []sheet.Choice {
	if s, ok := current.(string); ok && s != "" && !slices.Contains(keys, s) {
		keys = append(keys, s)
	}
	var out []sheet.Choice
	for _, k := range keys {
		if !slices.ContainsFunc(out, func(c sheet.Choice) bool { return c.Key == k }) {
			out = append(out, sheet.Choice{Key: k, Label: k})
		}
	}
	return out
}

func intersects(a, b []string) bool {
	return slices.ContainsFunc(a, func(s string) bool {
		return slices.Contains(b, s)
	})
}
