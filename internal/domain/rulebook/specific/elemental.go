package specific

import (
	"slices"
	"strings"

	"github.com/KirkDiggler/roll-bonuses/internal/domain/entity"
	"github.com/KirkDiggler/roll-bonuses/internal/domain/rolls"
	"github.com/KirkDiggler/roll-bonuses/internal/domain/rulebook/sources"
	"github.com/KirkDiggler/roll-bonuses/internal/domain/sheet"
)

// Elements are the damage elements an elemental bonus may pick
var Elements = []string{"acid", "cold", "electric", "fire"}

// Elemental modifies the caster level or save DC of spells of one element.
// A spell is of the element when its damage types, descriptors or domains
// name it.
type Elemental struct {
	sources.BaseSpecific
	// path is the roll data value changed, "cl" or "dcBonus"
	path  string
	label string
}

func newElemental(t, path, anchor string) *Elemental {
	e := &Elemental{
		BaseSpecific: sources.NewBaseSpecific("elemental-"+t, sources.Journal(sources.JournalSpecifics, anchor)),
		path:         path,
		label:        t + "-label-mod",
	}
	e.Required = []string{e.Key(), e.FormulaKey()}
	return e
}

func NewElementalCL() *Elemental {
	return newElemental("cl", "cl", "modify-elemental-spell-caster-level")
}

func NewElementalDC() *Elemental {
	return newElemental("dc", "dcBonus", "modify-elemental-spell-dc")
}

func (e *Elemental) FormulaKey() string { return e.Key() + "-formula" }

// Offset sums the formulas of the actor's sources whose element the spell is,
// and lists those elements
func (e *Elemental) Offset(env *sources.Env, item *entity.Item, action *entity.Action) (float64, []string) {
	if item == nil || item.Kind != entity.ItemKindSpell || item.Actor == nil {
		return 0, nil
	}
	if action == nil {
		action = item.DefaultAction()
	}
	if action == nil {
		return 0, nil
	}

	var found []string
	for _, candidate := range slices.Concat(action.DamageTypes, item.Descriptors, item.Domains) {
		c := strings.ToLower(strings.TrimSpace(candidate))
		if slices.Contains(Elements, c) && !slices.Contains(found, c) {
			found = append(found, c)
		}
	}
	if len(found) == 0 {
		return 0, nil
	}

	var offset float64
	var elements []string
	for _, source := range actorSources(item.Actor, e.Key()) {
		element := source.Flags.String(e.Key())
		if !slices.Contains(found, element) {
			continue
		}
		value, ok := env.FormulaValue(source, e.FormulaKey(), nil)
		if !ok {
			continue
		}
		offset += value
		elements = append(elements, env.Loc.Text("element."+element))
	}
	return offset, elements
}

func (e *Elemental) modLabel(env *sources.Env, offset float64, elements []string) string {
	return env.Loc.Text(e.label, strings.Join(elements, ", "), signed(offset))
}

// RollData offsets the spell's cl or dcBonus
func (e *Elemental) RollData(env *sources.Env, subject sources.Subject, data rolls.RollData) {
	offset, _ := e.Offset(env, subject.ResolveItem(), subject.ResolveAction())
	if offset != 0 {
		data.Add(e.path, offset)
	}
}

func (e *Elemental) ChatProps(env *sources.Env, item *entity.Item, action *entity.Action) []string {
	offset, elements := e.Offset(env, item, action)
	if offset == 0 {
		return nil
	}
	return []string{e.modLabel(env, offset, elements)}
}

// ItemHints labels an affected spell
func (e *Elemental) ItemHints(env *sources.Env, item *entity.Item) []rolls.Hint {
	offset, elements := e.Offset(env, item, nil)
	if offset == 0 {
		return nil
	}
	return []rolls.Hint{{Label: e.modLabel(env, offset, elements), Hint: e.Label(env.Loc)}}
}

func (e *Elemental) Hints(env *sources.Env, source *entity.Item) []string {
	element := source.Flags.String(e.Key())
	if element == "" {
		return nil
	}
	total, ok := env.FormulaValue(source, e.FormulaKey(), nil)
	if !ok || total == 0 {
		return nil
	}
	return []string{e.modLabel(env, total, []string{env.Loc.Text("element." + element)})}
}

func (e *Elemental) Inputs(env *sources.Env, item *entity.Item, editable bool) []sheet.Input {
	input := e.InputFor(env, item, e.FormulaKey(), sheet.InputFormulaType, editable)
	input.Label, input.Tooltip = e.Label(env.Loc), e.Tooltip(env.Loc)

	element := e.Input(env, item, sheet.InputSelect, editable)
	for _, el := range Elements {
		element.Choices = append(element.Choices, sheet.Choice{Key: el, Label: env.Loc.Text("element." + el)})
	}
	input.Secondary = &element
	return []sheet.Input{input}
}
