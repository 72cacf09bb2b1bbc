package sources

import (
	"github.com/KirkDiggler/roll-bonuses/internal/domain/entity"
	"github.com/KirkDiggler/roll-bonuses/internal/domain/sheet"
	"github.com/KirkDiggler/roll-bonuses/internal/i18n"
)

// Picker builds the bonus picker for item. Specific bonuses with a parent
// are listed under it.
func (r *Registry) Picker(loc i18n.Localizer, item *entity.Item, isGM bool) *sheet.PickerData {
	viewer := ForViewer(isGM)
	entries := func(base BaseType, opts ...ListOption) []sheet.PickerEntry {
		var out []sheet.PickerEntry
		for kind := range r.AllOfBaseType(base, loc, append(opts, viewer)...) {
			out = append(out, pickerEntry(loc, kind, item))
		}
		return out
	}

	data := &sheet.PickerData{
		Bonuses:            entries(BaseTypeBonus),
		Targets:            entries(BaseTypeTarget, Conditional(false)),
		ConditionalTargets: entries(BaseTypeTarget, Conditional(true)),
		TargetOverrides:    entries(BaseTypeTargetOverride),
	}

	children := make(map[string][]sheet.PickerEntry)
	var parents []Kind
	for kind := range r.AllOfBaseType(BaseTypeSpecific, loc, viewer) {
		if parent := kind.Meta().Parent; parent != "" {
			children[parent] = append(children[parent], pickerEntry(loc, kind, item))
			continue
		}
		parents = append(parents, kind)
	}
	for _, kind := range parents {
		entry := pickerEntry(loc, kind, item)
		entry.Children = children[kind.Key()]
		delete(children, kind.Key())
		data.Specifics = append(data.Specifics, entry)
	}
	// a child whose parent is not visible is shown on its own
	for kind := range r.AllOfBaseType(BaseTypeSpecific, loc, viewer) {
		if _, orphan := children[kind.Meta().Parent]; orphan {
			data.Specifics = append(data.Specifics, pickerEntry(loc, kind, item))
		}
	}

	return data
}

func pickerEntry(loc i18n.Localizer, kind Kind, item *entity.Item) sheet.PickerEntry {
	meta := kind.Meta()
	return sheet.PickerEntry{
		Key:      kind.Key(),
		Label:    meta.Label(loc),
		Tooltip:  meta.Tooltip(loc),
		Journal:  meta.Journal,
		Selected: item.HasBooleanFlag(kind.Key()),
	}
}
