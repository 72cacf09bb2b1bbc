// Package sheet describes the form controls the engine adds to an item sheet
// and the data behind the bonus picker. Rendering belongs to the host.
package sheet

// InputType is the kind of control to render
type InputType string

const (
	InputLabel        InputType = "label"
	InputEnabledLabel InputType = "enabled-label"
	InputText         InputType = "text"
	InputFormula      InputType = "formula"
	InputSelect       InputType = "select"
	InputTrait        InputType = "trait"
	InputChecklist    InputType = "checklist"
	InputItems        InputType = "items"
	InputTokens       InputType = "tokens"
	InputFormulaType  InputType = "formula-and-type"
)

// Category matches the picker section an input belongs to
type Category string

const (
	CategoryBonus             Category = "bonus"
	CategoryTarget            Category = "target"
	CategoryConditionalTarget Category = "conditional-target"
	CategoryTargetOverride    Category = "target-override"
	CategorySpecific          Category = "specific-bonus"
)

// Choice is one option of a select, trait or checklist input
type Choice struct {
	Key   string
	Label string
}

// Input is one control bound to a flag key
type Input struct {
	Key      string
	Label    string
	Tooltip  string
	Journal  string
	Type     InputType
	Category Category
	Editable bool
	// Value is the current flag value
	Value   any
	Choices []Choice
	// Limit caps the number of selected choices, 0 means unlimited
	Limit int
	// Secondary is the companion control of a compound input (the type
	// select next to a formula)
	Secondary *Input
	// Invalid marks a control placed on an item kind the source cannot apply to
	Invalid bool
	// SubLabel renders the input indented below its parent
	SubLabel bool
}

// PickerEntry is one toggle in the bonus picker
type PickerEntry struct {
	Key      string
	Label    string
	Tooltip  string
	Journal  string
	Selected bool
	Children []PickerEntry
}

// PickerData is everything the bonus picker dialog shows
type PickerData struct {
	Bonuses            []PickerEntry
	Targets            []PickerEntry
	ConditionalTargets []PickerEntry
	TargetOverrides    []PickerEntry
	Specifics          []PickerEntry
}

// Selected lists the keys of every selected entry, children included
func (p *PickerData) Selected() []string {
	var keys []string
	var walk func(entries []PickerEntry)
	walk = func(entries []PickerEntry) {
		for _, e := range entries {
			if e.Selected {
				keys = append(keys, e.Key)
			}
			walk(e.Children)
		}
	}
	walk(p.Bonuses)
	walk(p.Targets)
	walk(p.ConditionalTargets)
	walk(p.TargetOverrides)
	walk(p.Specifics)
	return keys
}
