package sources

import (
	"github.com/KirkDiggler/roll-bonuses/internal/domain/entity"
	"github.com/KirkDiggler/roll-bonuses/internal/i18n"
)

// BaseType is the family a source kind belongs to
type BaseType int

const (
	BaseTypeBonus BaseType = iota
	BaseTypeTarget
	BaseTypeTargetOverride
	BaseTypeSpecific
	BaseTypeGlobal
)

var baseTypeNames = [...]string{
	"bonus",
	"target",
	"target-override",
	"specific",
	"global-bonus",
}

func (b BaseType) String() string {
	if b < BaseTypeBonus || int(b) >= len(baseTypeNames) {
		return "unknown"
	}
	return baseTypeNames[b]
}

// Descriptor is the immutable identity of a source kind. Kinds embed one of
// the Base* structs, which embed a Descriptor.
type Descriptor struct {
	Base BaseType
	// Source is the key without its base type prefix ("weapon-group")
	Source  string
	Journal string

	// GMOnly kinds are hidden from players in the picker
	GMOnly bool
	// Conditional targets only match during an action use with targets
	Conditional bool
	// ShowOnActive targets open their editor when the item is activated
	ShowOnActive bool
	// Generic targets match every attack and can be skipped
	Generic bool
	// Parent nests a specific bonus under another in the picker
	Parent string
}

// Key is the registry key and the boolean flag that marks an item as a source
func (d *Descriptor) Key() string {
	switch d.Base {
	case BaseTypeSpecific:
		return d.Source
	case BaseTypeGlobal:
		return "global-bonus_" + d.Source
	}
	return d.Base.String() + "_" + d.Source
}

func (d *Descriptor) Meta() *Descriptor { return d }

// IsSource reports whether item carries the kind's boolean flag
func (d *Descriptor) IsSource(item *entity.Item) bool {
	return item.HasBooleanFlag(d.Key())
}

func (d *Descriptor) Label(loc i18n.Localizer) string {
	return loc.Text(i18n.LabelKey(d.Key()))
}

func (d *Descriptor) Tooltip(loc i18n.Localizer) string {
	return loc.Text(i18n.TooltipKey(d.Key()))
}

// SubKey derives a companion flag key such as "bonus_initiative-formula"
func (d *Descriptor) SubKey(suffix string) string {
	return d.Key() + "-" + suffix
}

// Documentation journal pages
const (
	JournalBonuses            = "VlFEvwU7m3nbjy5d"
	JournalTargets            = "iurMG1TBoX3auh5z"
	JournalConditionalTargets = "IpRhJqZEX2TUarSX"
	JournalTargetOverrides    = "fzOO7K3iPTrSolY1"
	JournalSpecifics          = "ez01dzSQxPTiyXor"
	JournalGlobals            = "4A4bCh8VsQVbTsAY"
)

// Journal builds a documentation reference to anchor on page
func Journal(page, anchor string) string {
	return "Compendium.ckl-roll-bonuses.roll-bonuses-documentation.JournalEntry.FrG2K3YAM1jdSxcC.JournalEntryPage." + page + "#" + anchor
}
