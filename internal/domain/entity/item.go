package entity

import (
	"slices"
	"strings"
)

// ArmorStats is the armor portion of equipment
type ArmorStats struct {
	Base int
	ACP  int
}

// Item is the neutral wrapper over a host item document.
type Item struct {
	ID   string
	Name string
	Kind ItemKind

	Actor  *Actor
	Active bool
	Usable bool

	Slot         string
	BaseTypes    []string
	WeaponGroups []string
	Proficient   bool
	Tags         []string
	Descriptors  []string
	School       string
	Domains      []string
	Armor        ArmorStats

	// CompendiumSource is the canonical source id the item was copied from
	CompendiumSource string
	// Temporary items are never auto-flagged
	Temporary bool

	Actions []*Action

	// BooleanFlags work by presence of the key
	BooleanFlags map[string]bool
	Flags        Flags
}

func (i *Item) HasBooleanFlag(key string) bool {
	if i == nil {
		return false
	}
	_, ok := i.BooleanFlags[key]
	return ok
}

func (i *Item) AddBooleanFlag(key string) {
	if i.BooleanFlags == nil {
		i.BooleanFlags = make(map[string]bool)
	}
	i.BooleanFlags[key] = true
}

func (i *Item) RemoveBooleanFlag(key string) {
	delete(i.BooleanFlags, key)
}

// BooleanFlagKeys lists present boolean flags in sorted order
func (i *Item) BooleanFlagKeys() []string {
	keys := make([]string, 0, len(i.BooleanFlags))
	for k := range i.BooleanFlags {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

func (i *Item) SetFlag(key string, value any) {
	if i.Flags == nil {
		i.Flags = make(Flags)
	}
	i.Flags[key] = value
}

// HasCompendiumID matches either a bare id or the last segment of a source reference
func (i *Item) HasCompendiumID(id string) bool {
	if id == "" || i.CompendiumSource == "" {
		return false
	}
	return i.CompendiumSource == id || strings.HasSuffix(i.CompendiumSource, "."+id)
}

func (i *Item) DefaultAction() *Action {
	if len(i.Actions) == 0 {
		return nil
	}
	return i.Actions[0]
}

func (i *Item) Action(id string) *Action {
	for _, a := range i.Actions {
		if a.ID == id {
			return a
		}
	}
	return nil
}

// AddAction attaches a to the item and returns it
func (i *Item) AddAction(a *Action) *Action {
	a.Item = i
	i.Actions = append(i.Actions, a)
	return a
}

// HasAttack reports whether any action of the item rolls to hit
func (i *Item) HasAttack() bool {
	return slices.ContainsFunc(i.Actions, (*Action).HasAttack)
}

func (i *Item) HasWeaponGroup(group string) bool {
	return slices.Contains(i.WeaponGroups, group)
}
