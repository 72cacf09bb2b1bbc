package entity

// Actor is the neutral wrapper over a host creature document
type Actor struct {
	ID   string
	Name string
	Size Size
	// Reach overrides the natural reach in feet; zero means 5ft
	Reach float64

	Conditions       map[Condition]bool
	Senses           Senses
	CreatureTypes    []string
	CreatureSubtypes []string
	// Skills maps host skill ids ("sen") to total modifiers
	Skills map[string]int

	Items []*Item
	Flags Flags
}

func (a *Actor) HasCondition(c Condition) bool {
	return a != nil && a.Conditions[c]
}

func (a *Actor) NaturalReach() float64 {
	if a == nil || a.Reach <= 0 {
		return 5
	}
	return a.Reach
}

// AddItem assigns ownership and appends the item
func (a *Actor) AddItem(item *Item) *Item {
	item.Actor = a
	a.Items = append(a.Items, item)
	return item
}

func (a *Actor) Item(id string) *Item {
	if a == nil {
		return nil
	}
	for _, item := range a.Items {
		if item.ID == id {
			return item
		}
	}
	return nil
}

// ItemsWithBooleanFlag returns active items carrying key, the host's per-actor flag cache
func (a *Actor) ItemsWithBooleanFlag(key string) []*Item {
	if a == nil {
		return nil
	}
	var out []*Item
	for _, item := range a.Items {
		if item.Active && item.HasBooleanFlag(key) {
			out = append(out, item)
		}
	}
	return out
}

// HasAnyBooleanFlag reports whether any active item of the actor carries key
func (a *Actor) HasAnyBooleanFlag(key string) bool {
	return len(a.ItemsWithBooleanFlag(key)) > 0
}

// WornArmor returns the first active equipment item in the armor slot
func (a *Actor) WornArmor() *Item {
	if a == nil {
		return nil
	}
	for _, item := range a.Items {
		if item.Kind == ItemKindEquipment && item.Active && item.Slot == "armor" {
			return item
		}
	}
	return nil
}
