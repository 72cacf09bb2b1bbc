package entity

import "fmt"

// ItemKind is the capability tag an item is ingested with. The engine never
// inspects concrete host types, only this tag.
type ItemKind int

const (
	ItemKindUnknown ItemKind = iota
	ItemKindWeapon
	ItemKindAttack
	ItemKindSpell
	ItemKindEquipment
	ItemKindFeat
	ItemKindBuff
	ItemKindConsumable
	ItemKindLoot
	ItemKindClass
	ItemKindRace
)

var itemKindNames = [...]string{
	"unknown",
	"weapon",
	"attack",
	"spell",
	"equipment",
	"feat",
	"buff",
	"consumable",
	"loot",
	"class",
	"race",
}

func (k ItemKind) String() string {
	if k < ItemKindUnknown || int(k) >= len(itemKindNames) {
		return "unknown"
	}
	return itemKindNames[k]
}

// ParseItemKind maps a host item type name onto its capability tag
func ParseItemKind(s string) (ItemKind, error) {
	for i, name := range itemKindNames {
		if name == s {
			return ItemKind(i), nil
		}
	}
	return ItemKindUnknown, fmt.Errorf("unknown item kind %q", s)
}

// IsWeaponLike reports whether the kind carries weapon groups natively
func (k ItemKind) IsWeaponLike() bool {
	return k == ItemKindWeapon || k == ItemKindAttack
}
