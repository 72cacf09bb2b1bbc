package entity

// ActionType is the attack or effect category of an action
type ActionType string

const (
	ActionMeleeWeapon    ActionType = "mwak"
	ActionRangedWeapon   ActionType = "rwak"
	ActionThrownWeapon   ActionType = "twak"
	ActionMeleeSpell     ActionType = "msak"
	ActionRangedSpell    ActionType = "rsak"
	ActionMeleeManeuver  ActionType = "mcman"
	ActionRangedManeuver ActionType = "rcman"
	ActionSpellSave      ActionType = "spellsave"
	ActionSave           ActionType = "save"
	ActionHeal           ActionType = "heal"
	ActionOther          ActionType = "other"
)

// RangeUnits is the unit an action's range is expressed in
type RangeUnits string

const (
	RangeNone      RangeUnits = ""
	RangeFeet      RangeUnits = "ft"
	RangeMeters    RangeUnits = "m"
	RangeMelee     RangeUnits = "melee"
	RangeReach     RangeUnits = "reach"
	RangeTouch     RangeUnits = "touch"
	RangeClose     RangeUnits = "close"
	RangeMedium    RangeUnits = "medium"
	RangeLong      RangeUnits = "long"
	RangePersonal  RangeUnits = "personal"
	RangeUnlimited RangeUnits = "unlimited"
)

// Range describes how far an action reaches and the optional minimum
type Range struct {
	Units         RangeUnits
	Value         float64
	MaxIncrements int
	MinUnits      RangeUnits
	MinValue      float64
}

// Action is one usable action on an item
type Action struct {
	ID          string
	Name        string
	Item        *Item
	Type        ActionType
	Range       Range
	DamageTypes []string
	// CritRange is the lowest natural roll that threatens a critical
	CritRange int
	CritMult  int
}

func (a *Action) Actor() *Actor {
	if a == nil || a.Item == nil {
		return nil
	}
	return a.Item.Actor
}

func (a *Action) HasAttack() bool {
	switch a.Type {
	case ActionMeleeWeapon, ActionRangedWeapon, ActionThrownWeapon,
		ActionMeleeSpell, ActionRangedSpell, ActionMeleeManeuver, ActionRangedManeuver:
		return true
	}
	return false
}

func (a *Action) IsRanged() bool {
	switch a.Type {
	case ActionRangedWeapon, ActionThrownWeapon, ActionRangedSpell, ActionRangedManeuver:
		return true
	}
	return false
}

func (a *Action) IsMelee() bool {
	return a.HasAttack() && !a.IsRanged()
}

// RangeFeet is the single increment distance in feet; 0 means no range
func (a *Action) RangeFeet() float64 {
	return a.unitsToFeet(a.Range.Units, a.Range.Value)
}

// MaxRange is the farthest distance the action can affect, counting increments
func (a *Action) MaxRange() float64 {
	r := a.RangeFeet()
	switch a.Range.Units {
	case RangeFeet, RangeMeters:
		if a.Range.MaxIncrements > 1 {
			return r * float64(a.Range.MaxIncrements)
		}
	}
	return r
}

func (a *Action) MinRange() float64 {
	return a.unitsToFeet(a.Range.MinUnits, a.Range.MinValue)
}

// HasReachRange reports the 10ft or 3m single increment pattern host data uses for reach weapons
func (a *Action) HasReachRange() bool {
	single := a.Range.MaxIncrements <= 1
	switch a.Range.Units {
	case RangeReach:
		return true
	case RangeFeet:
		return single && a.Range.Value == 10
	case RangeMeters:
		return single && a.Range.Value == 3
	}
	return false
}

func (a *Action) unitsToFeet(units RangeUnits, value float64) float64 {
	reach := 5.0
	if actor := a.Actor(); actor != nil {
		reach = actor.NaturalReach()
	}

	switch units {
	case RangeFeet, RangeMeters:
		return value
	case RangeMelee, RangeTouch:
		return reach
	case RangeReach:
		return reach * 2
	case RangeClose:
		return 25
	case RangeMedium:
		return 100
	case RangeLong:
		return 400
	}
	return 0
}
