package entity

// Condition is a status effect name as the host reports it
type Condition string

const (
	ConditionBlind       Condition = "blind"
	ConditionCowering    Condition = "cowering"
	ConditionDazed       Condition = "dazed"
	ConditionDead        Condition = "dead"
	ConditionDying       Condition = "dying"
	ConditionFascinated  Condition = "fascinated"
	ConditionFlatFooted  Condition = "flatFooted"
	ConditionHelpless    Condition = "helpless"
	ConditionInvisible   Condition = "invisible"
	ConditionNauseated   Condition = "nauseated"
	ConditionPanicked    Condition = "panicked"
	ConditionParalyzed   Condition = "paralyzed"
	ConditionPetrified   Condition = "petrified"
	ConditionPinned      Condition = "pinned"
	ConditionStunned     Condition = "stunned"
	ConditionUnconscious Condition = "unconscious"
)

// ThreatDisablingConditions prevent a creature from threatening any square
var ThreatDisablingConditions = []Condition{
	ConditionCowering,
	ConditionDazed,
	ConditionDead,
	ConditionDying,
	ConditionFascinated,
	ConditionFlatFooted,
	ConditionHelpless,
	ConditionNauseated,
	ConditionPanicked,
	ConditionParalyzed,
	ConditionPetrified,
	ConditionPinned,
	ConditionStunned,
	ConditionUnconscious,
}

// Senses are the special senses relevant to threatening while blind or against the invisible
type Senses struct {
	Blindsense      bool
	Blindsight      bool
	Tremorsense     bool
	SeeInvisibility bool
	TrueSeeing      bool
}

// IgnoresBlindness reports whether the creature can still pinpoint foes while blind
func (s Senses) IgnoresBlindness() bool {
	return s.Blindsense || s.Blindsight || s.Tremorsense
}

// PerceivesInvisible reports whether the creature can target invisible foes
func (s Senses) PerceivesInvisible() bool {
	return s.SeeInvisibility || s.TrueSeeing || s.Tremorsense
}
