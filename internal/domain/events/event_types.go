package events

// EventType is a host lifecycle notification the engine reacts to
type EventType int

const (
	// Data preparation
	PrepareData EventType = iota
	GetRollData
	AddDefaultChanges

	// Item lifecycle
	PreCreateItem
	UpdateItem
	RenderItemSheet
	ItemHints

	// Action use
	ActionUseHandleConditionals
	ActionUseAlterRollData
	ItemGetAttackSources
	ActionDamageSources
	ItemGetTypeChatData
	ChatAttackEffectNotes
	CritConfirm

	// Rolls outside an action
	RollSkill
)

var eventTypeNames = [...]string{
	"PrepareData",
	"GetRollData",
	"AddDefaultChanges",
	"PreCreateItem",
	"UpdateItem",
	"RenderItemSheet",
	"ItemHints",
	"ActionUseHandleConditionals",
	"ActionUseAlterRollData",
	"ItemGetAttackSources",
	"ActionDamageSources",
	"ItemGetTypeChatData",
	"ChatAttackEffectNotes",
	"CritConfirm",
	"RollSkill",
}

// String returns the string representation of the event type
func (e EventType) String() string {
	if e < PrepareData || int(e) >= len(eventTypeNames) {
		return "Unknown"
	}
	return eventTypeNames[e]
}
