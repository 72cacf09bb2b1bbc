package events

// Context keys for event payloads. Slice values are pointers so listeners
// can append to them.
const (
	// Who triggered the notification
	ContextUserID   = "user_id"  // string: id of the user whose client raised the event
	ContextEditable = "editable" // bool: the sheet is editable by the viewer

	// Subjects
	ContextAction    = "action"     // *entity.Action
	ContextActionUse = "action_use" // *rolls.ActionUse

	// Mutable payloads
	ContextRollData    = "roll_data"    // rolls.RollData
	ContextSources     = "sources"      // *[]rolls.ModifierSource: attack tooltip lines
	ContextChanges     = "changes"      // *[]rolls.Change: damage tooltip or default changes
	ContextChatProps   = "chat_props"   // *[]string: chat card property lines
	ContextEffectNotes = "effect_notes" // *[]rolls.EffectNote
	ContextInputs      = "inputs"       // *[]sheet.Input: controls to render
	ContextHints       = "hints"        // *[]rolls.Hint
	ContextRollParts   = "roll_parts"   // *[]string: extra formula terms

	// Item updates
	ContextChange = "change" // map[string]any: the host's update diff

	// Crit confirmation
	ContextFormula = "formula" // string: the confirm formula, replaced when a listener substitutes it

	// Skill rolls
	ContextSkillID     = "skill_id"    // string: host skill id ("sen")
	ContextInspiration = "inspiration" // bool: inspiration is being added to the roll
)
