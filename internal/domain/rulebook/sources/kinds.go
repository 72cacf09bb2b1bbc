package sources

import (
	"context"

	"github.com/KirkDiggler/roll-bonuses/internal/domain/entity"
	"github.com/KirkDiggler/roll-bonuses/internal/domain/rolls"
	"github.com/KirkDiggler/roll-bonuses/internal/domain/sheet"
)

// Kind is anything the registry holds
type Kind interface {
	Key() string
	Meta() *Descriptor
	IsSource(item *entity.Item) bool
}

// Bonus contributes to the rolls of whatever its source item targets
type Bonus interface {
	Kind

	// Conditional returns the modifiers to apply for subject, or nil
	Conditional(env *Env, source *entity.Item, subject Subject) *rolls.Conditional

	// AlterRollData changes roll data in place before the roll
	AlterRollData(env *Env, source *entity.Item, shared *rolls.Shared)

	// AttackSources are the attack tooltip lines the source adds
	AttackSources(env *Env, source *entity.Item) []rolls.ModifierSource

	// DamageSources are the damage tooltip lines the source adds
	DamageSources(env *Env, source *entity.Item) []rolls.Change

	Hints(env *Env, source *entity.Item) []string
	Inputs(env *Env, item *entity.Item, editable bool) []sheet.Input
}

// Target decides which source items apply to a subject
type Target interface {
	Kind

	// SourcesFor returns the subject actor's source items that target subject
	SourcesFor(env *Env, subject Subject) []*entity.Item

	Hints(env *Env, source *entity.Item) []string
	Inputs(env *Env, item *entity.Item, editable bool) []sheet.Input
}

// TargetOverride changes how its own source item is matched
type TargetOverride interface {
	Kind

	// IsInvalidItem reports item kinds the override cannot apply to
	IsInvalidItem(item *entity.Item) bool

	// Prepare records the override on the item's prepared data
	Prepare(env *Env, item *entity.Item, prepared *Prepared)

	Hints(env *Env, source *entity.Item) []string
	Inputs(env *Env, item *entity.Item, editable bool) []sheet.Input
}

// Status is where a specific bonus item is in its setup
type Status int

const (
	StatusUndetected Status = iota
	StatusFlagged
	StatusConfigured
)

func (s Status) String() string {
	switch s {
	case StatusFlagged:
		return "flagged"
	case StatusConfigured:
		return "configured"
	}
	return "undetected"
}

// Specific is a single named feat or ability
type Specific interface {
	Kind

	Status(item *entity.Item) Status

	// Detect reports whether item is the feat by name or compendium source
	Detect(env *Env, item *entity.Item) bool

	// Configure validates params and writes them as the item's flags
	Configure(ctx context.Context, env *Env, item *entity.Item, params map[string]any) error

	Hints(env *Env, source *entity.Item) []string
	Inputs(env *Env, item *entity.Item, editable bool) []sheet.Input
}

// Global applies to every action use unless switched off
type Global interface {
	Kind

	Disabled(env *Env, use *rolls.ActionUse) bool
	Apply(env *Env, use *rolls.ActionUse) error
}

// Optional hooks. The host adapter type asserts registered kinds against
// these and calls the ones a kind implements.

// AttackSourcesHook rewrites the complete attack tooltip of item
type AttackSourcesHook interface {
	RewriteAttackSources(env *Env, item *entity.Item, sources []rolls.ModifierSource) []rolls.ModifierSource
}

// RollDataHook adjusts the roll data built for subject
type RollDataHook interface {
	RollData(env *Env, subject Subject, data rolls.RollData)
}

// ChangesHook adjusts the actor's default changes
type ChangesHook interface {
	DefaultChanges(env *Env, actor *entity.Actor, changes []rolls.Change) []rolls.Change
}

// CritConfirmHook may substitute the crit confirmation formula. ok is false
// when the kind does not apply.
type CritConfirmHook interface {
	CritConfirm(env *Env, use *rolls.ActionUse, formula string) (replacement string, note rolls.EffectNote, ok bool)
}

// ChatDataHook adds property lines to an item's chat card
type ChatDataHook interface {
	ChatProps(env *Env, item *entity.Item, action *entity.Action) []string
}

// SkillRollHook adds formula terms to a skill roll
type SkillRollHook interface {
	SkillRollParts(env *Env, actor *entity.Actor, skillID string, inspiration bool) []string
}

// ItemHintHook adds hints to items affected by a source, rather than the source itself
type ItemHintHook interface {
	ItemHints(env *Env, item *entity.Item) []rolls.Hint
}

// CreateHook runs when an item is about to be created
type CreateHook interface {
	OnCreate(ctx context.Context, env *Env, item *entity.Item) error
}
