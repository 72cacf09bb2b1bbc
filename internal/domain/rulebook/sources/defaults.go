package sources

import (
	"context"
	"slices"

	"github.com/KirkDiggler/roll-bonuses/internal/domain/entity"
	"github.com/KirkDiggler/roll-bonuses/internal/domain/rolls"
	"github.com/KirkDiggler/roll-bonuses/internal/domain/sheet"
	"github.com/KirkDiggler/roll-bonuses/internal/errors"
	"github.com/KirkDiggler/roll-bonuses/internal/i18n"
)

// Category is the picker section and sheet group of the kind
func (d *Descriptor) Category() sheet.Category {
	switch d.Base {
	case BaseTypeTarget:
		if d.Conditional {
			return sheet.CategoryConditionalTarget
		}
		return sheet.CategoryTarget
	case BaseTypeTargetOverride:
		return sheet.CategoryTargetOverride
	case BaseTypeSpecific:
		return sheet.CategorySpecific
	}
	return sheet.CategoryBonus
}

// Input builds a control bound to the kind's own flag
func (d *Descriptor) Input(env *Env, item *entity.Item, typ sheet.InputType, editable bool) sheet.Input {
	return d.InputFor(env, item, d.Key(), typ, editable)
}

// InputFor builds a control bound to key, labelled by key's own messages
// when they exist and by the kind's otherwise
func (d *Descriptor) InputFor(env *Env, item *entity.Item, key string, typ sheet.InputType, editable bool) sheet.Input {
	label, tooltip := d.Label(env.Loc), d.Tooltip(env.Loc)
	if key != d.Key() && env.Loc.Has(i18n.LabelKey(key)) {
		label = env.Loc.Text(i18n.LabelKey(key))
		tooltip = env.Loc.Text(i18n.TooltipKey(key))
	}

	var value any
	if item != nil {
		value = item.Flags[key]
	}
	return sheet.Input{
		Key:      key,
		Label:    label,
		Tooltip:  tooltip,
		Journal:  d.Journal,
		Type:     typ,
		Category: d.Category(),
		Editable: editable,
		Value:    value,
	}
}

// BaseBonus gives bonus kinds no-op contributions to override
type BaseBonus struct {
	Descriptor
}

func NewBaseBonus(source, journal string) BaseBonus {
	return BaseBonus{Descriptor{Base: BaseTypeBonus, Source: source, Journal: journal}}
}

func (b *BaseBonus) Conditional(*Env, *entity.Item, Subject) *rolls.Conditional { return nil }
func (b *BaseBonus) AlterRollData(*Env, *entity.Item, *rolls.Shared)            {}
func (b *BaseBonus) AttackSources(*Env, *entity.Item) []rolls.ModifierSource    { return nil }
func (b *BaseBonus) DamageSources(*Env, *entity.Item) []rolls.Change            { return nil }
func (b *BaseBonus) Hints(*Env, *entity.Item) []string                          { return nil }

func (b *BaseBonus) Inputs(env *Env, item *entity.Item, editable bool) []sheet.Input {
	return []sheet.Input{b.Input(env, item, sheet.InputEnabledLabel, editable)}
}

// BaseTarget gives target kinds the flagged-item candidate lookup
type BaseTarget struct {
	Descriptor
}

func NewBaseTarget(source, journal string) BaseTarget {
	return BaseTarget{Descriptor{Base: BaseTypeTarget, Source: source, Journal: journal}}
}

// Candidates are the subject actor's active items carrying the target flag
func (t *BaseTarget) Candidates(subject Subject) []*entity.Item {
	return subject.ResolveActor().ItemsWithBooleanFlag(t.Key())
}

func (t *BaseTarget) Hints(*Env, *entity.Item) []string { return nil }

func (t *BaseTarget) Inputs(env *Env, item *entity.Item, editable bool) []sheet.Input {
	return []sheet.Input{t.Input(env, item, sheet.InputEnabledLabel, editable)}
}

// BaseTargetOverride gives overrides no-op preparation
type BaseTargetOverride struct {
	Descriptor
}

func NewBaseTargetOverride(source, journal string) BaseTargetOverride {
	return BaseTargetOverride{Descriptor{Base: BaseTypeTargetOverride, Source: source, Journal: journal}}
}

func (o *BaseTargetOverride) IsInvalidItem(*entity.Item) bool       { return false }
func (o *BaseTargetOverride) Prepare(*Env, *entity.Item, *Prepared) {}
func (o *BaseTargetOverride) Hints(*Env, *entity.Item) []string     { return nil }

// BaseSpecific implements detection by localised name or compendium id and
// configuration of the Required flag keys
type BaseSpecific struct {
	Descriptor
	CompendiumIDs []string
	// Required flag keys must hold a value for the item to be configured
	Required []string
}

func NewBaseSpecific(key, journal string, compendiumIDs ...string) BaseSpecific {
	return BaseSpecific{
		Descriptor:    Descriptor{Base: BaseTypeSpecific, Source: key, Journal: journal},
		CompendiumIDs: compendiumIDs,
	}
}

func (s *BaseSpecific) Status(item *entity.Item) Status {
	if !item.HasBooleanFlag(s.Key()) {
		return StatusUndetected
	}
	for _, key := range s.Required {
		if !hasValue(item.Flags, key) {
			return StatusFlagged
		}
	}
	return StatusConfigured
}

func (s *BaseSpecific) Detect(env *Env, item *entity.Item) bool {
	return s.MatchesName(env, item) || s.MatchesCompendium(item)
}

// MatchesName compares the case folded item name with the localised reference name
func (s *BaseSpecific) MatchesName(env *Env, item *entity.Item) bool {
	ref := i18n.NameKey(s.Key())
	if item == nil || item.Name == "" || !env.Loc.Has(ref) {
		return false
	}
	return env.Loc.Fold(item.Name) == env.Loc.Fold(env.Loc.Text(ref))
}

func (s *BaseSpecific) MatchesCompendium(item *entity.Item) bool {
	return slices.ContainsFunc(s.CompendiumIDs, item.HasCompendiumID)
}

// Configure flags the item and writes params. Only Required keys are accepted.
func (s *BaseSpecific) Configure(ctx context.Context, env *Env, item *entity.Item, params map[string]any) error {
	if item == nil {
		return errors.InvalidArgument("item is required")
	}
	for key, value := range params {
		if !slices.Contains(s.Required, key) {
			return errors.InvalidArgumentf("%s does not accept %q", s.Key(), key).
				WithMeta("key", s.Key()).
				WithMeta("param", key)
		}
		if value == nil {
			return errors.InvalidArgumentf("%s requires a value for %q", s.Key(), key).
				WithMeta("key", s.Key()).
				WithMeta("param", key)
		}
	}

	if err := env.SetBoolean(ctx, item, s.Key(), true); err != nil {
		return err
	}
	if len(params) == 0 {
		return nil
	}
	return env.SetValues(ctx, item, params)
}

func (s *BaseSpecific) Hints(*Env, *entity.Item) []string { return nil }

func (s *BaseSpecific) Inputs(env *Env, item *entity.Item, editable bool) []sheet.Input {
	return []sheet.Input{s.Input(env, item, sheet.InputEnabledLabel, editable)}
}

// BaseGlobal implements the three ways a global bonus is switched off
type BaseGlobal struct {
	Descriptor
}

func NewBaseGlobal(source, journal string) BaseGlobal {
	return BaseGlobal{Descriptor{Base: BaseTypeGlobal, Source: source, Journal: journal}}
}

// DialogDisableKey is the attack dialog checkbox that skips the bonus for one use
func (g *BaseGlobal) DialogDisableKey() string {
	return "global-bonus.dialog-disable." + g.Source
}

// ActorDisabledFlag turns the bonus off for one actor
func (g *BaseGlobal) ActorDisabledFlag() string {
	return "global-disabled." + g.Key()
}

// IsSource is false: globals are not carried by items
func (g *BaseGlobal) IsSource(*entity.Item) bool { return false }

func (g *BaseGlobal) Disabled(env *Env, use *rolls.ActionUse) bool {
	if env.Config.GlobalBonuses.IsDisabled(g.Key()) {
		return true
	}
	if use == nil || use.Actor == nil {
		return true
	}
	return use.Shared.FormBool(g.DialogDisableKey()) || use.Actor.Flags.Bool(g.ActorDisabledFlag())
}

func hasValue(flags entity.Flags, key string) bool {
	switch v := flags[key].(type) {
	case nil:
		return false
	case string:
		return v != ""
	case []string:
		return len(v) > 0
	case []any:
		return len(v) > 0
	}
	return true
}
