package targets

import (
	"go.uber.org/zap"

	"github.com/KirkDiggler/roll-bonuses/internal/domain/entity"
	"github.com/KirkDiggler/roll-bonuses/internal/domain/rulebook/sources"
	"github.com/KirkDiggler/roll-bonuses/internal/domain/sheet"
	"github.com/KirkDiggler/roll-bonuses/internal/expr"
)

// FunctionTarget applies when a GM authored CEL expression over the item and
// action fields is true, for example
//
//	item.kind == "spell" && "fear" in item.descriptors
type FunctionTarget struct {
	sources.BaseTarget
}

func NewFunctionTarget() *FunctionTarget {
	t := &FunctionTarget{BaseTarget: sources.NewBaseTarget("function", sources.Journal(sources.JournalTargets, "*function"))}
	t.GMOnly = true
	return t
}

// PlayerLabelKey holds the text players see instead of the expression
func (t *FunctionTarget) PlayerLabelKey() string {
	return t.SubKey("player-label")
}

func (t *FunctionTarget) SourcesFor(env *sources.Env, subject sources.Subject) []*entity.Item {
	fields := Fields(subject)
	return filter(t.Candidates(subject), func(source *entity.Item) bool {
		expression := source.Flags.String(t.Key())
		if expression == "" {
			return false
		}
		matched, err := env.Predicates.Match(expression, fields)
		if err != nil {
			env.Logger().Warn("function target did not evaluate",
				zap.String("source_id", source.ID),
				zap.String("expression", expression),
				zap.Error(err))
			return false
		}
		return matched
	})
}

// Fields exposes the subject to expressions. The set is fixed; nothing else
// about the host document is reachable.
func Fields(subject sources.Subject) expr.Fields {
	fields := expr.Fields{Item: map[string]any{}, Action: map[string]any{}}

	if item := subject.ResolveItem(); item != nil {
		fields.Item = map[string]any{
			"name":         item.Name,
			"kind":         item.Kind.String(),
			"tags":         nonNil(item.Tags),
			"weaponGroups": nonNil(item.WeaponGroups),
			"baseTypes":    nonNil(item.BaseTypes),
			"descriptors":  nonNil(item.Descriptors),
			"school":       item.School,
		}
	}
	if action := subject.ResolveAction(); action != nil {
		fields.Action = map[string]any{
			"ranged":      action.IsRanged(),
			"hasAttack":   action.HasAttack(),
			"damageTypes": nonNil(action.DamageTypes),
		}
	}
	return fields
}

func nonNil(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}

func (t *FunctionTarget) Hints(env *sources.Env, source *entity.Item) []string {
	if source.Flags.String(t.Key()) == "" {
		return nil
	}
	if label := source.Flags.String(t.PlayerLabelKey()); label != "" {
		return []string{label}
	}
	return []string{t.Label(env.Loc)}
}

// Inputs shows the expression only to GMs; players get the player label
func (t *FunctionTarget) Inputs(env *sources.Env, item *entity.Item, editable bool) []sheet.Input {
	if !env.IsGM() {
		input := t.Input(env, item, sheet.InputEnabledLabel, editable)
		input.Value = nil
		if label := item.Flags.String(t.PlayerLabelKey()); label != "" {
			input.Label = label
		}
		return []sheet.Input{input}
	}

	playerLabel := t.InputFor(env, item, t.PlayerLabelKey(), sheet.InputText, editable)
	playerLabel.SubLabel = true
	expression := t.Input(env, item, sheet.InputText, editable)
	expression.SubLabel = true

	return []sheet.Input{
		t.Input(env, item, sheet.InputLabel, editable),
		playerLabel,
		expression,
	}
}
