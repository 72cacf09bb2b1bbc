package join

import (
	"context"
	"maps"
	"slices"
	"strings"

	"go.uber.org/zap"

	"github.com/KirkDiggler/roll-bonuses/internal/domain/entity"
	"github.com/KirkDiggler/roll-bonuses/internal/domain/rolls"
	"github.com/KirkDiggler/roll-bonuses/internal/domain/rulebook/sources"
	"github.com/KirkDiggler/roll-bonuses/internal/domain/sheet"
	"github.com/KirkDiggler/roll-bonuses/internal/errors"
)

type inputter interface {
	sources.Kind
	Inputs(env *sources.Env, item *entity.Item, editable bool) []sheet.Input
}

// Hints describes item on its owner's sheet: what its bonuses do, what its
// targets point at, and which sources target it. Generic targets are not
// listed as targeting anything.
func (e *Engine) Hints(item *entity.Item) []rolls.Hint {
	if item == nil || item.Actor == nil {
		return nil
	}
	loc := e.env.Loc

	var out []rolls.Hint
	for _, bonus := range e.env.Registry.Bonuses() {
		if !bonus.IsSource(item) {
			continue
		}
		if hints := bonus.Hints(e.env, item); len(hints) > 0 {
			out = append(out, rolls.Hint{Label: bonus.Meta().Label(loc), Hint: strings.Join(hints, "\n")})
		}
	}

	var targetHints []string
	for _, target := range e.env.Registry.Targets() {
		if !target.IsSource(item) {
			continue
		}
		if hints := target.Hints(e.env, item); len(hints) > 0 {
			targetHints = append(targetHints, strings.Join(append([]string{target.Meta().Label(loc)}, hints...), "\n"))
		}
	}
	if len(targetHints) > 0 {
		out = append(out, rolls.Hint{Label: loc.Text("targets.label"), Hint: strings.Join(targetHints, "\n\n")})
	}

	targeting := make(map[string]bool)
	e.ForEach(sources.ForItem(item), func(source *entity.Item, _ sources.Bonus) {
		if targeting[source.ID] {
			return
		}
		targeting[source.ID] = true
		if hint, ok := e.sourceHint(source); ok {
			out = append(out, hint)
		}
	}, SkipGenericTarget())
	return out
}

func (e *Engine) sourceHint(source *entity.Item) (rolls.Hint, bool) {
	var lines []string
	for _, bonus := range e.prepared(source).Bonuses {
		if hints := bonus.Hints(e.env, source); len(hints) > 0 {
			lines = append(lines, strings.Join(append([]string{bonus.Meta().Label(e.env.Loc)}, hints...), "\n"))
		}
	}
	if len(lines) == 0 {
		return rolls.Hint{}, false
	}
	return rolls.Hint{Label: source.Name, Hint: strings.Join(lines, "\n\n")}, true
}

// SheetInputs returns the controls of every bonus, target and override item
// carries, in registration order
func (e *Engine) SheetInputs(item *entity.Item, editable bool) []sheet.Input {
	if item == nil {
		return nil
	}
	var out []sheet.Input
	for _, kind := range e.env.Registry.All() {
		switch kind.Meta().Base {
		case sources.BaseTypeBonus, sources.BaseTypeTarget, sources.BaseTypeTargetOverride:
		default:
			continue
		}
		in, ok := kind.(inputter)
		if !ok || !kind.IsSource(item) {
			continue
		}
		out = append(out, in.Inputs(e.env, item, editable)...)
	}
	return out
}

// SubmitPicker sets item's boolean flags to exactly the selected kinds.
// Flags of kinds the picker does not show are kept.
func (e *Engine) SubmitPicker(ctx context.Context, item *entity.Item, selected []string) error {
	if item == nil {
		return errors.InvalidArgument("item is required")
	}

	pickable := make(map[string]bool)
	for _, kind := range e.env.Registry.All() {
		if kind.Meta().Base == sources.BaseTypeGlobal {
			continue
		}
		if kind.Meta().GMOnly && !e.env.IsGM() {
			continue
		}
		pickable[kind.Key()] = true
	}
	for _, key := range selected {
		if !pickable[key] {
			return errors.InvalidArgumentf("%q cannot be picked", key).WithMeta("key", key)
		}
	}

	for _, key := range slices.Sorted(maps.Keys(pickable)) {
		on := slices.Contains(selected, key)
		if on == item.HasBooleanFlag(key) {
			continue
		}
		if err := e.env.SetBoolean(ctx, item, key, on); err != nil {
			return errors.Wrapf(err, "failed to update picked flag %q", key)
		}
		e.env.Logger().Debug("picker changed flag",
			zap.String("item_id", item.ID),
			zap.String("key", key),
			zap.Bool("on", on))
	}

	e.PrepareItem(item)
	return nil
}
