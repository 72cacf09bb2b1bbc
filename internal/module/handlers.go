package module

import (
	stderrors "errors"

	"go.uber.org/zap"

	"github.com/KirkDiggler/roll-bonuses/internal/domain/entity"
	"github.com/KirkDiggler/roll-bonuses/internal/domain/events"
	"github.com/KirkDiggler/roll-bonuses/internal/domain/rolls"
	"github.com/KirkDiggler/roll-bonuses/internal/domain/rulebook/globals"
	"github.com/KirkDiggler/roll-bonuses/internal/domain/rulebook/sources"
	"github.com/KirkDiggler/roll-bonuses/internal/domain/rulebook/specific"
	"github.com/KirkDiggler/roll-bonuses/internal/domain/sheet"
	"github.com/KirkDiggler/roll-bonuses/internal/errors"
)

// Handlers return nil when the payload they work on is missing; there is
// nothing to contribute to.

func (m *Module) onPrepareData(event *events.GameEvent) error {
	if event.Actor != nil {
		m.engine.Prepare(event.Actor)
	}
	return nil
}

func (m *Module) onGetRollData(event *events.GameEvent) error {
	data, ok := events.Value[rolls.RollData](event, events.ContextRollData)
	if !ok || data == nil {
		return nil
	}
	subject := subjectOf(event)
	for _, hook := range sources.Implementing[sources.RollDataHook](m.env.Registry) {
		hook.RollData(m.env, subject, data)
	}
	return nil
}

func (m *Module) onAddDefaultChanges(event *events.GameEvent) error {
	changes, ok := events.Value[*[]rolls.Change](event, events.ContextChanges)
	if !ok || event.Actor == nil {
		return nil
	}
	for _, hook := range sources.Implementing[sources.ChangesHook](m.env.Registry) {
		*changes = hook.DefaultChanges(m.env, event.Actor, *changes)
	}
	return nil
}

func (m *Module) onPreCreateItem(event *events.GameEvent) error {
	if event.Item == nil {
		return nil
	}
	if !m.applies(event) {
		m.env.Logger().Debug("skipping create hooks for another user", zap.String("item_id", event.Item.ID))
		return nil
	}
	if err := specific.OnCreate(m.context(), m.env, event.Item); err != nil {
		return errors.Wrapf(err, "failed to run create hooks for item %s", event.Item.ID).
			WithMeta("item_id", event.Item.ID)
	}
	if event.Item.Actor != nil {
		m.engine.PrepareItem(event.Item)
	}
	return nil
}

// onUpdateItem refreshes the prepared data of the item. When the item was
// just activated, the inputs of its show-on-active targets are offered so
// the user can pick what it applies to.
func (m *Module) onUpdateItem(event *events.GameEvent) error {
	item := event.Item
	if item == nil {
		return nil
	}
	if item.Actor != nil {
		m.engine.PrepareItem(item)
	}

	change, _ := events.Value[map[string]any](event, events.ContextChange)
	if activated, _ := change["active"].(bool); !activated || !m.applies(event) {
		return nil
	}
	inputs, ok := events.Value[*[]sheet.Input](event, events.ContextInputs)
	if !ok {
		return nil
	}
	for _, target := range m.env.Registry.Targets() {
		if target.Meta().ShowOnActive && target.IsSource(item) {
			*inputs = append(*inputs, target.Inputs(m.env, item, true)...)
		}
	}
	return nil
}

func (m *Module) onRenderItemSheet(event *events.GameEvent) error {
	inputs, ok := events.Value[*[]sheet.Input](event, events.ContextInputs)
	if !ok || event.Item == nil {
		return nil
	}
	editable, _ := event.GetBoolContext(events.ContextEditable)

	*inputs = append(*inputs, m.engine.SheetInputs(event.Item, editable)...)
	specifics, err := specific.OnRender(m.context(), m.env, event.Item, editable && m.applies(event))
	if err != nil {
		return errors.Wrapf(err, "failed to render specific bonuses of item %s", event.Item.ID)
	}
	*inputs = append(*inputs, specifics...)
	return nil
}

func (m *Module) onItemHints(event *events.GameEvent) error {
	hints, ok := events.Value[*[]rolls.Hint](event, events.ContextHints)
	if !ok || event.Item == nil {
		return nil
	}
	*hints = append(*hints, m.engine.Hints(event.Item)...)
	for _, hook := range sources.Implementing[sources.ItemHintHook](m.env.Registry) {
		*hints = append(*hints, hook.ItemHints(m.env, event.Item)...)
	}
	return nil
}

// onHandleConditionals applies both the item's own sources and the global
// bonuses. A failing global does not keep the conditionals from applying.
func (m *Module) onHandleConditionals(event *events.GameEvent) error {
	use, ok := events.Value[*rolls.ActionUse](event, events.ContextActionUse)
	if !ok || use == nil {
		return nil
	}
	return stderrors.Join(
		m.engine.HandleConditionals(use),
		globals.Apply(m.env, use),
	)
}

func (m *Module) onAlterRollData(event *events.GameEvent) error {
	if use, ok := events.Value[*rolls.ActionUse](event, events.ContextActionUse); ok {
		m.engine.AlterRollData(use)
	}
	return nil
}

func (m *Module) onAttackSources(event *events.GameEvent) error {
	list, ok := events.Value[*[]rolls.ModifierSource](event, events.ContextSources)
	if !ok || event.Item == nil {
		return nil
	}
	*list = m.engine.AttackSources(event.Item, *list)
	for _, hook := range sources.Implementing[sources.AttackSourcesHook](m.env.Registry) {
		*list = hook.RewriteAttackSources(m.env, event.Item, *list)
	}
	return nil
}

func (m *Module) onDamageSources(event *events.GameEvent) error {
	changes, ok := events.Value[*[]rolls.Change](event, events.ContextChanges)
	if !ok {
		return nil
	}
	if action := actionOf(event); action != nil {
		*changes = m.engine.DamageSources(action, *changes)
	}
	return nil
}

func (m *Module) onChatData(event *events.GameEvent) error {
	props, ok := events.Value[*[]string](event, events.ContextChatProps)
	if !ok || event.Item == nil {
		return nil
	}
	action := actionOf(event)
	for _, hook := range sources.Implementing[sources.ChatDataHook](m.env.Registry) {
		*props = append(*props, hook.ChatProps(m.env, event.Item, action)...)
	}
	return nil
}

// onCritConfirm lets the first applicable kind substitute the confirmation
// formula. Its note is kept on the shared state for the chat card.
func (m *Module) onCritConfirm(event *events.GameEvent) error {
	use, ok := events.Value[*rolls.ActionUse](event, events.ContextActionUse)
	if !ok || use == nil {
		return nil
	}
	formula, _ := event.GetStringContext(events.ContextFormula)

	for _, hook := range sources.Implementing[sources.CritConfirmHook](m.env.Registry) {
		replacement, note, ok := hook.CritConfirm(m.env, use, formula)
		if !ok {
			continue
		}
		event.Context[events.ContextFormula] = replacement
		if use.Shared != nil {
			use.Shared.EffectNotes = append(use.Shared.EffectNotes, note)
		}
		m.env.Logger().Debug("crit confirmation substituted",
			zap.String("formula", formula),
			zap.String("replacement", replacement))
		return nil
	}
	return nil
}

func (m *Module) onEffectNotes(event *events.GameEvent) error {
	notes, ok := events.Value[*[]rolls.EffectNote](event, events.ContextEffectNotes)
	if !ok {
		return nil
	}
	use, _ := events.Value[*rolls.ActionUse](event, events.ContextActionUse)
	if use == nil || use.Shared == nil {
		return nil
	}
	*notes = append(*notes, use.Shared.EffectNotes...)
	return nil
}

func (m *Module) onRollSkill(event *events.GameEvent) error {
	parts, ok := events.Value[*[]string](event, events.ContextRollParts)
	if !ok || event.Actor == nil {
		return nil
	}
	skillID, _ := event.GetStringContext(events.ContextSkillID)
	inspiration, _ := event.GetBoolContext(events.ContextInspiration)

	for _, hook := range sources.Implementing[sources.SkillRollHook](m.env.Registry) {
		*parts = append(*parts, hook.SkillRollParts(m.env, event.Actor, skillID, inspiration)...)
	}
	return nil
}

// actionOf is the event's action, or the default action of its item
func actionOf(event *events.GameEvent) *entity.Action {
	if action, ok := events.Value[*entity.Action](event, events.ContextAction); ok && action != nil {
		return action
	}
	if event.Item != nil {
		return event.Item.DefaultAction()
	}
	return nil
}

func subjectOf(event *events.GameEvent) sources.Subject {
	if use, ok := events.Value[*rolls.ActionUse](event, events.ContextActionUse); ok && use != nil {
		return sources.ForUse(use)
	}
	if action, ok := events.Value[*entity.Action](event, events.ContextAction); ok && action != nil {
		return sources.ForAction(action)
	}
	if event.Item != nil {
		return sources.ForItem(event.Item)
	}
	return sources.ForActor(event.Actor)
}
