// Package specific holds the handlers for named feats and abilities. Each is
// detected on an item by its localised name or compendium source, flagged,
// and then configured with whatever parameters it needs.
package specific

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/KirkDiggler/roll-bonuses/internal/domain/entity"
	"github.com/KirkDiggler/roll-bonuses/internal/domain/rulebook/sources"
	"github.com/KirkDiggler/roll-bonuses/internal/domain/sheet"
)

// All returns a fresh instance of every specific bonus
func All() []sources.Kind {
	return []sources.Kind{
		NewFatesFavored(),
		NewSnakeSidewind(),
		NewArmorFocus(),
		NewImprovedArmorFocus(),
		NewInspiration(),
		NewFocusedInspiration(),
		NewElementalCL(),
		NewElementalDC(),
		NewGangUp(),
		NewOutflank(),
	}
}

// AutoFlag flags item for every registered specific it is detected as.
// Temporary items are skipped. It returns the keys it added.
func AutoFlag(ctx context.Context, env *sources.Env, item *entity.Item) ([]string, error) {
	if item == nil || item.Temporary {
		return nil, nil
	}

	var added []string
	for _, kind := range env.Registry.Specifics() {
		if item.HasBooleanFlag(kind.Key()) || !kind.Detect(env, item) {
			continue
		}
		if err := env.SetBoolean(ctx, item, kind.Key(), true); err != nil {
			return added, err
		}
		env.Logger().Debug("flagged specific bonus",
			zap.String("item_id", item.ID),
			zap.String("key", kind.Key()))
		added = append(added, kind.Key())
	}
	return added, nil
}

// OnCreate auto flags a new item, then lets kinds with a create hook fill in
// defaults.
func OnCreate(ctx context.Context, env *sources.Env, item *entity.Item) error {
	if _, err := AutoFlag(ctx, env, item); err != nil {
		return err
	}
	for _, hook := range sources.Implementing[sources.CreateHook](env.Registry) {
		if kind, ok := hook.(sources.Kind); ok && !kind.IsSource(item) {
			continue
		}
		if err := hook.OnCreate(ctx, env, item); err != nil {
			return err
		}
	}
	return nil
}

// OnRender returns the inputs of every specific on item. Editable sheets
// auto flag first, so a renamed feat picks up its handler.
func OnRender(ctx context.Context, env *sources.Env, item *entity.Item, editable bool) ([]sheet.Input, error) {
	if editable {
		if _, err := AutoFlag(ctx, env, item); err != nil {
			return nil, err
		}
	}

	var inputs []sheet.Input
	for _, kind := range env.Registry.Specifics() {
		if kind.IsSource(item) {
			inputs = append(inputs, kind.Inputs(env, item, editable)...)
		}
	}
	return inputs, nil
}

// actorSources are the actor's active items flagged with key
func actorSources(actor *entity.Actor, key string) []*entity.Item {
	return actor.ItemsWithBooleanFlag(key)
}

func signed(v float64) string {
	return fmt.Sprintf("%+g", v)
}
