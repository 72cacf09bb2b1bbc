// Package targets holds the target kinds: each decides which of an actor's
// source items apply to an item, action or action use.
package targets

import (
	"slices"
	"strings"

	"github.com/KirkDiggler/roll-bonuses/internal/domain/entity"
	"github.com/KirkDiggler/roll-bonuses/internal/domain/rulebook/sources"
	"github.com/KirkDiggler/roll-bonuses/internal/domain/sheet"
)

// All returns a fresh instance of every target kind
func All() []sources.Kind {
	return []sources.Kind{
		NewItemTarget(),
		NewWeaponGroupTarget(),
		NewWeaponTypeTarget(),
		NewAllTarget(),
		NewFunctionTarget(),
		NewCreatureSubtypeTarget(),
		NewTokenTarget(),
	}
}

func intersects(a, b []string) bool {
	return slices.ContainsFunc(a, func(s string) bool {
		return slices.Contains(b, s)
	})
}

// filter keeps the candidates for which keep is true
func filter(candidates []*entity.Item, keep func(*entity.Item) bool) []*entity.Item {
	var out []*entity.Item
	for _, c := range candidates {
		if keep(c) {
			out = append(out, c)
		}
	}
	return out
}

func choices(keys []string) []sheet.Choice {
	out := make([]sheet.Choice, 0, len(keys))
	for _, k := range keys {
		out = append(out, sheet.Choice{Key: k, Label: k})
	}
	return out
}

func joinHint(values []string) []string {
	if len(values) == 0 {
		return nil
	}
	return []string{strings.Join(values, ", ")}
}
