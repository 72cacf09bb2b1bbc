// Package rulebook assembles every kind the engine ships with.
package rulebook

import (
	"github.com/KirkDiggler/roll-bonuses/internal/domain/rulebook/bonuses"
	"github.com/KirkDiggler/roll-bonuses/internal/domain/rulebook/globals"
	"github.com/KirkDiggler/roll-bonuses/internal/domain/rulebook/overrides"
	"github.com/KirkDiggler/roll-bonuses/internal/domain/rulebook/sources"
	"github.com/KirkDiggler/roll-bonuses/internal/domain/rulebook/specific"
	"github.com/KirkDiggler/roll-bonuses/internal/domain/rulebook/targets"
	"github.com/KirkDiggler/roll-bonuses/internal/errors"
)

// group is one family of kinds registered together
type group struct {
	name  string
	kinds []sources.Kind
}

func groups() []group {
	return []group{
		{"targets", targets.All()},
		{"target overrides", overrides.All()},
		{"bonuses", bonuses.All()},
		{"specific bonuses", specific.All()},
		{"global bonuses", globals.All()},
	}
}

// RegisterAll registers every built-in kind and seals the registry. Targets
// come first so sheet inputs list them before the bonuses they feed.
func RegisterAll(registry *sources.Registry) error {
	for _, g := range groups() {
		for _, kind := range g.kinds {
			if err := registry.Register(kind); err != nil {
				return errors.Wrapf(err, "failed to register %s", g.name)
			}
		}
	}
	registry.Seal()
	return nil
}

// NewRegistry returns a sealed registry holding every built-in kind
func NewRegistry() (*sources.Registry, error) {
	registry := sources.NewRegistry()
	if err := RegisterAll(registry); err != nil {
		return nil, err
	}
	return registry, nil
}
