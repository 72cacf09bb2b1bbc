package rulebook_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/roll-bonuses/internal/domain/rulebook"
	"github.com/KirkDiggler/roll-bonuses/internal/domain/rulebook/bonuses"
	"github.com/KirkDiggler/roll-bonuses/internal/domain/rulebook/sources"
	"github.com/KirkDiggler/roll-bonuses/internal/errors"
)

func TestNewRegistry(t *testing.T) {
	registry, err := rulebook.NewRegistry()
	require.NoError(t, err)

	assert.Len(t, registry.Targets(), 7)
	assert.Len(t, registry.Overrides(), 2)
	assert.Len(t, registry.Bonuses(), 7)
	assert.Len(t, registry.Specifics(), 10)
	assert.Len(t, registry.Globals(), 3)

	_, ok := registry.Get("target_weapon-group")
	assert.True(t, ok)
	_, ok = registry.Get("global-bonus_flanking")
	assert.True(t, ok)

	err = registry.Register(bonuses.NewAttackBonus())
	assert.True(t, errors.IsFailedPrecondition(err), "sealed")
}

func TestRegisterAllRejectsDuplicates(t *testing.T) {
	registry := sources.NewRegistry()
	registry.MustRegister(bonuses.NewAttackBonus())

	err := rulebook.RegisterAll(registry)
	require.Error(t, err)
	assert.True(t, errors.IsAlreadyExists(err))
	assert.Equal(t, "bonus_attack", errors.GetMeta(err)["key"])
}
