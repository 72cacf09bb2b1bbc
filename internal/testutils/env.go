package testutils

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/KirkDiggler/roll-bonuses/internal/config"
	"github.com/KirkDiggler/roll-bonuses/internal/dice"
	"github.com/KirkDiggler/roll-bonuses/internal/domain/rulebook/sources"
	"github.com/KirkDiggler/roll-bonuses/internal/expr"
	"github.com/KirkDiggler/roll-bonuses/internal/i18n"
	"github.com/KirkDiggler/roll-bonuses/internal/repositories/flags"
	"github.com/KirkDiggler/roll-bonuses/internal/uuid"
)

// CreateTestConfig returns the default configuration for a GM session
func CreateTestConfig() config.Config {
	return config.Config{
		Module: config.ModuleConfig{
			Namespace:    "ckl-roll-bonuses",
			UserID:       "gm",
			ActiveUserID: "gm",
			GM:           true,
			Locale:       "en",
		},
		Grid:    config.GridConfig{Diagonals: "5105"},
		Logging: config.LoggingConfig{Level: "info", Format: "json"},
	}
}

// CreateTestEnv builds an env with an empty registry, an evaluator that
// maximises every die and an in-memory flag store
func CreateTestEnv(t *testing.T) *sources.Env {
	t.Helper()

	eval, err := expr.NewEvaluator(dice.NewMaxRoller())
	require.NoError(t, err)
	predicates, err := expr.NewPredicates()
	require.NoError(t, err)

	return &sources.Env{
		Registry:   sources.NewRegistry(),
		Index:      sources.NewIndex(),
		Eval:       eval,
		Predicates: predicates,
		Loc:        i18n.MustNew("en"),
		Log:        zap.NewNop(),
		IDs:        uuid.NewSequenceGenerator("cond"),
		Config:     CreateTestConfig(),
		Flags:      flags.NewInMemoryRepository(),
	}
}
