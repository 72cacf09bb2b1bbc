package sources

import (
	"context"

	"go.uber.org/zap"

	"github.com/KirkDiggler/roll-bonuses/internal/config"
	"github.com/KirkDiggler/roll-bonuses/internal/domain/entity"
	"github.com/KirkDiggler/roll-bonuses/internal/domain/rolls"
	"github.com/KirkDiggler/roll-bonuses/internal/errors"
	"github.com/KirkDiggler/roll-bonuses/internal/expr"
	"github.com/KirkDiggler/roll-bonuses/internal/i18n"
	"github.com/KirkDiggler/roll-bonuses/internal/logging"
	"github.com/KirkDiggler/roll-bonuses/internal/repositories/flags"
	"github.com/KirkDiggler/roll-bonuses/internal/uuid"
)

// Env is everything a kind may use during a resolution pass. It is passed
// explicitly instead of kinds reaching for globals.
type Env struct {
	Registry   *Registry
	Index      *Index
	Eval       rolls.Evaluator
	Predicates *expr.Predicates
	Loc        i18n.Localizer
	Log        *zap.Logger
	IDs        uuid.Generator
	Config     config.Config

	// Flags persists configuration writes; nil keeps them in memory only
	Flags flags.Repository
}

func (e *Env) Logger() *zap.Logger {
	return logging.OrNop(e.Log)
}

// NewID returns an id for an engine-created value
func (e *Env) NewID() string {
	if e.IDs == nil {
		return ""
	}
	return e.IDs.New()
}

// IsGM reports whether the configured user may see GM-only kinds
func (e *Env) IsGM() bool {
	return e.Config.Module.GM
}

// FormulaValue evaluates the formula stored in item's flag key. Missing
// formulas and evaluation errors both count as no value and the error is logged.
func (e *Env) FormulaValue(item *entity.Item, key string, data rolls.RollData) (float64, bool) {
	value, err := e.Evaluate(item.Flags.String(key), data)
	if err != nil {
		e.Logger().Debug("formula evaluation failed",
			zap.String("item_id", item.ID),
			zap.String("key", key),
			zap.Error(err))
		return 0, false
	}
	return value, item.Flags.String(key) != ""
}

// Evaluate rolls formula. An empty formula is 0.
func (e *Env) Evaluate(formula string, data rolls.RollData) (float64, error) {
	if formula == "" {
		return 0, nil
	}
	if e.Eval == nil {
		return 0, errors.FailedPreconditionf("no evaluator for %q", formula)
	}
	value, err := e.Eval.Evaluate(formula, data)
	if err != nil {
		return 0, errors.Wrapf(err, "evaluating %q", formula)
	}
	return value, nil
}

// SetBoolean changes item's boolean flag and persists it
func (e *Env) SetBoolean(ctx context.Context, item *entity.Item, key string, on bool) error {
	if on {
		item.AddBooleanFlag(key)
	} else {
		item.RemoveBooleanFlag(key)
	}

	if e.Flags == nil {
		return nil
	}
	if err := e.Flags.SetBoolean(ctx, item.ID, key, on); err != nil {
		return errors.Wrapf(err, "failed to persist flag %q", key)
	}
	return nil
}

// SetValues writes module values to item and persists them; nil removes a key
func (e *Env) SetValues(ctx context.Context, item *entity.Item, values map[string]any) error {
	for key, value := range values {
		if value == nil {
			delete(item.Flags, key)
			continue
		}
		item.SetFlag(key, value)
	}

	if e.Flags == nil {
		return nil
	}
	if err := e.Flags.SetValues(ctx, item.ID, values); err != nil {
		return errors.Wrapf(err, "failed to persist flags of '%s'", item.ID)
	}
	return nil
}
