package specific

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/KirkDiggler/roll-bonuses/internal/domain/entity"
	"github.com/KirkDiggler/roll-bonuses/internal/domain/rolls"
	"github.com/KirkDiggler/roll-bonuses/internal/domain/rulebook/sources"
)

// SenseMotive is the host's skill id for Sense Motive
const SenseMotive = "sen"

// SnakeSidewind confirms critical hits with Sense Motive when that can roll
// at least as high as the attack's confirmation
type SnakeSidewind struct {
	sources.BaseSpecific
}

func NewSnakeSidewind() *SnakeSidewind {
	return &SnakeSidewind{
		BaseSpecific: sources.NewBaseSpecific("snake-sidewind",
			sources.Journal(sources.JournalSpecifics, "snake-sidewind"), "6HVdbIFcRuTq8o7p"),
	}
}

// SkillFormula is the d20 Sense Motive roll of actor
func (s *SnakeSidewind) SkillFormula(actor *entity.Actor) string {
	return fmt.Sprintf("1d20 + %d[Sense Motive]", actor.Skills[SenseMotive])
}

func (s *SnakeSidewind) CritConfirm(env *sources.Env, use *rolls.ActionUse, formula string) (string, rolls.EffectNote, bool) {
	if use == nil || formula == "" || env.Eval == nil {
		return "", rolls.EffectNote{}, false
	}
	found := actorSources(use.Actor, s.Key())
	if len(found) == 0 {
		return "", rolls.EffectNote{}, false
	}

	var data rolls.RollData
	if use.Shared != nil {
		data = use.Shared.RollData
	}
	skill := s.SkillFormula(use.Actor)

	confirmMax, err := env.Eval.Max(formula, data)
	if err != nil {
		env.Logger().Debug("crit confirm formula did not evaluate", zap.String("formula", formula), zap.Error(err))
		return "", rolls.EffectNote{}, false
	}
	skillMax, err := env.Eval.Max(skill, data)
	if err != nil {
		env.Logger().Debug("sense motive formula did not evaluate", zap.String("formula", skill), zap.Error(err))
		return "", rolls.EffectNote{}, false
	}
	if skillMax < confirmMax {
		return "", rolls.EffectNote{}, false
	}

	return skill, rolls.EffectNote{Text: s.Label(env.Loc), Source: found[0].Name}, true
}

func (s *SnakeSidewind) Hints(env *sources.Env, _ *entity.Item) []string {
	return []string{s.Tooltip(env.Loc)}
}
