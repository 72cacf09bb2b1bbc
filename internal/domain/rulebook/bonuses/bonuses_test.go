package bonuses_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/roll-bonuses/internal/domain/entity"
	"github.com/KirkDiggler/roll-bonuses/internal/domain/rolls"
	"github.com/KirkDiggler/roll-bonuses/internal/domain/rulebook/bonuses"
	"github.com/KirkDiggler/roll-bonuses/internal/domain/rulebook/sources"
	"github.com/KirkDiggler/roll-bonuses/internal/domain/rulebook/targets"
	"github.com/KirkDiggler/roll-bonuses/internal/domain/sheet"
	"github.com/KirkDiggler/roll-bonuses/internal/testutils"
)

type BonusesTestSuite struct {
	suite.Suite
	env   *sources.Env
	actor *entity.Actor
}

func (s *BonusesTestSuite) SetupTest() {
	s.env = testutils.CreateTestEnv(s.T())
	s.actor = testutils.CreateTestActor("fighter", entity.SizeMedium)
}

func (s *BonusesTestSuite) source(flags entity.Flags, booleanFlags ...string) *entity.Item {
	feat := testutils.CreateTestFeat(s.actor, "weapon-focus", "Weapon Focus", booleanFlags...)
	for k, v := range flags {
		feat.SetFlag(k, v)
	}
	return feat
}

func (s *BonusesTestSuite) TestAttackBonus() {
	bonus := bonuses.NewAttackBonus()
	source := s.source(entity.Flags{bonus.Key(): "1d4", bonus.TypeKey(): "luck"}, bonus.Key())

	conditional := bonus.Conditional(s.env, source, sources.Subject{})
	s.Require().NotNil(conditional)
	s.Equal("Weapon Focus", conditional.Name)
	s.True(conditional.Default)
	s.Equal("cond-2", conditional.ID)
	s.Require().Len(conditional.Modifiers, 1)
	s.Equal(rolls.Modifier{ID: "cond-1", Formula: "1d4", Target: rolls.TargetAttack, Type: "luck"}, conditional.Modifiers[0])

	s.Equal([]rolls.ModifierSource{{Value: 4, Name: "Weapon Focus", Modifier: "luck"}}, bonus.AttackSources(s.env, source))
	s.Equal([]string{"1d4"}, bonus.Hints(s.env, source))

	inputs := bonus.Inputs(s.env, source, true)
	s.Require().Len(inputs, 1)
	s.Equal(sheet.InputFormulaType, inputs[0].Type)
	s.Require().NotNil(inputs[0].Secondary)
	s.Equal("luck", inputs[0].Secondary.Value)
}

func (s *BonusesTestSuite) TestAttackBonusWithoutValue() {
	bonus := bonuses.NewAttackBonus()
	source := s.source(entity.Flags{bonus.Key(): "@missing.path"}, bonus.Key())

	s.Empty(bonus.AttackSources(s.env, source))
	s.NotNil(bonus.Conditional(s.env, source, sources.Subject{}), "the roll still gets the formula")

	delete(source.Flags, bonus.Key())
	s.Nil(bonus.Conditional(s.env, source, sources.Subject{}))
	s.Equal("untyped", bonus.Inputs(s.env, source, true)[0].Secondary.Value)
}

func (s *BonusesTestSuite) TestDamageBonus() {
	bonus := bonuses.NewDamageBonus()
	source := s.source(entity.Flags{bonus.Key(): []any{
		map[string]any{"formula": "1d6", "types": []any{"fire"}},
		map[string]any{"formula": "2d6", "crit": "crit"},
		map[string]any{"types": []any{"cold"}},
	}}, bonus.Key())

	entries := bonus.Entries(source)
	s.Equal([]bonuses.DamageEntry{
		{Formula: "1d6", Types: []string{"fire"}, Critical: rolls.CriticalNormal},
		{Formula: "2d6", Critical: rolls.CriticalOnly},
	}, entries)

	conditional := bonus.Conditional(s.env, source, sources.Subject{})
	s.Require().NotNil(conditional)
	s.Require().Len(conditional.Modifiers, 2)
	s.Equal(rolls.TargetDamage, conditional.Modifiers[0].Target)
	s.Equal([]string{"fire"}, conditional.Modifiers[0].DamageTypes)
	s.Equal(rolls.CriticalOnly, conditional.Modifiers[1].Critical)

	changes := bonus.DamageSources(s.env, source)
	s.Equal([]rolls.Change{{Formula: "1d6", Value: 6, Target: "damage", Type: "fire", Name: "Weapon Focus"}}, changes)

	s.Equal([]string{"1d6 (fire)", "2d6 Critical Only"}, bonus.Hints(s.env, source))
}

func (s *BonusesTestSuite) TestDamageBonusPlainFormula() {
	bonus := bonuses.NewDamageBonus()
	source := s.source(entity.Flags{bonus.Key(): "2"}, bonus.Key())

	s.Equal([]bonuses.DamageEntry{{Formula: "2", Critical: rolls.CriticalNormal}}, bonus.Entries(source))
	s.Nil(bonus.Conditional(s.env, s.source(nil), sources.Subject{}))
}

func (s *BonusesTestSuite) TestCritBonus() {
	bonus := bonuses.NewCritBonus()
	tests := []struct {
		name       string
		flags      entity.Flags
		critRange  float64
		wantRange  float64
		wantMult   float64
		wantVerify float64
	}{
		{"keen 19", entity.Flags{bonus.KeenKey(): true}, 19, 17, 2, 0},
		{"keen 20", entity.Flags{bonus.KeenKey(): true}, 20, 19, 2, 0},
		{"keen then offset", entity.Flags{bonus.KeenKey(): true, bonus.OffsetKey(): "1"}, 19, 16, 2, 0},
		{"floors at 2", entity.Flags{bonus.KeenKey(): true, bonus.OffsetKey(): "30"}, 15, 2, 2, 0},
		{"mult and confirm", entity.Flags{bonus.MultKey(): "1", bonus.ConfirmKey(): "4"}, 20, 20, 3, 4},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			source := s.source(tt.flags, bonus.Key())
			shared := rolls.NewShared()
			shared.RollData.Set(bonuses.PathCritRange, tt.critRange)
			shared.RollData.Set(bonuses.PathCritMult, 2.0)

			bonus.AlterRollData(s.env, source, shared)

			s.Equal(tt.wantRange, shared.RollData.Number(bonuses.PathCritRange))
			s.Equal(tt.wantMult, shared.RollData.Number(bonuses.PathCritMult))
			s.Equal(tt.wantVerify, shared.RollData.Number(bonuses.PathCritConfirm))
		})
	}
}

func (s *BonusesTestSuite) TestCritBonusHints() {
	bonus := bonuses.NewCritBonus()
	source := s.source(entity.Flags{bonus.KeenKey(): true, bonus.MultKey(): "1"}, bonus.Key())

	s.Equal([]string{"Keen", "Critical Multiplier 1"}, bonus.Hints(s.env, source))
	s.Len(bonus.Inputs(s.env, source, true), 5)
}

func (s *BonusesTestSuite) TestEffectiveSizeClamps() {
	bonus := bonuses.NewEffectiveSizeBonus()
	source := s.source(entity.Flags{bonus.Key(): "2"}, bonus.Key())

	shared := rolls.NewShared()
	shared.RollData.Set(bonuses.PathSize, float64(entity.SizeLarge))
	bonus.AlterRollData(s.env, source, shared)
	s.Equal(float64(entity.SizeGargantuan), shared.RollData.Number(bonuses.PathSize))

	bonus.AlterRollData(s.env, source, shared)
	s.Equal(float64(entity.SizeColossal), shared.RollData.Number(bonuses.PathSize))

	source.SetFlag(bonus.Key(), "-20")
	bonus.AlterRollData(s.env, source, shared)
	s.Equal(float64(entity.SizeFine), shared.RollData.Number(bonuses.PathSize))

	s.Equal([]string{"Size -20"}, bonus.Hints(s.env, source))
}

func (s *BonusesTestSuite) TestFortuneCounters() {
	shared := rolls.NewShared()
	source := s.source(nil)

	bonuses.NewFortuneBonus().AlterRollData(s.env, source, shared)
	bonuses.NewFortuneBonus().AlterRollData(s.env, source, shared)
	bonuses.NewMisfortuneBonus().AlterRollData(s.env, source, shared)

	s.Equal(2.0, shared.RollData.Number(bonuses.PathFortune))
	s.Equal(1.0, shared.RollData.Number(bonuses.PathMisfortune))
}

func (s *BonusesTestSuite) TestInitiativeChanges() {
	bonus := bonuses.NewInitiativeBonus()
	subtype := targets.NewCreatureSubtypeTarget()
	s.env.Registry.MustRegister(bonus, subtype)

	plain := s.source(entity.Flags{bonus.FormulaKey(): "2", bonus.TypeKey(): "competence"}, bonus.Key())
	plain.ID = "reactionary"
	conditional := testutils.CreateTestFeat(s.actor, "hunter", "Hunter", bonus.Key(), subtype.Key())
	conditional.SetFlag(bonus.FormulaKey(), "4")
	testutils.CreateTestFeat(s.actor, "empty", "Empty", bonus.Key())

	changes := bonus.DefaultChanges(s.env, s.actor, nil)
	s.Equal([]rolls.Change{{
		ID:      "bonus_initiative_reactionary",
		Formula: "2",
		Value:   2,
		Target:  "init",
		Type:    "competence",
		Name:    "Weapon Focus",
	}}, changes, "conditional targets reject an actor without targets")
}

func (s *BonusesTestSuite) TestAllRegistersCleanly() {
	registry := sources.NewRegistry()
	registry.MustRegister(bonuses.All()...)
	s.Len(registry.Bonuses(), len(bonuses.All()))
	s.Len(sources.Implementing[sources.ChangesHook](registry), 1)
}

func TestBonusesSuite(t *testing.T) {
	suite.Run(t, new(BonusesTestSuite))
}
