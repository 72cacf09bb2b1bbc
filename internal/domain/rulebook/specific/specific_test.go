package specific_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/roll-bonuses/internal/domain/entity"
	"github.com/KirkDiggler/roll-bonuses/internal/domain/rolls"
	"github.com/KirkDiggler/roll-bonuses/internal/domain/rulebook/sources"
	"github.com/KirkDiggler/roll-bonuses/internal/domain/rulebook/specific"
	"github.com/KirkDiggler/roll-bonuses/internal/domain/sheet"
	"github.com/KirkDiggler/roll-bonuses/internal/errors"
	"github.com/KirkDiggler/roll-bonuses/internal/i18n"
	"github.com/KirkDiggler/roll-bonuses/internal/testutils"
)

type SpecificTestSuite struct {
	suite.Suite
	ctx   context.Context
	env   *sources.Env
	actor *entity.Actor
}

func (s *SpecificTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.env = testutils.CreateTestEnv(s.T())
	s.env.Registry.MustRegister(specific.All()...)
	s.actor = testutils.CreateTestActor("bard", entity.SizeMedium)
}

func (s *SpecificTestSuite) armor(baseType string, acp int) *entity.Item {
	armor := &entity.Item{
		ID:        "armor-" + baseType,
		Name:      baseType,
		Kind:      entity.ItemKindEquipment,
		Active:    true,
		Slot:      "armor",
		BaseTypes: []string{baseType},
		Armor:     entity.ArmorStats{Base: 6, ACP: acp},
		Flags:     entity.Flags{},
	}
	s.actor.AddItem(armor)
	return armor
}

func (s *SpecificTestSuite) TestAutoFlagByName() {
	feat := testutils.CreateTestFeat(s.actor, "ff", "fate's favored")

	added, err := specific.AutoFlag(s.ctx, s.env, feat)
	s.Require().NoError(err)
	s.Equal([]string{"fates-favored"}, added)
	s.True(feat.HasBooleanFlag("fates-favored"))

	record, err := s.env.Flags.Get(s.ctx, feat.ID)
	s.Require().NoError(err)
	s.True(record.Boolean["fates-favored"])

	added, err = specific.AutoFlag(s.ctx, s.env, feat)
	s.Require().NoError(err)
	s.Empty(added, "already flagged")
}

func (s *SpecificTestSuite) TestAutoFlagByNameInAnotherLocale() {
	loc, err := i18n.New("de", map[string]string{i18n.NameKey("gang-up"): "Verbünden"})
	s.Require().NoError(err)
	s.env.Loc = loc

	lucky := testutils.CreateTestFeat(s.actor, "ff", "Fate's Favored")
	added, err := specific.AutoFlag(s.ctx, s.env, lucky)
	s.Require().NoError(err)
	s.Equal([]string{"fates-favored"}, added, "untranslated names use the english default")

	gangUp := testutils.CreateTestFeat(s.actor, "gu", "verbünden")
	added, err = specific.AutoFlag(s.ctx, s.env, gangUp)
	s.Require().NoError(err)
	s.Equal([]string{"gang-up"}, added)
}

func (s *SpecificTestSuite) TestAutoFlagByCompendium() {
	feat := testutils.CreateTestFeat(s.actor, "sw", "Schlangenseitenwind")
	feat.CompendiumSource = "Compendium.pf1.feats.Item.6HVdbIFcRuTq8o7p"

	added, err := specific.AutoFlag(s.ctx, s.env, feat)
	s.Require().NoError(err)
	s.Equal([]string{"snake-sidewind"}, added)
}

func (s *SpecificTestSuite) TestAutoFlagSkipsTemporaryItems() {
	feat := testutils.CreateTestFeat(s.actor, "ff", "Fate's Favored")
	feat.Temporary = true

	added, err := specific.AutoFlag(s.ctx, s.env, feat)
	s.Require().NoError(err)
	s.Empty(added)
	s.False(feat.HasBooleanFlag("fates-favored"))
}

func (s *SpecificTestSuite) TestImprovedArmorFocusDetectsAnyWordOrder() {
	improved := specific.NewImprovedArmorFocus()

	s.True(improved.Detect(s.env, &entity.Item{Name: "Armor Focus, Improved"}))
	s.True(improved.Detect(s.env, &entity.Item{Name: "Improved Armor Focus"}))
	s.False(improved.Detect(s.env, &entity.Item{Name: "Armor Focus"}))
	s.True(improved.Detect(s.env, &entity.Item{Name: "Verbesserter Rüstungsfokus", CompendiumSource: "WmEE6BOuP5Uh7pEE"}))

	feat := testutils.CreateTestFeat(s.actor, "iaf", "Armor Focus (Improved)")
	added, err := specific.AutoFlag(s.ctx, s.env, feat)
	s.Require().NoError(err)
	s.Equal([]string{"improved-armor-focus"}, added)
}

func (s *SpecificTestSuite) TestOnCreateDefaultsImprovedArmorFocus() {
	focus := testutils.CreateTestFeat(s.actor, "af", "Armor Focus", "armor-focus")
	focus.SetFlag("armor-focus", "chainmail")

	improved := testutils.CreateTestFeat(s.actor, "iaf", "Improved Armor Focus")
	s.Require().NoError(specific.OnCreate(s.ctx, s.env, improved))

	s.True(improved.HasBooleanFlag("improved-armor-focus"))
	s.Equal("chainmail", improved.Flags.String("improved-armor-focus"))
	s.Equal(sources.StatusConfigured, specific.NewImprovedArmorFocus().Status(improved))

	record, err := s.env.Flags.Get(s.ctx, improved.ID)
	s.Require().NoError(err)
	s.Equal("chainmail", record.Values["improved-armor-focus"])
}

func (s *SpecificTestSuite) TestFatesFavoredAttackSources() {
	fates := specific.NewFatesFavored()
	sword := testutils.CreateTestWeapon(s.actor, "sword")
	in := []rolls.ModifierSource{
		{Value: 2, Name: "Luck Stone", Modifier: "luck", Sort: 5},
		{Value: 3, Name: "BAB", Modifier: "base", Sort: 10},
	}

	s.Equal(in, fates.RewriteAttackSources(s.env, sword, append([]rolls.ModifierSource(nil), in...)), "actor without the feat")

	testutils.CreateTestFeat(s.actor, "ff", "Fate's Favored", fates.Key())
	out := fates.RewriteAttackSources(s.env, sword, append([]rolls.ModifierSource(nil), in...))
	s.Equal([]rolls.ModifierSource{
		{Value: 3, Name: "BAB", Modifier: "base", Sort: 10},
		{Value: 1, Name: "Fate's Favored", Modifier: "luck", Sort: 6},
		{Value: 1, Name: "Luck Stone", Modifier: "luck", Sort: 5},
	}, out)
}

func (s *SpecificTestSuite) TestFatesFavoredChanges() {
	fates := specific.NewFatesFavored()
	testutils.CreateTestFeat(s.actor, "ff", "Fate's Favored", fates.Key())

	changes := fates.DefaultChanges(s.env, s.actor, []rolls.Change{
		{Formula: "2", Value: 2, Target: "init", Type: "luck"},
		{Formula: "1", Value: 1, Target: "init", Type: "competence"},
	})
	s.Equal(3.0, changes[0].Value)
	s.Equal("2 + 1", changes[0].Formula)
	s.Equal(1.0, changes[1].Value)
}

func (s *SpecificTestSuite) TestSnakeSidewind() {
	snake := specific.NewSnakeSidewind()
	sword := testutils.CreateTestWeapon(s.actor, "sword")
	use := &rolls.ActionUse{Actor: s.actor, Item: sword, Action: sword.DefaultAction(), Shared: rolls.NewShared()}
	s.actor.Skills[specific.SenseMotive] = 10

	_, _, ok := snake.CritConfirm(s.env, use, "1d20 + 5")
	s.False(ok, "actor without the feat")

	testutils.CreateTestFeat(s.actor, "sw", "Snake Sidewind", snake.Key())
	formula, note, ok := snake.CritConfirm(s.env, use, "1d20 + 5")
	s.Require().True(ok)
	s.Equal("1d20 + 10[Sense Motive]", formula)
	s.Equal(rolls.EffectNote{Text: "Snake Sidewind", Source: "Snake Sidewind"}, note)

	_, _, ok = snake.CritConfirm(s.env, use, "1d20 + 15")
	s.False(ok, "the attack confirms higher")

	_, _, ok = snake.CritConfirm(s.env, nil, "1d20")
	s.False(ok)
}

func (s *SpecificTestSuite) TestArmorFocus() {
	focus := specific.NewArmorFocus()
	armor := s.armor("chainmail", 5)
	feat := testutils.CreateTestFeat(s.actor, "af", "Armor Focus", focus.Key())

	s.Empty(focus.DefaultChanges(s.env, s.actor, nil), "no armor type picked")

	feat.SetFlag(focus.Key(), "chainmail")
	s.Equal([]rolls.Change{{
		ID:      "armor-focus_" + armor.ID,
		Formula: "1",
		Value:   1,
		Target:  "aac",
		Type:    "untyped",
		Name:    "Armor Focus",
		Flavor:  "Armor Focus",
	}}, focus.DefaultChanges(s.env, s.actor, nil))

	inputs := focus.Inputs(s.env, feat, true)
	s.Require().Len(inputs, 1)
	s.Equal(sheet.InputSelect, inputs[0].Type)
	s.Equal([]sheet.Choice{{Key: "chainmail", Label: "chainmail"}}, inputs[0].Choices)

	armor.BaseTypes = []string{"breastplate"}
	s.Empty(focus.DefaultChanges(s.env, s.actor, nil))
}

func (s *SpecificTestSuite) TestImprovedArmorFocus() {
	improved := specific.NewImprovedArmorFocus()
	armor := s.armor("chainmail", 5)
	feat := testutils.CreateTestFeat(s.actor, "iaf", "Improved Armor Focus", improved.Key())
	feat.SetFlag(improved.Key(), "chainmail")

	changes := improved.DefaultChanges(s.env, s.actor, nil)
	s.Require().Len(changes, 1)
	s.Equal(-1.0, changes[0].Value)
	s.Equal("acpA", changes[0].Target)
	s.Equal("untypedPerm", changes[0].Type)

	data := rolls.RollData{}
	data.Set(specific.PathArmorACP, 5.0)
	data.Set(specific.PathArmorTotal, 6.0)
	improved.RollData(s.env, sources.ForItem(armor), data)
	s.Equal(4.0, data.Number(specific.PathArmorACP))
	s.Equal(5.0, data.Number(specific.PathArmorTotal))

	data.Set(specific.PathArmorACP, 0.0)
	improved.RollData(s.env, sources.ForItem(armor), data)
	s.Equal(0.0, data.Number(specific.PathArmorACP), "never below zero")
	s.Equal(5.0, data.Number(specific.PathArmorTotal))

	armor.Armor.ACP = 0
	s.Empty(improved.DefaultChanges(s.env, s.actor, nil))
}

func (s *SpecificTestSuite) TestInspirationFormula() {
	inspiration := specific.NewInspiration()
	s.actor.Skills = map[string]int{"dip": 4, "kno": 6, "lin": 2}

	s.Empty(inspiration.Formula(s.actor, "dip"), "no inspiration")

	source := testutils.CreateTestFeat(s.actor, "insp", "Inspiration", inspiration.Key())
	s.Equal("1d6", inspiration.Formula(s.actor, "dip"), "no skills listed covers every skill")

	source.SetFlag(inspiration.Key(), []any{"kno", "lin"})
	s.Empty(inspiration.Formula(s.actor, "dip"))
	s.Equal("1d6", inspiration.Formula(s.actor, "kno"))

	focused := testutils.CreateTestFeat(s.actor, "focus", "Focused Inspiration", "inspiration-focused")
	focused.SetFlag("inspiration-focused", []string{"kno"})
	s.Equal("1d8", inspiration.Formula(s.actor, "kno"))
	s.Equal("1d6", inspiration.Formula(s.actor, "lin"))

	testutils.CreateTestFeat(s.actor, "true", "True Inspiration", specific.TrueInspirationKey)
	s.Equal("2d8", inspiration.Formula(s.actor, "kno"))

	source.SetFlag(inspiration.DieKey(), "d8")
	s.Equal("2d10", inspiration.Formula(s.actor, "kno"))

	s.Equal([]string{"2d10[Inspiration]"}, inspiration.SkillRollParts(s.env, s.actor, "kno", true))
	s.Nil(inspiration.SkillRollParts(s.env, s.actor, "kno", false))
	s.Equal([]string{"kno, lin"}, inspiration.Hints(s.env, source))
}

func (s *SpecificTestSuite) TestFocusedInspirationLimit() {
	focused := specific.NewFocusedInspiration()
	feat := testutils.CreateTestFeat(s.actor, "focus", "Focused Inspiration")

	err := focused.Configure(s.ctx, s.env, feat, map[string]any{focused.Key(): []string{"kno", "lin", "dip"}})
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
	s.Equal(sources.StatusUndetected, focused.Status(feat))

	s.Require().NoError(focused.Configure(s.ctx, s.env, feat, map[string]any{focused.Key(): []string{"kno", "lin"}}))
	s.Equal(sources.StatusConfigured, focused.Status(feat))
	s.True(focused.Covers(s.actor, "lin"))

	s.Equal(specific.FocusedSkillLimit, focused.Inputs(s.env, feat, true)[0].Limit)
}

func (s *SpecificTestSuite) TestStatusTransitions() {
	focus := specific.NewArmorFocus()
	feat := testutils.CreateTestFeat(s.actor, "af", "Feat")

	s.Equal(sources.StatusUndetected, focus.Status(feat))

	s.Require().NoError(focus.Configure(s.ctx, s.env, feat, nil))
	s.Equal(sources.StatusFlagged, focus.Status(feat))

	s.Require().NoError(focus.Configure(s.ctx, s.env, feat, map[string]any{focus.Key(): "chainmail"}))
	s.Equal(sources.StatusConfigured, focus.Status(feat))

	err := focus.Configure(s.ctx, s.env, feat, map[string]any{"unknown": 1})
	s.True(errors.IsInvalidArgument(err))
	err = focus.Configure(s.ctx, s.env, feat, map[string]any{focus.Key(): nil})
	s.True(errors.IsInvalidArgument(err))
}

func (s *SpecificTestSuite) TestElementalCasterLevel() {
	cl := specific.NewElementalCL()
	fireball := testutils.CreateTestSpell(s.actor, "fireball", "fire")
	frost := testutils.CreateTestSpell(s.actor, "ray-of-frost", "cold")
	source := testutils.CreateTestFeat(s.actor, "elemental", "Elemental Focus", cl.Key())
	source.SetFlag(cl.Key(), "fire")
	source.SetFlag(cl.FormulaKey(), "2")

	data := rolls.RollData{}
	data.Set("cl", 5.0)
	cl.RollData(s.env, sources.ForItem(fireball), data)
	s.Equal(7.0, data.Number("cl"))

	cl.RollData(s.env, sources.ForItem(frost), data)
	s.Equal(7.0, data.Number("cl"))

	s.Equal([]string{"Fire Caster Level (+2)"}, cl.ChatProps(s.env, fireball, nil))
	s.Nil(cl.ChatProps(s.env, frost, nil))
	s.Equal([]rolls.Hint{{Label: "Fire Caster Level (+2)", Hint: "Elemental Caster Level"}}, cl.ItemHints(s.env, fireball))
	s.Equal([]string{"Fire Caster Level (+2)"}, cl.Hints(s.env, source))
}

func (s *SpecificTestSuite) TestElementalDCFromDescriptor() {
	dc := specific.NewElementalDC()
	spell := testutils.CreateTestSpell(s.actor, "stinking-cloud")
	spell.Descriptors = []string{"Acid"}
	source := testutils.CreateTestFeat(s.actor, "elemental", "Elemental Spell", dc.Key())
	source.SetFlag(dc.Key(), "acid")
	source.SetFlag(dc.FormulaKey(), "-1")

	data := rolls.RollData{}
	dc.RollData(s.env, sources.ForItem(spell), data)
	s.Equal(-1.0, data.Number("dcBonus"))
	s.Equal([]string{"Acid DC (-1)"}, dc.ChatProps(s.env, spell, nil))

	inputs := dc.Inputs(s.env, source, true)
	s.Require().Len(inputs, 1)
	s.Equal(dc.FormulaKey(), inputs[0].Key)
	s.Require().NotNil(inputs[0].Secondary)
	s.Len(inputs[0].Secondary.Choices, len(specific.Elements))
}

func (s *SpecificTestSuite) TestOnRenderFlagsEditableItems() {
	feat := testutils.CreateTestFeat(s.actor, "outflank", "Outflank")

	inputs, err := specific.OnRender(s.ctx, s.env, feat, false)
	s.Require().NoError(err)
	s.Empty(inputs, "read only sheets do not flag")

	inputs, err = specific.OnRender(s.ctx, s.env, feat, true)
	s.Require().NoError(err)
	s.Require().Len(inputs, 1)
	s.Equal(specific.OutflankKey, inputs[0].Key)
	s.Equal(sheet.InputEnabledLabel, inputs[0].Type)
}

func (s *SpecificTestSuite) TestAllRegistersCleanly() {
	registry := sources.NewRegistry()
	registry.MustRegister(specific.All()...)
	s.Len(registry.Specifics(), len(specific.All()))
	s.Len(sources.Implementing[sources.CritConfirmHook](registry), 1)
	s.Len(sources.Implementing[sources.CreateHook](registry), 1)
}

func TestSpecificSuite(t *testing.T) {
	suite.Run(t, new(SpecificTestSuite))
}
