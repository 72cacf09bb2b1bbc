package geometry_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/roll-bonuses/internal/domain/entity"
	"github.com/KirkDiggler/roll-bonuses/internal/domain/geometry"
	"github.com/KirkDiggler/roll-bonuses/internal/errors"
	"github.com/KirkDiggler/roll-bonuses/internal/testutils"
)

type GeometryTestSuite struct {
	suite.Suite
	scene    *geometry.Scene
	attacker *entity.Actor
	target   *entity.Actor
}

func (s *GeometryTestSuite) SetupTest() {
	s.scene = testutils.CreateTestScene("scene-1")
	s.attacker = testutils.CreateTestActor("attacker", entity.SizeMedium)
	s.target = testutils.CreateTestActor("target", entity.SizeMedium)
}

func (s *GeometryTestSuite) place(actor *entity.Actor, col, row, cells float64, d geometry.Disposition) *geometry.Token {
	return testutils.PlaceTestToken(s.scene, actor, col, row, cells, d)
}

func (s *GeometryTestSuite) pair(a, b *geometry.Token) *geometry.Pair {
	p, err := geometry.NewPair(a, b)
	s.Require().NoError(err)
	return p
}

func (s *GeometryTestSuite) TestNewPairRejectsDifferentScenes() {
	a := s.place(s.attacker, 0, 0, 1, geometry.DispositionFriendly)
	other := testutils.CreateTestScene("scene-2")
	b := testutils.PlaceTestToken(other, s.target, 1, 0, 1, geometry.DispositionHostile)

	_, err := geometry.NewPair(a, b)
	s.True(errors.IsInvalidArgument(err))

	_, err = geometry.NewPair(a, nil)
	s.True(errors.IsInvalidArgument(err))
}

func (s *GeometryTestSuite) TestAdjacentTokens() {
	a := s.place(s.attacker, 0, 0, 1, geometry.DispositionFriendly)
	b := s.place(s.target, 1, 0, 1, geometry.DispositionHostile)
	p := s.pair(a, b)

	s.Equal(5.0, p.Distance())
	s.True(p.IsAdjacent())
	s.False(p.IsSharingSquare())
}

func (s *GeometryTestSuite) TestOverlappingLargeAndMediumShareSquare() {
	a := s.place(s.attacker, 0, 0, 2, geometry.DispositionFriendly)
	b := s.place(s.target, 1, 1, 1, geometry.DispositionHostile)
	p := s.pair(a, b)

	s.True(p.IsSharingSquare())
	s.Equal(0.0, p.Distance())
}

func (s *GeometryTestSuite) TestLargeTokenMeasuresFromNearestEdge() {
	s.attacker.Size = entity.SizeLarge
	a := s.place(s.attacker, 0, 0, 2, geometry.DispositionFriendly)
	b := s.place(s.target, 4, 0, 1, geometry.DispositionHostile)

	s.Equal(15.0, s.pair(a, b).Distance())
	s.Equal(15.0, s.pair(b, a).Distance())
}

func (s *GeometryTestSuite) TestDiagonalRules() {
	a := s.place(s.attacker, 0, 0, 1, geometry.DispositionFriendly)
	b := s.place(s.target, 2, 2, 1, geometry.DispositionHostile)

	s.Equal(15.0, s.pair(a, b).Distance())

	s.scene.Grid.Diagonals = geometry.Diagonals555
	s.Equal(10.0, s.pair(a, b).Distance())
}

func (s *GeometryTestSuite) TestOffGridTokensRoundUpToWholeSpaces() {
	a := s.place(s.attacker, 0, 0, 1, geometry.DispositionFriendly)
	b := s.place(s.target, 2.5, 0, 1, geometry.DispositionHostile)

	s.Equal(15.0, s.pair(a, b).Distance())
	s.Equal(15.0, s.pair(b, a).Distance())
}

func (s *GeometryTestSuite) TestElevationFloorsToGridDistance() {
	a := s.place(s.attacker, 0, 0, 1, geometry.DispositionFriendly)
	a.Elevation = 10
	b := s.place(s.target, 1, 0, 1, geometry.DispositionHostile)
	p := s.pair(a, b)

	// sqrt(5^2 + 10^2) = 11.2, floored to the 5ft grid
	s.Equal(10.0, p.Distance())
	s.False(p.IsAdjacent())
	s.True(p.IsOnHigherGround())
	s.False(s.pair(b, a).IsOnHigherGround())
}

func (s *GeometryTestSuite) TestGridlessUsesStraightLine() {
	s.scene.Grid.Type = geometry.GridGridless
	a := s.place(s.attacker, 0, 0, 1, geometry.DispositionFriendly)
	b := s.place(s.target, 3, 4, 1, geometry.DispositionHostile)

	s.InDelta(25.0, s.pair(a, b).Distance(), 1e-9)
}

func (s *GeometryTestSuite) TestWithinRange() {
	a := s.place(s.attacker, 0, 0, 1, geometry.DispositionFriendly)
	b := s.place(s.target, 3, 0, 1, geometry.DispositionHostile)
	p := s.pair(a, b)

	s.True(p.IsWithinRange(0, 15, false))
	s.False(p.IsWithinRange(0, 10, false))
	s.False(p.IsWithinRange(15, 30, false), "minimum is exclusive")
	s.True(p.IsWithinRange(nan(), nan(), false))
}

func (s *GeometryTestSuite) TestSharingSquareWithinZeroMinimum() {
	a := s.place(s.attacker, 0, 0, 1, geometry.DispositionFriendly)
	b := s.place(s.target, 0, 0, 1, geometry.DispositionHostile)
	p := s.pair(a, b)

	s.True(p.IsWithinRange(0, 5, false))
	s.False(p.IsWithinRange(5, 10, false))
}

func (s *GeometryTestSuite) TestReachThreatensSecondDiagonal() {
	testutils.CreateTestReachWeapon(s.attacker, "glaive")
	a := s.place(s.attacker, 0, 0, 1, geometry.DispositionFriendly)
	b := s.place(s.target, 2, 2, 1, geometry.DispositionHostile)
	p := s.pair(a, b)

	s.Equal(15.0, p.Distance())
	s.True(p.IsDiagonalReachAdjacent())
	s.True(p.Threatens(nil))
}

func (s *GeometryTestSuite) TestThreatensWithMeleeWeapon() {
	testutils.CreateTestWeapon(s.attacker, "longsword", "blades-heavy")
	a := s.place(s.attacker, 0, 0, 1, geometry.DispositionFriendly)
	near := s.place(s.target, 1, 1, 1, geometry.DispositionHostile)

	far := testutils.CreateTestActor("far", entity.SizeMedium)
	farToken := s.place(far, 2, 0, 1, geometry.DispositionHostile)

	s.True(s.pair(a, near).Threatens(nil))
	s.False(s.pair(a, farToken).Threatens(nil))
	s.False(s.pair(near, a).Threatens(nil), "unarmed target threatens nothing")
}

func (s *GeometryTestSuite) TestThreatensIgnoresInactiveAndRangedItems() {
	sword := testutils.CreateTestWeapon(s.attacker, "longsword")
	sword.Active = false
	testutils.CreateTestBow(s.attacker, "longbow")
	a := s.place(s.attacker, 0, 0, 1, geometry.DispositionFriendly)
	b := s.place(s.target, 1, 0, 1, geometry.DispositionHostile)

	s.False(s.pair(a, b).Threatens(nil))
	s.True(s.pair(a, b).Threatens(sword.DefaultAction()), "explicit action is always considered")
}

func (s *GeometryTestSuite) TestConditionsDisableThreat() {
	testutils.CreateTestWeapon(s.attacker, "longsword")
	a := s.place(s.attacker, 0, 0, 1, geometry.DispositionFriendly)
	b := s.place(s.target, 1, 0, 1, geometry.DispositionHostile)
	p := s.pair(a, b)

	s.attacker.Conditions[entity.ConditionDazed] = true
	s.False(p.Threatens(nil))
	delete(s.attacker.Conditions, entity.ConditionDazed)

	s.attacker.Conditions[entity.ConditionBlind] = true
	s.False(p.Threatens(nil))
	s.attacker.Senses.Blindsight = true
	s.True(p.Threatens(nil))
	delete(s.attacker.Conditions, entity.ConditionBlind)

	s.target.Conditions[entity.ConditionInvisible] = true
	s.False(p.Threatens(nil))
	s.attacker.Senses.SeeInvisibility = true
	s.True(p.Threatens(nil))
}

func (s *GeometryTestSuite) TestShootingIntoMelee() {
	testutils.CreateTestBow(s.attacker, "longbow")
	shooter := s.place(s.attacker, 6, 0, 1, geometry.DispositionFriendly)
	target := s.place(s.target, 0, 0, 1, geometry.DispositionHostile)
	p := s.pair(shooter, target)

	s.Equal(0, p.ShootingIntoMeleePenalty(), "no allies engaged")

	ally := testutils.CreateTestActor("ally", entity.SizeMedium)
	testutils.CreateTestWeapon(ally, "axe")
	s.place(ally, 1, 0, 1, geometry.DispositionFriendly)

	s.Equal(4, p.ShootingIntoMeleePenalty())
}

func (s *GeometryTestSuite) TestShootingIntoMeleeBySize() {
	testutils.CreateTestBow(s.attacker, "longbow")
	shooter := s.place(s.attacker, 8, 0, 1, geometry.DispositionFriendly)

	ally := testutils.CreateTestActor("ally", entity.SizeSmall)
	testutils.CreateTestWeapon(ally, "dagger")
	s.place(ally, 2, 0, 1, geometry.DispositionFriendly)

	s.target.Size = entity.SizeLarge
	target := s.place(s.target, 0, 0, 2, geometry.DispositionHostile)

	s.Equal(2, s.pair(shooter, target).ShootingIntoMeleePenalty())

	s.target.Size = entity.SizeHuge
	s.Equal(0, s.pair(shooter, target).ShootingIntoMeleePenalty())
}

func (s *GeometryTestSuite) TestNeutralTokensDoNotCountAsAllies() {
	shooter := s.place(s.attacker, 6, 0, 1, geometry.DispositionFriendly)
	target := s.place(s.target, 0, 0, 1, geometry.DispositionHostile)

	bystander := testutils.CreateTestActor("bystander", entity.SizeMedium)
	testutils.CreateTestWeapon(bystander, "club")
	s.place(bystander, 1, 0, 1, geometry.DispositionNeutral)

	s.Equal(0, s.pair(shooter, target).ShootingIntoMeleePenalty())
}

func (s *GeometryTestSuite) TestFlanking() {
	testutils.CreateTestWeapon(s.attacker, "longsword")
	ally := testutils.CreateTestActor("ally", entity.SizeMedium)
	testutils.CreateTestWeapon(ally, "axe")

	a := s.place(s.attacker, 0, 1, 1, geometry.DispositionFriendly)
	target := s.place(s.target, 1, 1, 1, geometry.DispositionHostile)
	opposite := s.place(ally, 2, 1, 1, geometry.DispositionFriendly)

	s.True(geometry.IsFlanking(a, opposite, target))
	s.Equal([]*geometry.Token{opposite}, geometry.ThreateningAllies(a, target))

	// a corner-to-corner line only grazes the target
	opposite.Bounds.X, opposite.Bounds.Y = 100, 0
	s.False(geometry.IsFlanking(a, opposite, target))
}

func TestGeometryTestSuite(t *testing.T) {
	suite.Run(t, new(GeometryTestSuite))
}

func TestRectIntersectsIsStrict(t *testing.T) {
	a := geometry.Rect{X: 0, Y: 0, W: 100, H: 100}

	assert.False(t, a.Intersects(geometry.Rect{X: 100, Y: 0, W: 100, H: 100}))
	assert.True(t, a.Intersects(geometry.Rect{X: 99, Y: 99, W: 100, H: 100}))
	assert.False(t, a.Intersects(geometry.Rect{X: 10, Y: 10}))
	assert.True(t, a.Expand(1).Intersects(geometry.Rect{X: 100, Y: 0, W: 100, H: 100}))
}

func TestSegmentCrosses(t *testing.T) {
	r := geometry.Rect{X: 100, Y: 100, W: 100, H: 100}

	require.True(t, r.SegmentCrosses(50, 150, 250, 150))
	assert.False(t, r.SegmentCrosses(50, 150, 150, 50))
	assert.False(t, r.SegmentCrosses(0, 0, 50, 50))
	assert.False(t, r.SegmentCrosses(0, 100, 300, 100), "edge only")
}
