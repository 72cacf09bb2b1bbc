package geometry_test

import (
	"math"
	"testing"

	"pgregory.net/rapid"

	"github.com/KirkDiggler/roll-bonuses/internal/domain/entity"
	"github.com/KirkDiggler/roll-bonuses/internal/domain/geometry"
	"github.com/KirkDiggler/roll-bonuses/internal/testutils"
)

func nan() float64 { return math.NaN() }

func drawScene(t *rapid.T) *geometry.Scene {
	scene := testutils.CreateTestScene("prop")
	scene.Grid.Diagonals = rapid.SampledFrom([]geometry.DiagonalRule{
		geometry.Diagonals5105,
		geometry.Diagonals555,
	}).Draw(t, "diagonals")
	return scene
}

func drawToken(t *rapid.T, scene *geometry.Scene, label string) *geometry.Token {
	actor := testutils.CreateTestActor(label, entity.SizeMedium)
	col := float64(rapid.IntRange(-8, 8).Draw(t, label+"-col"))
	row := float64(rapid.IntRange(-8, 8).Draw(t, label+"-row"))
	cells := float64(rapid.IntRange(1, 3).Draw(t, label+"-cells"))
	return testutils.PlaceTestToken(scene, actor, col, row, cells, geometry.DispositionNeutral)
}

func TestDistanceIsSymmetricAndNonNegative(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		scene := drawScene(t)
		a := drawToken(t, scene, "a")
		b := drawToken(t, scene, "b")
		a.Elevation = float64(rapid.IntRange(0, 4).Draw(t, "a-elevation") * 5)
		b.Elevation = float64(rapid.IntRange(0, 4).Draw(t, "b-elevation") * 5)

		ab := geometry.MustPair(a, b).Distance()
		ba := geometry.MustPair(b, a).Distance()
		if ab < 0 {
			t.Fatalf("negative distance %v", ab)
		}
		if ab != ba {
			t.Fatalf("distance not symmetric: %v vs %v", ab, ba)
		}
		if math.Mod(ab, scene.Grid.Distance) != 0 {
			t.Fatalf("distance %v is not a multiple of the grid distance", ab)
		}
	})
}

func TestAdjacencyImpliesWithinFiveFeet(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		scene := drawScene(t)
		a := drawToken(t, scene, "a")
		b := drawToken(t, scene, "b")
		p := geometry.MustPair(a, b)

		if p.IsAdjacent() && p.Distance() > scene.Grid.Distance {
			t.Fatalf("adjacent tokens measured %v apart", p.Distance())
		}
		if p.IsSharingSquare() && p.Distance() != 0 {
			t.Fatalf("sharing tokens measured %v apart", p.Distance())
		}
	})
}

func TestRangeWithoutBoundsAlwaysHolds(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		scene := drawScene(t)
		p := geometry.MustPair(drawToken(t, scene, "a"), drawToken(t, scene, "b"))

		if !p.IsWithinRange(nan(), nan(), false) {
			t.Fatalf("unbounded range rejected distance %v", p.Distance())
		}
	})
}
