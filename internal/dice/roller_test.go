package dice_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/KirkDiggler/roll-bonuses/internal/dice"
)

func TestMockRoller_Roll(t *testing.T) {
	tests := []struct {
		name      string
		queued    []int
		count     int
		sides     int
		wantTotal int
		wantErr   bool
	}{
		{name: "single d20", queued: []int{15}, count: 1, sides: 20, wantTotal: 15},
		{name: "2d6", queued: []int{4, 5}, count: 2, sides: 6, wantTotal: 9},
		{name: "zero dice", queued: nil, count: 0, sides: 6, wantTotal: 0},
		{name: "out of rolls", queued: []int{3}, count: 2, sides: 6, wantErr: true},
		{name: "face too high", queued: []int{7}, count: 1, sides: 6, wantErr: true},
		{name: "bad size", queued: []int{1}, count: 1, sides: 0, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			roller := dice.NewMockRoller(tt.queued...)
			result, err := roller.Roll(tt.count, tt.sides)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantTotal, result.Total)
			assert.Len(t, result.Rolls, tt.count)
		})
	}
}

func TestMaxRoller(t *testing.T) {
	result, err := dice.NewMaxRoller().Roll(3, 8)
	require.NoError(t, err)
	assert.Equal(t, 24, result.Total)
	assert.Equal(t, []int{8, 8, 8}, result.Rolls)
}

func TestRandomRollerStaysInBounds(t *testing.T) {
	roller := dice.NewRandomRoller()
	rapid.Check(t, func(rt *rapid.T) {
		count := rapid.IntRange(0, 10).Draw(rt, "count")
		sides := rapid.IntRange(1, 100).Draw(rt, "sides")

		result, err := roller.Roll(count, sides)
		if err != nil {
			rt.Fatalf("unexpected error: %v", err)
		}
		if result.Total < count || result.Total > count*sides {
			rt.Fatalf("total %d outside [%d, %d]", result.Total, count, count*sides)
		}
	})
}
