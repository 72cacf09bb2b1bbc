package dice

import "math/rand/v2"

type randomRoller struct{}

// NewRandomRoller creates a roller backed by math/rand/v2
func NewRandomRoller() Roller {
	return &randomRoller{}
}

func (r *randomRoller) Roll(count, sides int) (*RollResult, error) {
	if err := validate(count, sides); err != nil {
		return nil, err
	}

	result := &RollResult{Count: count, Sides: sides, Rolls: make([]int, count)}
	for i := range count {
		roll := rand.IntN(sides) + 1
		result.Rolls[i] = roll
		result.Total += roll
	}
	return result, nil
}
