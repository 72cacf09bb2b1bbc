package dice

type maxRoller struct{}

// NewMaxRoller creates a roller where every die shows its highest face.
// It answers "what is the best this formula can do" questions.
func NewMaxRoller() Roller {
	return &maxRoller{}
}

func (r *maxRoller) Roll(count, sides int) (*RollResult, error) {
	if err := validate(count, sides); err != nil {
		return nil, err
	}

	result := &RollResult{Count: count, Sides: sides, Rolls: make([]int, count)}
	for i := range count {
		result.Rolls[i] = sides
	}
	result.Total = count * sides
	return result, nil
}
