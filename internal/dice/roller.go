package dice

import "fmt"

// Roller rolls count dice of the given sides
type Roller interface {
	Roll(count, sides int) (*RollResult, error)
}

// RollResult holds the individual dice and their sum
type RollResult struct {
	Count int
	Sides int
	Rolls []int
	Total int
}

func validate(count, sides int) error {
	if count < 0 {
		return fmt.Errorf("invalid dice count %d", count)
	}
	if sides < 1 {
		return fmt.Errorf("invalid dice size %d", sides)
	}
	return nil
}
