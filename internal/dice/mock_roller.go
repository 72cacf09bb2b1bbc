package dice

import (
	"fmt"
	"sync"
)

// MockRoller returns predetermined results in order
type MockRoller struct {
	mu        sync.Mutex
	rolls     []int
	rollIndex int
}

func NewMockRoller(rolls ...int) *MockRoller {
	return &MockRoller{rolls: rolls}
}

// SetRolls replaces the queued results
func (m *MockRoller) SetRolls(rolls ...int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rolls = rolls
	m.rollIndex = 0
}

func (m *MockRoller) next() (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.rollIndex >= len(m.rolls) {
		return 0, fmt.Errorf("no more predetermined rolls available (used %d of %d)", m.rollIndex, len(m.rolls))
	}
	roll := m.rolls[m.rollIndex]
	m.rollIndex++
	return roll, nil
}

func (m *MockRoller) Roll(count, sides int) (*RollResult, error) {
	if err := validate(count, sides); err != nil {
		return nil, err
	}

	result := &RollResult{Count: count, Sides: sides, Rolls: make([]int, count)}
	for i := range count {
		roll, err := m.next()
		if err != nil {
			return nil, err
		}
		if roll < 1 || roll > sides {
			return nil, fmt.Errorf("invalid roll %d for d%d", roll, sides)
		}
		result.Rolls[i] = roll
		result.Total += roll
	}
	return result, nil
}
