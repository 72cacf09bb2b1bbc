// uuid simple generator that allows mocking
package uuid

import (
	"fmt"
	"sync"

	"github.com/google/uuid"
)

// Generator hands out identifiers for engine-created values such as conditionals
type Generator interface {
	New() string
}

// GoogleUUIDGenerator implements Generator with random v4 UUIDs
type GoogleUUIDGenerator struct{}

func (g *GoogleUUIDGenerator) New() string {
	return uuid.New().String()
}

func NewGoogleUUIDGenerator() *GoogleUUIDGenerator {
	return &GoogleUUIDGenerator{}
}

// SequenceGenerator returns prefix-1, prefix-2, ... and is safe for concurrent use
type SequenceGenerator struct {
	mu     sync.Mutex
	prefix string
	next   int
}

func NewSequenceGenerator(prefix string) *SequenceGenerator {
	return &SequenceGenerator{prefix: prefix}
}

func (g *SequenceGenerator) New() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.next++
	return fmt.Sprintf("%s-%d", g.prefix, g.next)
}
