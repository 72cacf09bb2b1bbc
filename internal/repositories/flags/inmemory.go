package flags

import (
	"context"
	"maps"
	"sync"

	"github.com/KirkDiggler/roll-bonuses/internal/errors"
)

// InMemoryRepository keeps flags in process. Useful for tests and the
// resolve tool.
type InMemoryRepository struct {
	mu      sync.RWMutex
	records map[string]*Record
}

// NewInMemoryRepository creates a new in-memory repository
func NewInMemoryRepository() Repository {
	return &InMemoryRepository{
		records: make(map[string]*Record),
	}
}

func (r *InMemoryRepository) Get(_ context.Context, entityID string) (*Record, error) {
	if entityID == "" {
		return nil, errors.InvalidArgument("entity ID is required")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	record, exists := r.records[entityID]
	if !exists {
		return nil, errors.NotFoundf("flags for '%s' not found", entityID).
			WithMeta("entity_id", entityID)
	}
	return copyRecord(record), nil
}

func (r *InMemoryRepository) GetMany(ctx context.Context, entityIDs []string) (map[string]*Record, error) {
	out := make(map[string]*Record, len(entityIDs))
	for _, id := range entityIDs {
		record, err := r.Get(ctx, id)
		if errors.IsNotFound(err) {
			continue
		}
		if err != nil {
			return nil, err
		}
		out[id] = record
	}
	return out, nil
}

func (r *InMemoryRepository) SetBoolean(_ context.Context, entityID, key string, on bool) error {
	if entityID == "" || key == "" {
		return errors.InvalidArgument("entity ID and key are required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	record := r.record(entityID)
	if on {
		record.Boolean[key] = true
	} else {
		delete(record.Boolean, key)
	}
	return nil
}

func (r *InMemoryRepository) SetValues(_ context.Context, entityID string, values map[string]any) error {
	if entityID == "" {
		return errors.InvalidArgument("entity ID is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	record := r.record(entityID)
	for key, value := range values {
		if value == nil {
			delete(record.Values, key)
			continue
		}
		record.Values[key] = value
	}
	return nil
}

func (r *InMemoryRepository) Delete(_ context.Context, entityID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.records, entityID)
	return nil
}

// record returns the stored record, creating it. Callers hold the write lock.
func (r *InMemoryRepository) record(entityID string) *Record {
	record, ok := r.records[entityID]
	if !ok {
		record = &Record{EntityID: entityID, Boolean: map[string]bool{}, Values: map[string]any{}}
		r.records[entityID] = record
	}
	return record
}

func copyRecord(r *Record) *Record {
	return &Record{
		EntityID: r.EntityID,
		Boolean:  maps.Clone(r.Boolean),
		Values:   maps.Clone(r.Values),
	}
}
