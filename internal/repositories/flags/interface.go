package flags

//go:generate mockgen -destination=mock/mock.go -package=mockflags -source=interface.go

import (
	"context"
	"maps"
	"slices"

	"github.com/KirkDiggler/roll-bonuses/internal/domain/entity"
)

// Record is the persisted flag state of one entity
type Record struct {
	EntityID string
	// Boolean holds the keys present in the boolean flag set
	Boolean map[string]bool
	// Values are module namespaced values: bool, string, []string or number
	Values map[string]any
}

// RecordOf captures the current flags of item
func RecordOf(item *entity.Item) *Record {
	return &Record{
		EntityID: item.ID,
		Boolean:  maps.Clone(item.BooleanFlags),
		Values:   maps.Clone(item.Flags),
	}
}

// ApplyTo replaces the flags of item with the record's
func (r *Record) ApplyTo(item *entity.Item) {
	item.BooleanFlags = maps.Clone(r.Boolean)
	item.Flags = entity.Flags(maps.Clone(r.Values))
}

// BooleanKeys returns the boolean keys in sorted order
func (r *Record) BooleanKeys() []string {
	return slices.Sorted(maps.Keys(r.Boolean))
}

// Repository persists item flags. Writes are last writer wins.
type Repository interface {
	// Get returns the flags of one entity, or a not found error
	Get(ctx context.Context, entityID string) (*Record, error)

	// GetMany returns the records that exist, keyed by entity ID
	GetMany(ctx context.Context, entityIDs []string) (map[string]*Record, error)

	// SetBoolean adds key to the boolean set, or removes it when on is false
	SetBoolean(ctx context.Context, entityID, key string, on bool) error

	// SetValues writes module values; a nil value removes the key
	SetValues(ctx context.Context, entityID string, values map[string]any) error

	// Delete removes every flag of the entity
	Delete(ctx context.Context, entityID string) error
}
