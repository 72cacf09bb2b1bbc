package sources

import (
	"slices"
	"sync"

	"github.com/KirkDiggler/roll-bonuses/internal/domain/entity"
)

// Prepared is what the prepare pass caches for one item
type Prepared struct {
	Bonuses []Bonus
	Targets []Target

	// WeaponGroups are added to the item's own groups by an override
	WeaponGroups []string
	Proficient   bool
}

// HasTarget reports whether target was cached for the item
func (p *Prepared) HasTarget(target Target) bool {
	return p != nil && slices.ContainsFunc(p.Targets, func(t Target) bool {
		return t.Key() == target.Key()
	})
}

// Index holds prepared data keyed by item ID so host entities are never
// mutated for caching.
type Index struct {
	mu    sync.RWMutex
	items map[string]*Prepared
}

func NewIndex() *Index {
	return &Index{items: make(map[string]*Prepared)}
}

func (x *Index) Get(itemID string) (*Prepared, bool) {
	x.mu.RLock()
	defer x.mu.RUnlock()

	p, ok := x.items[itemID]
	return p, ok
}

func (x *Index) Put(itemID string, p *Prepared) {
	x.mu.Lock()
	defer x.mu.Unlock()

	x.items[itemID] = p
}

// Forget drops the prepared data of the given items
func (x *Index) Forget(itemIDs ...string) {
	x.mu.Lock()
	defer x.mu.Unlock()

	for _, id := range itemIDs {
		delete(x.items, id)
	}
}

func (x *Index) Len() int {
	x.mu.RLock()
	defer x.mu.RUnlock()

	return len(x.items)
}

// WeaponGroups returns the item's groups plus any override groups
func (x *Index) WeaponGroups(item *entity.Item) []string {
	if item == nil {
		return nil
	}
	groups := slices.Clone(item.WeaponGroups)
	if p, ok := x.Get(item.ID); ok {
		for _, g := range p.WeaponGroups {
			if !slices.Contains(groups, g) {
				groups = append(groups, g)
			}
		}
	}
	return groups
}

// IsProficient reports the item's own proficiency or a prepared override
func (x *Index) IsProficient(item *entity.Item) bool {
	if item == nil {
		return false
	}
	if item.Proficient {
		return true
	}
	p, ok := x.Get(item.ID)
	return ok && p.Proficient
}
