package sources

import (
	"fmt"
	"iter"
	"slices"
	"sync"

	"github.com/KirkDiggler/roll-bonuses/internal/errors"
	"github.com/KirkDiggler/roll-bonuses/internal/i18n"
)

// Registry holds every source kind. It is filled at startup and sealed;
// keys are unique across base types.
type Registry struct {
	mu     sync.RWMutex
	kinds  map[string]Kind
	order  []string
	sealed bool
}

func NewRegistry() *Registry {
	return &Registry{kinds: make(map[string]Kind)}
}

// Register adds a kind. The kind must implement the interface of its base type.
func (r *Registry) Register(kind Kind) error {
	if kind == nil {
		return errors.InvalidArgument("kind cannot be nil")
	}

	key := kind.Key()
	if key == "" {
		return errors.InvalidArgument("kind key cannot be empty")
	}
	if err := checkBaseType(kind); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.sealed {
		return errors.FailedPreconditionf("registry is sealed, cannot register %q", key).
			WithMeta("key", key)
	}
	if _, exists := r.kinds[key]; exists {
		return errors.AlreadyExistsf("kind %q already registered", key).
			WithMeta("key", key)
	}

	r.kinds[key] = kind
	r.order = append(r.order, key)
	return nil
}

// MustRegister registers kinds and panics on the first failure
func (r *Registry) MustRegister(kinds ...Kind) {
	for _, kind := range kinds {
		if err := r.Register(kind); err != nil {
			panic(fmt.Sprintf("register source kind: %v", err))
		}
	}
}

// Seal stops further registration
func (r *Registry) Seal() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.sealed = true
}

func (r *Registry) Get(key string) (Kind, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	kind, exists := r.kinds[key]
	return kind, exists
}

func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.order)
}

// All returns every kind in registration order
func (r *Registry) All() []Kind {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Kind, 0, len(r.order))
	for _, key := range r.order {
		out = append(out, r.kinds[key])
	}
	return out
}

func (r *Registry) Bonuses() []Bonus            { return ofType[Bonus](r, BaseTypeBonus) }
func (r *Registry) Targets() []Target           { return ofType[Target](r, BaseTypeTarget) }
func (r *Registry) Overrides() []TargetOverride { return ofType[TargetOverride](r, BaseTypeTargetOverride) }
func (r *Registry) Specifics() []Specific       { return ofType[Specific](r, BaseTypeSpecific) }
func (r *Registry) Globals() []Global           { return ofType[Global](r, BaseTypeGlobal) }

// Implementing returns every kind that implements T, such as one of the hooks
func Implementing[T any](r *Registry) []T {
	var out []T
	for _, kind := range r.All() {
		if t, ok := kind.(T); ok {
			out = append(out, t)
		}
	}
	return out
}

func ofType[T Kind](r *Registry, base BaseType) []T {
	var out []T
	for _, kind := range r.All() {
		if kind.Meta().Base != base {
			continue
		}
		if t, ok := kind.(T); ok {
			out = append(out, t)
		}
	}
	return out
}

func checkBaseType(kind Kind) error {
	var ok bool
	switch kind.Meta().Base {
	case BaseTypeBonus:
		_, ok = kind.(Bonus)
	case BaseTypeTarget:
		_, ok = kind.(Target)
	case BaseTypeTargetOverride:
		_, ok = kind.(TargetOverride)
	case BaseTypeSpecific:
		_, ok = kind.(Specific)
	case BaseTypeGlobal:
		_, ok = kind.(Global)
	}
	if !ok {
		return errors.InvalidArgumentf("kind %q does not implement %s", kind.Key(), kind.Meta().Base).
			WithMeta("key", kind.Key())
	}
	return nil
}

// ListOption filters AllOfBaseType
type ListOption func(*listOptions)

type listOptions struct {
	hideGMOnly  bool
	conditional *bool
}

// ForViewer hides GM-only kinds unless the viewer is a GM
func ForViewer(isGM bool) ListOption {
	return func(o *listOptions) {
		o.hideGMOnly = !isGM
	}
}

// Conditional keeps only conditional kinds, or only unconditional ones
func Conditional(conditional bool) ListOption {
	return func(o *listOptions) {
		o.conditional = &conditional
	}
}

// AllOfBaseType yields the kinds of base sorted by localised label. The
// registry is read each time the sequence is ranged over.
func (r *Registry) AllOfBaseType(base BaseType, loc i18n.Localizer, opts ...ListOption) iter.Seq[Kind] {
	var o listOptions
	for _, opt := range opts {
		opt(&o)
	}

	return func(yield func(Kind) bool) {
		type labelled struct {
			kind  Kind
			label string
		}

		var matched []labelled
		for _, kind := range r.All() {
			meta := kind.Meta()
			if meta.Base != base {
				continue
			}
			if o.hideGMOnly && meta.GMOnly {
				continue
			}
			if o.conditional != nil && meta.Conditional != *o.conditional {
				continue
			}
			matched = append(matched, labelled{kind: kind, label: meta.Label(loc)})
		}

		slices.SortStableFunc(matched, func(a, b labelled) int {
			return loc.Compare(a.label, b.label)
		})

		for _, m := range matched {
			if !yield(m.kind) {
				return
			}
		}
	}
}
