package events

import "github.com/KirkDiggler/roll-bonuses/internal/domain/entity"

// GameEvent is one host notification. Context carries the payload, see the
// Context* keys.
type GameEvent struct {
	Type      EventType
	Actor     *entity.Actor
	Item      *entity.Item
	Context   map[string]any
	Cancelled bool
}

func NewGameEvent(eventType EventType) *GameEvent {
	return &GameEvent{
		Type:    eventType,
		Context: make(map[string]any),
	}
}

// WithActor sets the actor for the event
func (e *GameEvent) WithActor(actor *entity.Actor) *GameEvent {
	e.Actor = actor
	return e
}

// WithItem sets the item for the event; the actor defaults to the item's owner
func (e *GameEvent) WithItem(item *entity.Item) *GameEvent {
	e.Item = item
	if e.Actor == nil && item != nil {
		e.Actor = item.Actor
	}
	return e
}

// WithContext sets one payload entry
func (e *GameEvent) WithContext(key string, value any) *GameEvent {
	e.Context[key] = value
	return e
}

// Cancel stops listeners after the current one from running
func (e *GameEvent) Cancel() {
	e.Cancelled = true
}

func (e *GameEvent) IsCancelled() bool {
	return e.Cancelled
}

func (e *GameEvent) GetContext(key string) (any, bool) {
	v, ok := e.Context[key]
	return v, ok
}

// GetBoolContext reads a bool payload; a value of another type reports false
func (e *GameEvent) GetBoolContext(key string) (value, exists bool) {
	return Value[bool](e, key)
}

func (e *GameEvent) GetStringContext(key string) (string, bool) {
	return Value[string](e, key)
}

// Value reads a typed payload from the event context
func Value[T any](e *GameEvent, key string) (T, bool) {
	typed, ok := e.Context[key].(T)
	return typed, ok
}
