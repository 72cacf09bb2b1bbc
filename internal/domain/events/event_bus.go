package events

import (
	"slices"
	"sync"

	"go.uber.org/zap"

	"github.com/KirkDiggler/roll-bonuses/internal/errors"
)

// EventBus dispatches host notifications to the engine's listeners. Each
// event type keeps its listeners ordered by priority, lowest first; equal
// priorities run in subscription order.
type EventBus struct {
	mu        sync.RWMutex
	listeners map[EventType][]EventListener
	log       *zap.Logger
}

var _ Bus = (*EventBus)(nil)

// BusOption configures an EventBus
type BusOption func(*EventBus)

// WithLogger makes the bus log listener failures at debug level
func WithLogger(log *zap.Logger) BusOption {
	return func(eb *EventBus) {
		if log != nil {
			eb.log = log
		}
	}
}

func NewEventBus(opts ...BusOption) *EventBus {
	eb := &EventBus{
		listeners: make(map[EventType][]EventListener),
		log:       zap.NewNop(),
	}
	for _, opt := range opts {
		opt(eb)
	}
	return eb
}

// Subscribe inserts listener after every listener of the same or lower priority
func (eb *EventBus) Subscribe(eventType EventType, listener EventListener) {
	eb.mu.Lock()
	defer eb.mu.Unlock()

	current := eb.listeners[eventType]
	at := slices.IndexFunc(current, func(l EventListener) bool {
		return l.Priority() > listener.Priority()
	})
	if at < 0 {
		at = len(current)
	}
	eb.listeners[eventType] = slices.Insert(current, at, listener)
}

// Unsubscribe removes the first subscription of listener
func (eb *EventBus) Unsubscribe(eventType EventType, listener EventListener) {
	eb.mu.Lock()
	defer eb.mu.Unlock()

	current := eb.listeners[eventType]
	if i := slices.Index(current, listener); i >= 0 {
		eb.listeners[eventType] = slices.Delete(current, i, i+1)
	}
}

// Emit runs the listeners of event.Type in order. The first error stops the
// dispatch, as does a listener cancelling the event.
func (eb *EventBus) Emit(event *GameEvent) error {
	if event == nil {
		return errors.InvalidArgument("cannot emit nil event")
	}

	eb.mu.RLock()
	listeners := slices.Clone(eb.listeners[event.Type])
	eb.mu.RUnlock()

	for _, listener := range listeners {
		if err := listener.HandleEvent(event); err != nil {
			eb.log.Debug("listener failed",
				zap.String("event", event.Type.String()),
				zap.Int("priority", listener.Priority()),
				zap.Error(err))
			return errors.Wrapf(err, "error handling event %s", event.Type).
				WithMeta("event", event.Type.String())
		}
		if event.Cancelled {
			break
		}
	}
	return nil
}

func (eb *EventBus) Clear() {
	eb.mu.Lock()
	defer eb.mu.Unlock()

	clear(eb.listeners)
}

func (eb *EventBus) ListenerCount(eventType EventType) int {
	eb.mu.RLock()
	defer eb.mu.RUnlock()

	return len(eb.listeners[eventType])
}

// TotalListenerCount counts subscriptions across every event type
func (eb *EventBus) TotalListenerCount() int {
	eb.mu.RLock()
	defer eb.mu.RUnlock()

	total := 0
	for _, l := range eb.listeners {
		total += len(l)
	}
	return total
}
