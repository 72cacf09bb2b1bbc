package events

//go:generate mockgen -destination=mock/mock_bus.go -package=mockevents -source=interface.go

// Bus is the interface for event bus implementations
type Bus interface {
	// Subscribe adds a listener for a specific event type
	Subscribe(eventType EventType, listener EventListener)

	// Unsubscribe removes a listener for a specific event type
	Unsubscribe(eventType EventType, listener EventListener)

	// Emit sends an event to all registered listeners
	Emit(event *GameEvent) error

	// Clear removes all listeners
	Clear()

	// ListenerCount returns the number of listeners for an event type
	ListenerCount(eventType EventType) int
}

// EventListener handles events in priority order, lowest first
type EventListener interface {
	HandleEvent(event *GameEvent) error
	Priority() int
}

// ListenerFunc adapts a function to EventListener
type ListenerFunc struct {
	priority int
	fn       func(event *GameEvent) error
}

// NewListenerFunc wraps fn with the given priority
func NewListenerFunc(priority int, fn func(event *GameEvent) error) *ListenerFunc {
	return &ListenerFunc{priority: priority, fn: fn}
}

func (l *ListenerFunc) HandleEvent(event *GameEvent) error {
	return l.fn(event)
}

func (l *ListenerFunc) Priority() int {
	return l.priority
}
