package events

// EventPublisher defines the interface for sending change events.
// Services depend on this so tests can record or drop events.
type EventPublisher interface {
	// SendEvent publishes an event. It must not block on slow subscribers.
	SendEvent(event Event) error
}

// Compile-time verification that *Broker implements EventPublisher
var _ EventPublisher = (*Broker)(nil)
