package events

import (
	"errors"
	"log/slog"
	"sync"
	"time"
)

// ErrBrokerClosed is returned by SendEvent after Close.
var ErrBrokerClosed = errors.New("event broker is closed")

// Broker fans events out to in-process subscribers. A subscriber whose
// buffer is full misses the event; subscribers only use events as a
// signal to refetch, so a dropped duplicate is harmless.
type Broker struct {
	mu          sync.Mutex
	subscribers map[int]chan Event
	nextID      int
	sequence    int64
	closed      bool
}

// NewBroker creates an empty broker.
func NewBroker() *Broker {
	return &Broker{subscribers: make(map[int]chan Event)}
}

// SendEvent stamps the event and delivers it to every subscriber without blocking.
func (b *Broker) SendEvent(event Event) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return ErrBrokerClosed
	}

	b.sequence++
	event.SequenceID = b.sequence
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}

	for id, ch := range b.subscribers {
		select {
		case ch <- event:
		default:
			slog.Debug("dropping event for slow subscriber",
				"subscriber", id,
				"event_type", event.Type,
				"sequence", event.SequenceID)
		}
	}
	return nil
}

// Subscribe returns a channel of events and a cancel func that
// unsubscribes and closes the channel.
func (b *Broker) Subscribe(buffer int) (<-chan Event, func()) {
	if buffer <= 0 {
		buffer = 16
	}
	ch := make(chan Event, buffer)

	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		close(ch)
		return ch, func() {}
	}
	id := b.nextID
	b.nextID++
	b.subscribers[id] = ch
	b.mu.Unlock()

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			b.mu.Lock()
			defer b.mu.Unlock()
			if sub, ok := b.subscribers[id]; ok {
				delete(b.subscribers, id)
				close(sub)
			}
		})
	}
}

// Close closes every subscriber channel. Later sends fail with ErrBrokerClosed.
func (b *Broker) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return nil
	}
	b.closed = true
	for id, ch := range b.subscribers {
		delete(b.subscribers, id)
		close(ch)
	}
	return nil
}
