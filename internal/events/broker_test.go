package events

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBroker_DeliversToAllSubscribers(t *testing.T) {
	b := NewBroker()
	defer b.Close()

	a, cancelA := b.Subscribe(4)
	defer cancelA()
	c, cancelC := b.Subscribe(4)
	defer cancelC()

	require.NoError(t, b.SendEvent(Event{Type: EventCompaniesChanged, UserID: "u1"}))

	for _, ch := range []<-chan Event{a, c} {
		ev := <-ch
		assert.Equal(t, EventCompaniesChanged, ev.Type)
		assert.Equal(t, "u1", ev.UserID)
		assert.Equal(t, int64(1), ev.SequenceID)
		assert.False(t, ev.Timestamp.IsZero())
	}
}

func TestBroker_SequenceIsMonotonic(t *testing.T) {
	b := NewBroker()
	ch, cancel := b.Subscribe(8)
	defer cancel()

	for i := 0; i < 3; i++ {
		require.NoError(t, b.SendEvent(Event{Type: EventCompaniesChanged}))
	}
	var last int64
	for i := 0; i < 3; i++ {
		ev := <-ch
		assert.Greater(t, ev.SequenceID, last)
		last = ev.SequenceID
	}
}

func TestBroker_SlowSubscriberDoesNotBlock(t *testing.T) {
	b := NewBroker()
	ch, cancel := b.Subscribe(1)
	defer cancel()

	require.NoError(t, b.SendEvent(Event{Type: EventCompaniesChanged}))
	require.NoError(t, b.SendEvent(Event{Type: EventCompaniesChanged}))

	assert.Len(t, ch, 1)
}

func TestBroker_CancelClosesChannel(t *testing.T) {
	b := NewBroker()
	ch, cancel := b.Subscribe(1)
	cancel()
	cancel() // second call is a no-op

	_, ok := <-ch
	assert.False(t, ok)
	require.NoError(t, b.SendEvent(Event{Type: EventCompaniesChanged}))
}

func TestBroker_Close(t *testing.T) {
	b := NewBroker()
	ch, cancel := b.Subscribe(1)
	defer cancel()

	require.NoError(t, b.Close())
	_, ok := <-ch
	assert.False(t, ok)

	assert.ErrorIs(t, b.SendEvent(Event{Type: EventCompaniesChanged}), ErrBrokerClosed)

	late, _ := b.Subscribe(1)
	_, ok = <-late
	assert.False(t, ok, "subscribing after close yields a closed channel")
}
