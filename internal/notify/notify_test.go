package notify

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRecorder(t *testing.T) {
	r := &Recorder{}
	_, ok := r.Last()
	assert.False(t, ok)

	r.Notify(Notification{Level: LevelInfo, Title: "Saved"})
	r.Notify(Notification{Level: LevelError, Title: "Failed", Message: "boom"})

	last, ok := r.Last()
	assert.True(t, ok)
	assert.Equal(t, "Failed", last.Title)
	assert.Len(t, r.All(), 2)

	drained := r.Drain()
	assert.Len(t, drained, 2)
	assert.Empty(t, r.All())
}

func TestFunc(t *testing.T) {
	var got []string
	n := Func(func(n Notification) { got = append(got, n.Title) })
	n.Notify(Notification{Title: "one"})
	assert.Equal(t, []string{"one"}, got)

	// nil func and Discard are safe
	Func(nil).Notify(Notification{})
	Discard.Notify(Notification{})
}

func TestLevelString(t *testing.T) {
	assert.Equal(t, "info", LevelInfo.String())
	assert.Equal(t, "error", LevelError.String())
}
