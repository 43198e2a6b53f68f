package state

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/thenoetrevino/applyboard/internal/models"
	"github.com/thenoetrevino/applyboard/internal/notify"
)

func TestUIState_MoveColumnResetsCard(t *testing.T) {
	s := NewUIState()
	s.MoveCard(2, 5)
	s.MoveColumn(1, 6)

	assert.Equal(t, 1, s.SelectedColumn())
	assert.Equal(t, 0, s.SelectedCard())

	s.MoveColumn(10, 6)
	assert.Equal(t, 5, s.SelectedColumn())
	s.MoveColumn(-10, 6)
	assert.Equal(t, 0, s.SelectedColumn())
}

func TestUIState_ClampCard(t *testing.T) {
	s := NewUIState()
	s.MoveCard(4, 5)
	s.ClampCard(2)
	assert.Equal(t, 1, s.SelectedCard())
	s.ClampCard(0)
	assert.Equal(t, 0, s.SelectedCard())
}

func TestNotificationState_LimitDropsOldest(t *testing.T) {
	s := NewNotificationState(2)
	s.Add(notify.Notification{Title: "a"})
	s.Add(notify.Notification{Title: "b"})
	id := s.Add(notify.Notification{Title: "c"})

	all := s.All()
	assert.Len(t, all, 2)
	assert.Equal(t, "b", all[0].Title)

	s.Dismiss(id)
	assert.Len(t, s.All(), 1)
	s.Dismiss(999)
	assert.Len(t, s.All(), 1)
}

func TestNotificationState_GetLayers(t *testing.T) {
	s := NewNotificationState(3)
	assert.Empty(t, s.GetLayers(0, 0, func(Toast) string { return "x" }))

	s.Add(notify.Notification{Title: "a"})
	s.Add(notify.Notification{Title: "b"})
	layers := s.GetLayers(80, 24, func(t Toast) string { return t.Title })
	assert.Len(t, layers, 2)
}

func TestFormState_Draft(t *testing.T) {
	f := NewFormState()
	f.OpenAdd(models.StatusInterview)
	f.SetValue(FieldName, "Acme")
	f.SetValue(FieldPosition, "SRE")
	f.SetValue(FieldDeadline, " 2026-01-02 ")

	d := f.Draft()
	assert.Equal(t, "Acme", d.Name)
	assert.Equal(t, "SRE", d.Position)
	assert.Equal(t, models.StatusInterview, d.Status)
	assert.Equal(t, "2026-01-02", d.Deadline)

	f.OpenAdd(models.StatusPending)
	assert.Empty(t, f.Draft().Name, "reopening clears the form")
	assert.Len(t, f.Fields(), 4)
}

func TestFormState_CycleWraps(t *testing.T) {
	f := NewFormState()
	f.OpenAdd(models.StatusPending)
	f.Cycle(-1)
	assert.Equal(t, FieldLink, f.Focus())
	f.Cycle(1)
	assert.Equal(t, FieldName, f.Focus())
}
