package state

import (
	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/applyboard/internal/notify"
)

// Toast is a notification on screen. ID lets its timer remove exactly it.
type Toast struct {
	ID int
	notify.Notification
}

// NotificationState manages notification display state.
type NotificationState struct {
	toasts []Toast
	nextID int
	limit  int
}

// NewNotificationState keeps at most limit toasts, dropping the oldest.
func NewNotificationState(limit int) *NotificationState {
	if limit <= 0 {
		limit = 3
	}
	return &NotificationState{limit: limit}
}

// Add shows a notification and returns its ID.
func (s *NotificationState) Add(n notify.Notification) int {
	s.nextID++
	s.toasts = append(s.toasts, Toast{ID: s.nextID, Notification: n})
	if len(s.toasts) > s.limit {
		s.toasts = s.toasts[len(s.toasts)-s.limit:]
	}
	return s.nextID
}

// Dismiss removes the toast with id, if still shown.
func (s *NotificationState) Dismiss(id int) {
	kept := s.toasts[:0]
	for _, t := range s.toasts {
		if t.ID != id {
			kept = append(kept, t)
		}
	}
	s.toasts = kept
}

// All returns all current toasts, oldest first.
func (s *NotificationState) All() []Toast {
	return s.toasts
}

// HasAny returns true if there are any notifications.
func (s *NotificationState) HasAny() bool {
	return len(s.toasts) > 0
}

// GetLayers creates floating layers for all active notifications.
// Notifications are stacked vertically in the top-right corner of the screen.
func (s *NotificationState) GetLayers(width, height int, renderFunc func(Toast) string) []*lipgloss.Layer {
	layers := []*lipgloss.Layer{}
	if width == 0 {
		return layers
	}

	row := 0
	for i, toast := range s.toasts {
		view := renderFunc(toast)
		w := lipgloss.Width(view)
		h := lipgloss.Height(view)

		col := max(width-w-1, 0)
		if row+h >= height {
			break
		}

		layers = append(layers, lipgloss.NewLayer(view).X(col).Y(row).Z(i+1))
		row += h + 1
	}
	return layers
}
