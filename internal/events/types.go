package events

import "time"

// EventType indicates what kind of change occurred
type EventType string

const (
	EventCompaniesChanged EventType = "companies_changed"
	EventSettingsChanged  EventType = "settings_changed"
)

// Event represents a committed change to one user's data
type Event struct {
	Type       EventType
	UserID     string    // Whose data changed
	CompanyID  string    // Empty for settings and bulk changes
	Timestamp  time.Time // When the event occurred
	SequenceID int64     // Monotonically increasing sequence number for ordering
}
