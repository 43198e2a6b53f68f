package models

// NotificationSettings controls which reminders a user receives.
type NotificationSettings struct {
	EmailNotifications   bool `json:"emailNotifications"`
	InterviewReminders   bool `json:"interviewReminders"`
	ApplicationDeadlines bool `json:"applicationDeadlines"`
}

// UserPreferences holds presentation preferences.
type UserPreferences struct {
	CompactView bool `json:"compactView"`
}

// UserSettings is the per-user preferences record, including the
// persisted column titles of the board.
type UserSettings struct {
	Notifications NotificationSettings `json:"notifications"`
	Preferences   UserPreferences      `json:"preferences"`
	ColumnTitles  map[Status]string    `json:"columnTitles,omitempty"`
}

// DefaultUserSettings returns the settings used when a user has none stored.
func DefaultUserSettings() *UserSettings {
	return &UserSettings{
		Notifications: NotificationSettings{
			EmailNotifications:   true,
			InterviewReminders:   true,
			ApplicationDeadlines: true,
		},
		Preferences:  UserPreferences{CompactView: false},
		ColumnTitles: map[Status]string{},
	}
}
