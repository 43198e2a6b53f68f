package database

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/thenoetrevino/applyboard/internal/models"
)

// SettingsRepo handles the user_settings table.
type SettingsRepo struct {
	db  *sql.DB
	now func() time.Time
}

// GetSettings returns ErrNotFound when the user has never saved settings.
func (r *SettingsRepo) GetSettings(ctx context.Context, userID string) (*models.UserSettings, error) {
	var (
		s      models.UserSettings
		titles string
	)
	err := r.db.QueryRowContext(ctx,
		`SELECT email_notifications, interview_reminders, application_deadlines,
			compact_view, column_titles
		FROM user_settings WHERE user_id = ?`,
		userID,
	).Scan(
		&s.Notifications.EmailNotifications,
		&s.Notifications.InterviewReminders,
		&s.Notifications.ApplicationDeadlines,
		&s.Preferences.CompactView,
		&titles,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get settings for user %s: %w", userID, err)
	}

	s.ColumnTitles = map[models.Status]string{}
	if titles != "" {
		if err := json.Unmarshal([]byte(titles), &s.ColumnTitles); err != nil {
			return nil, fmt.Errorf("failed to decode column titles for user %s: %w", userID, err)
		}
	}
	return &s, nil
}

// UpsertSettings replaces the user's settings record.
func (r *SettingsRepo) UpsertSettings(ctx context.Context, userID string, settings *models.UserSettings) error {
	titles := settings.ColumnTitles
	if titles == nil {
		titles = map[models.Status]string{}
	}
	encoded, err := json.Marshal(titles)
	if err != nil {
		return fmt.Errorf("failed to encode column titles: %w", err)
	}

	now := time.Now()
	if r.now != nil {
		now = r.now()
	}

	_, err = r.db.ExecContext(ctx,
		`INSERT INTO user_settings (
			user_id, email_notifications, interview_reminders, application_deadlines,
			compact_view, column_titles, updated_at
		) VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(user_id) DO UPDATE SET
			email_notifications = excluded.email_notifications,
			interview_reminders = excluded.interview_reminders,
			application_deadlines = excluded.application_deadlines,
			compact_view = excluded.compact_view,
			column_titles = excluded.column_titles,
			updated_at = excluded.updated_at`,
		userID,
		settings.Notifications.EmailNotifications,
		settings.Notifications.InterviewReminders,
		settings.Notifications.ApplicationDeadlines,
		settings.Preferences.CompactView,
		string(encoded),
		formatTime(now),
	)
	if err != nil {
		return fmt.Errorf("failed to save settings for user %s: %w", userID, err)
	}
	return nil
}
