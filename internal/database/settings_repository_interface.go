package database

import (
	"context"

	"github.com/thenoetrevino/applyboard/internal/models"
)

// SettingsRepository stores one preferences record per user.
type SettingsRepository interface {
	GetSettings(ctx context.Context, userID string) (*models.UserSettings, error)
	UpsertSettings(ctx context.Context, userID string, settings *models.UserSettings) error
}
