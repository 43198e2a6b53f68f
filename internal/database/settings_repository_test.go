package database

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/applyboard/internal/models"
)

func TestSettingsRepo_MissingIsNotFound(t *testing.T) {
	t.Parallel()
	repo := NewRepository(setupTestDB(t))

	_, err := repo.GetSettings(context.Background(), "user-1")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSettingsRepo_UpsertRoundTrip(t *testing.T) {
	t.Parallel()
	repo := NewRepository(setupTestDB(t))
	ctx := context.Background()

	s := models.DefaultUserSettings()
	s.Notifications.InterviewReminders = false
	s.ColumnTitles[models.StatusInterview] = "Onsite"
	require.NoError(t, repo.UpsertSettings(ctx, "user-1", s))

	got, err := repo.GetSettings(ctx, "user-1")
	require.NoError(t, err)
	assert.False(t, got.Notifications.InterviewReminders)
	assert.True(t, got.Notifications.EmailNotifications)
	assert.Equal(t, "Onsite", got.ColumnTitles[models.StatusInterview])

	s.Preferences.CompactView = true
	s.ColumnTitles = nil
	require.NoError(t, repo.UpsertSettings(ctx, "user-1", s))

	got, err = repo.GetSettings(ctx, "user-1")
	require.NoError(t, err)
	assert.True(t, got.Preferences.CompactView)
	assert.NotNil(t, got.ColumnTitles)
	assert.Empty(t, got.ColumnTitles)

	_, err = repo.GetSettings(ctx, "user-2")
	assert.ErrorIs(t, err, ErrNotFound, "settings are per user")
}
