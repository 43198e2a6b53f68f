package database

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/applyboard/internal/models"
)

func TestPersistence_CompaniesSurviveRestart(t *testing.T) {
	t.Parallel()
	db, path := setupTestDBFile(t)
	ctx := context.Background()

	c := newTestCompany("Acme Corp", models.StatusPending)
	c.CoverLetterSections = []models.CoverLetterSection{{Title: "Why", Content: "Because"}}
	require.NoError(t, NewRepository(db).CreateCompany(ctx, "user-1", c))
	require.NoError(t, NewRepository(db).UpsertSettings(ctx, "user-1", &models.UserSettings{
		ColumnTitles: map[models.Status]string{models.StatusPassed: "Offers"},
	}))

	db = closeAndReopenDB(t, db, path)
	repo := NewRepository(db)

	list, err := repo.ListCompanies(ctx, "user-1")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, c.ID, list[0].ID)
	assert.Equal(t, c.CreatedAt, list[0].CreatedAt)
	require.Len(t, list[0].CoverLetterSections, 1)

	settings, err := repo.GetSettings(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, "Offers", settings.ColumnTitles[models.StatusPassed])
}

func TestPersistence_MigrationsAreIdempotent(t *testing.T) {
	t.Parallel()
	db := setupTestDB(t)

	require.NoError(t, runMigrations(context.Background(), db))
	require.NoError(t, runMigrations(context.Background(), db))
}
