package database

import (
	"database/sql"
	"time"
)

// Repository provides a unified interface to all data operations.
// It composes domain-specific repositories using struct embedding.
type Repository struct {
	*CompanyRepo
	*SettingsRepo
}

var _ DataStore = (*Repository)(nil)

// NewRepository creates a new Repository instance wrapping the given database connection.
func NewRepository(db *sql.DB) *Repository {
	return NewRepositoryWithClock(db, time.Now)
}

// NewRepositoryWithClock is NewRepository with a fixed time source for
// created_at and updated_at.
func NewRepositoryWithClock(db *sql.DB, now func() time.Time) *Repository {
	return &Repository{
		CompanyRepo:  &CompanyRepo{db: db, now: now},
		SettingsRepo: &SettingsRepo{db: db, now: now},
	}
}
