// Package testutil holds fixtures shared by package tests.
package testutil

import (
	"context"
	"database/sql"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/thenoetrevino/applyboard/internal/database"
	"github.com/thenoetrevino/applyboard/internal/models"
	_ "modernc.org/sqlite"
)

// SetupTestDB creates a throwaway database with the real schema
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()
	path := filepath.Join(t.TempDir(), "applyboard.db")

	db, err := database.InitDB(context.Background(), path)
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

// CreateTestCompany inserts a company owned by userID and returns its ID
func CreateTestCompany(t *testing.T, db *sql.DB, userID, name string, status models.Status) string {
	t.Helper()
	c := &models.Company{Name: name, Position: "Engineer", Status: status}
	if err := database.NewRepository(db).CreateCompany(context.Background(), userID, c); err != nil {
		t.Fatalf("Failed to create test company: %v", err)
	}
	return c.ID
}

// Clock is a manually advanced time source.
type Clock struct {
	mu  sync.Mutex
	now time.Time
}

// NewClock starts a clock at a fixed instant.
func NewClock() *Clock {
	return &Clock{now: time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)}
}

// Now returns the current fake time.
func (c *Clock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

// Advance moves the clock forward.
func (c *Clock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}
