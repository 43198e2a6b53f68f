package database

import (
	"context"
	"database/sql"
	"fmt"
)

var schema = []string{
	`CREATE TABLE IF NOT EXISTS companies (
		id TEXT PRIMARY KEY,
		user_id TEXT NOT NULL,
		name TEXT NOT NULL,
		position TEXT NOT NULL,
		position_type TEXT NOT NULL DEFAULT '',
		status TEXT NOT NULL DEFAULT 'pending'
			CHECK (status IN ('pending', 'applied', 'aptitude', 'interview', 'passed', 'rejected')),
		deadline TEXT NOT NULL DEFAULT '',
		description TEXT NOT NULL DEFAULT '',
		application_link TEXT NOT NULL DEFAULT '',
		cover_letter TEXT NOT NULL DEFAULT '',
		created_at TEXT NOT NULL,
		updated_at TEXT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_companies_user_created
		ON companies(user_id, created_at DESC)`,
	`CREATE TABLE IF NOT EXISTS cover_letter_sections (
		id TEXT PRIMARY KEY,
		company_id TEXT NOT NULL,
		title TEXT NOT NULL DEFAULT '',
		content TEXT NOT NULL DEFAULT '',
		max_length INTEGER,
		sort_order INTEGER NOT NULL,
		FOREIGN KEY (company_id) REFERENCES companies(id) ON DELETE CASCADE
	)`,
	`CREATE INDEX IF NOT EXISTS idx_sections_company
		ON cover_letter_sections(company_id, sort_order)`,
	`CREATE TABLE IF NOT EXISTS user_settings (
		user_id TEXT PRIMARY KEY,
		email_notifications BOOLEAN NOT NULL DEFAULT 1,
		interview_reminders BOOLEAN NOT NULL DEFAULT 1,
		application_deadlines BOOLEAN NOT NULL DEFAULT 1,
		compact_view BOOLEAN NOT NULL DEFAULT 0,
		column_titles TEXT NOT NULL DEFAULT '{}',
		updated_at TEXT NOT NULL
	)`,
}

// runMigrations creates the schema. Every statement is idempotent.
func runMigrations(ctx context.Context, db *sql.DB) error {
	for _, stmt := range schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migration failed: %w", err)
		}
	}
	return nil
}
