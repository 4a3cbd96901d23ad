package database

import (
	"context"
	"database/sql"
)

// runMigrations creates the schema if it does not exist yet.
// Names and descriptions compare case-insensitively.
func runMigrations(ctx context.Context, db *sql.DB) error {
	// Create projects table
	_, err := db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS projects (
			name TEXT NOT NULL COLLATE NOCASE PRIMARY KEY,
			description TEXT COLLATE NOCASE,
			status INTEGER NOT NULL DEFAULT 0
		)
	`)
	if err != nil {
		return err
	}

	// Create tasks table
	_, err = db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS tasks (
			project_name TEXT NOT NULL COLLATE NOCASE,
			task_name TEXT NOT NULL COLLATE NOCASE,
			description TEXT COLLATE NOCASE,
			status INTEGER NOT NULL DEFAULT 0,
			deadline INTEGER,
			progress REAL NOT NULL DEFAULT 0,
			UNIQUE (project_name, task_name),
			FOREIGN KEY (project_name) REFERENCES projects(name) ON DELETE CASCADE
		)
	`)
	return err
}
