package repositories

import (
	"database/sql"
	"errors"
	"fmt"
)

// Initialize the SQLite lookup history schema.
func InitSqliteSchema(db *sql.DB) error {
	if db == nil {
		return errors.New("init schema: DB is nil")
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("init schema: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	createLookupsQuery := `
	CREATE TABLE IF NOT EXISTS lookups (
		lookup_id INTEGER PRIMARY KEY AUTOINCREMENT,
		origin TEXT NOT NULL,
		destination TEXT NOT NULL,
		status TEXT NOT NULL,
		item_count INTEGER NOT NULL,
		requested_at TEXT NOT NULL
	);
	`

	createIndexQuery := `
	CREATE INDEX IF NOT EXISTS idx_lookups_origin_destination
    ON lookups(origin, destination);
	`

	statements := []string{
		createLookupsQuery,
		createIndexQuery,
	}

	for i, stmt := range statements {
		if _, err := tx.Exec(stmt); err != nil {
			return fmt.Errorf("init schema: exec statement #%d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("init schema: commit: %w", err)
	}

	return nil
}
