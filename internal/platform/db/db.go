package db

import (
	"database/sql"
	"fmt"
	"time"
)

// Open a Postgres connection pool through the pgx stdlib driver.
// Pool limits are conservative: the service issues a single short write or
// read per HTTP request.
func Open(databaseURL string) (*sql.DB, error) {
	pool, err := sql.Open("pgx", databaseURL)
	if err != nil {
		return nil, fmt.Errorf("openDB: open postgres database: %w", err)
	}

	pool.SetMaxOpenConns(10)
	pool.SetMaxIdleConns(10)
	pool.SetConnMaxLifetime(30 * time.Minute)

	if err := pool.Ping(); err != nil {
		return nil, fmt.Errorf("openDB: verify postgres connection: %w", err)
	}

	return pool, nil
}
