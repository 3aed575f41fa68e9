package repositories

import (
	"context"
	"database/sql"
	"distance-matrix-service/internal/domain"
	"errors"
	"fmt"
	"strings"
	"time"
)

// SQLite backed store for lookup history.
// Timestamps are persisted as RFC 3339 text because SQLite has no native
// timestamp type.
type SqliteLookupRepository struct {
	DB *sql.DB
}

func NewSqliteLookupRepository(db *sql.DB) *SqliteLookupRepository {
	return &SqliteLookupRepository{DB: db}
}

// Store one completed lookup and assign its ID.
func (s *SqliteLookupRepository) Record(ctx context.Context, lookup *domain.Lookup) error {
	if s.DB == nil {
		return errors.New("lookup repository: db is nil")
	}

	if lookup == nil {
		return errors.New("record lookup: lookup must be non-nil")
	}

	if strings.TrimSpace(lookup.Origin) == "" || strings.TrimSpace(lookup.Destination) == "" {
		return errors.New("record lookup: origin and destination must be non-empty")
	}

	q := `
	INSERT INTO lookups (origin, destination, status, item_count, requested_at)
    VALUES (?, ?, ?, ?, ?);
	`

	res, err := s.DB.ExecContext(
		ctx, q,
		lookup.Origin,
		lookup.Destination,
		lookup.Status,
		lookup.ItemCount,
		lookup.RequestedAt.UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("record lookup: insert lookups table: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("record lookup: last insert id: %w", err)
	}
	lookup.ID = int(id)

	return nil
}

// Retrieve recorded lookups, most recent first.
func (s *SqliteLookupRepository) List(ctx context.Context) ([]*domain.Lookup, error) {
	if s.DB == nil {
		return nil, errors.New("lookup repository: db is nil")
	}

	q := `
	SELECT lookup_id, origin, destination, status, item_count, requested_at
    FROM lookups
    ORDER BY lookup_id DESC;
	`

	rows, err := s.DB.QueryContext(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("list lookups: query lookups table: %w", err)
	}
	defer rows.Close()

	out := []*domain.Lookup{}
	for rows.Next() {
		var l domain.Lookup
		var requestedAt string
		if err := rows.Scan(&l.ID, &l.Origin, &l.Destination, &l.Status, &l.ItemCount, &requestedAt); err != nil {
			return nil, fmt.Errorf("list lookups: scan rows: %w", err)
		}

		ts, err := time.Parse(time.RFC3339Nano, requestedAt)
		if err != nil {
			return nil, fmt.Errorf("list lookups: parse requested_at %q: %w", requestedAt, err)
		}
		l.RequestedAt = ts

		out = append(out, &l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list lookups: row iteration: %w", err)
	}

	return out, nil
}
