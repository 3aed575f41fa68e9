package repositories

import (
	"context"
	"database/sql"
	"distance-matrix-service/internal/domain"
	"distance-matrix-service/internal/platform/obs"
	"errors"
	"fmt"
	"strings"
)

// SQLLookupRepository is a Postgres-backed store for lookup history.
type SQLLookupRepository struct {
	DB *sql.DB
}

func NewSQLLookupRepository(db *sql.DB) *SQLLookupRepository {
	return &SQLLookupRepository{DB: db}
}

// Store one completed lookup and assign its ID.
func (s *SQLLookupRepository) Record(ctx context.Context, lookup *domain.Lookup) (err error) {
	defer obs.Time(ctx, "lookups.repo.Record")(&err)

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
    VALUES ($1, $2, $3, $4, $5)
	RETURNING lookup_id;
	`

	row := s.DB.QueryRowContext(
		ctx, q,
		lookup.Origin,
		lookup.Destination,
		lookup.Status,
		lookup.ItemCount,
		lookup.RequestedAt.UTC(),
	)
	if err := row.Scan(&lookup.ID); err != nil {
		return fmt.Errorf("record lookup: insert lookups table: %w", err)
	}

	return nil
}

// Retrieve recorded lookups, most recent first.
func (s *SQLLookupRepository) List(ctx context.Context) (_ []*domain.Lookup, err error) {
	defer obs.Time(ctx, "lookups.repo.List")(&err)

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
		if err := rows.Scan(&l.ID, &l.Origin, &l.Destination, &l.Status, &l.ItemCount, &l.RequestedAt); err != nil {
			return nil, fmt.Errorf("list lookups: scan rows: %w", err)
		}
		out = append(out, &l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list lookups: row iteration: %w", err)
	}

	return out, nil
}
