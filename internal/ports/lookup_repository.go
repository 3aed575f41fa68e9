package ports

import (
	"context"
	"distance-matrix-service/internal/domain"
)

// Port: a boundary for persisting and retrieving lookup history.
type LookupRepository interface {
	// Store one completed lookup. Implementations assign the ID.
	Record(ctx context.Context, lookup *domain.Lookup) error
	// Retrieve recorded lookups, most recent first.
	List(ctx context.Context) ([]*domain.Lookup, error)
}
