package ports

import (
	"context"
	"distance-matrix-service/internal/domain"
)

// Contract for running a single origin/destination distance matrix lookup.
type MatrixProvider interface {
	// Return the parsed matrix response for one origin/destination pair.
	Lookup(ctx context.Context, origin string, destination string) (domain.MatrixResponse, error)
}
