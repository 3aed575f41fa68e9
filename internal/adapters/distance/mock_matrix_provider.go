package distance

import (
	"context"
	"distance-matrix-service/internal/domain"
	"fmt"
)

type MockResult struct {
	Origin, Destination string
	Response            domain.MatrixResponse
}

type MockMatrixProvider struct {
	m map[string]domain.MatrixResponse
	// Err, when set, is returned from every Lookup call.
	Err error
}

func NewMockMatrixProvider(results []MockResult) *MockMatrixProvider {
	m := make(map[string]domain.MatrixResponse, len(results))
	for _, r := range results {
		m[r.Origin+"|"+r.Destination] = r.Response
	}
	return &MockMatrixProvider{m: m}
}

func (p *MockMatrixProvider) Lookup(ctx context.Context, origin, destination string) (domain.MatrixResponse, error) {
	if p.Err != nil {
		return domain.MatrixResponse{}, p.Err
	}

	r, ok := p.m[origin+"|"+destination]
	if !ok {
		return domain.MatrixResponse{}, fmt.Errorf("missing pair %q -> %q", origin, destination)
	}

	return r, nil
}
