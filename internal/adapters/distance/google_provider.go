package distance

import (
	"context"
	"distance-matrix-service/internal/domain"
	"distance-matrix-service/internal/platform/obs"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// GoogleDistanceProvider implements MatrixProvider using the Google
// Distance Matrix API.
//
// It coordinates:
//   - Request URL construction
//   - A single blocking HTTP GET per lookup (no retries)
//   - Typed decoding and flattening of the matrix response
//
// The provider is safe for concurrent use. The API key and unit system are
// fixed at construction; origin and destination are the only per-call
// inputs.
type GoogleDistanceProvider struct {
	session *http.Client
	apiKey  string
	units   domain.Units
	baseURL string
}

func NewGoogleDistanceProvider(apiKey string, units domain.Units) (*GoogleDistanceProvider, error) {
	if apiKey == "" {
		return nil, errors.New("google maps api key is empty")
	}

	if units == "" {
		units = domain.UnitsImperial
	}

	provider := &GoogleDistanceProvider{
		session: &http.Client{Timeout: 10 * time.Second},
		apiKey:  apiKey,
		units:   units,
		baseURL: "https://maps.googleapis.com/maps/api/distancematrix/json",
	}

	return provider, nil
}

// plusEncode collapses whitespace and replaces the remaining spaces with '+'
// for URL interpolation. Characters other than spaces are passed through
// unencoded; free-text addresses containing '&' or '#' are a known
// limitation.
func plusEncode(s string) string {
	return strings.ReplaceAll(strings.Join(strings.Fields(s), " "), " ", "+")
}

// requestURL builds the full query URL for one origin/destination pair.
func (g *GoogleDistanceProvider) requestURL(origin, destination string) string {
	return fmt.Sprintf(
		"%s?units=%s&origins=%s&destinations=%s&key=%s",
		g.baseURL, g.units, plusEncode(origin), plusEncode(destination), g.apiKey,
	)
}

// Lookup runs a single distance matrix query.
//
// A recognized non-OK API status is not an error: it comes back as a normal
// response whose Message explains the failure. Returned errors are limited
// to *NetworkError, *ParseError and *MalformedResponseError.
func (g *GoogleDistanceProvider) Lookup(
	ctx context.Context,
	origin string,
	destination string,
) (_ domain.MatrixResponse, err error) {
	defer obs.Time(ctx, "google.Lookup")(&err)

	if strings.TrimSpace(origin) == "" || strings.TrimSpace(destination) == "" {
		return domain.MatrixResponse{}, errors.New("lookup: origin and destination must be non-empty")
	}

	body, err := g.fetch(ctx, g.requestURL(origin, destination))
	if err != nil {
		return domain.MatrixResponse{}, fmt.Errorf("lookup %q -> %q: %w", origin, destination, err)
	}

	res, err := ParseResponse(body)
	if err != nil {
		return domain.MatrixResponse{}, fmt.Errorf("lookup %q -> %q: %w", origin, destination, err)
	}

	return res, nil
}
