package distance

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// NetworkError reports a transport-level failure: the request could not be
// built, sent, or its body read, or the API answered with a non-2xx status.
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string { return fmt.Sprintf("network error: %v", e.Err) }

func (e *NetworkError) Unwrap() error { return e.Err }

// fetch performs one blocking GET and returns the full response body.
// There is no retry; transient failures surface as *NetworkError.
func (g *GoogleDistanceProvider) fetch(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, &NetworkError{Err: fmt.Errorf("create request: %w", err)}
	}

	req.Header.Set("Accept", "application/json")

	resp, err := g.session.Do(req)
	if err != nil {
		return nil, &NetworkError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return nil, &NetworkError{
			Err: fmt.Errorf("unexpected status %d: %s", resp.StatusCode, strings.TrimSpace(string(b))),
		}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &NetworkError{Err: fmt.Errorf("read body: %w", err)}
	}

	return body, nil
}
