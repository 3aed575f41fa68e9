package distance

import (
	"distance-matrix-service/internal/domain"
	"errors"
	"testing"
)

func TestParseResponseFlattensSingleOrigin(t *testing.T) {
	body := []byte(`{
		"status": "OK",
		"origin_addresses": ["A"],
		"destination_addresses": ["X", "Y"],
		"rows": [
			{"elements": [
				{"status": "OK", "distance": {"text": "5 mi", "value": 8046}, "duration": {"text": "10 mins", "value": 600}},
				{"status": "ZERO_RESULTS", "distance": {"text": "", "value": 0}, "duration": {"text": "", "value": 0}}
			]}
		]
	}`)

	res, err := ParseResponse(body)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !res.OK() {
		t.Fatalf("expected OK status, got %q", res.Status)
	}

	if len(res.Items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(res.Items))
	}

	first := res.Items[0]
	if first.Origin != "A" || first.Destination != "X" {
		t.Errorf("first item pairing wrong: %q -> %q", first.Origin, first.Destination)
	}
	if first.DistanceText != "5 mi" || first.DurationText != "10 mins" {
		t.Errorf("first item texts wrong: %q / %q", first.DistanceText, first.DurationText)
	}
	if first.ElementStatus != domain.ElementOK {
		t.Errorf("first item status = %q, want OK", first.ElementStatus)
	}

	second := res.Items[1]
	if second.Origin != "A" || second.Destination != "Y" {
		t.Errorf("second item pairing wrong: %q -> %q", second.Origin, second.Destination)
	}
	if second.ElementStatus != domain.ElementZeroResults {
		t.Errorf("second item status = %q, want ZERO_RESULTS", second.ElementStatus)
	}

	wantMessage := "The distance from A to X is 5 mi.\nThe drive will take 10 mins.\n\n" +
		"No route from A to Y could be found."
	if res.Message != wantMessage {
		t.Errorf("message = %q, want %q", res.Message, wantMessage)
	}
}

func TestParseResponseRowMajorOrdering(t *testing.T) {
	body := []byte(`{
		"status": "OK",
		"origin_addresses": ["O1", "O2"],
		"destination_addresses": ["D1", "D2"],
		"rows": [
			{"elements": [
				{"status": "OK", "distance": {"text": "1 km", "value": 1000}, "duration": {"text": "1 min", "value": 60}},
				{"status": "OK", "distance": {"text": "2 km", "value": 2000}, "duration": {"text": "2 mins", "value": 120}}
			]},
			{"elements": [
				{"status": "OK", "distance": {"text": "3 km", "value": 3000}, "duration": {"text": "3 mins", "value": 180}},
				{"status": "OK", "distance": {"text": "4 km", "value": 4000}, "duration": {"text": "4 mins", "value": 240}}
			]}
		]
	}`)

	res, err := ParseResponse(body)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(res.Items) != 4 {
		t.Fatalf("expected 4 items, got %d", len(res.Items))
	}

	want := []struct {
		origin, destination, distance string
	}{
		{"O1", "D1", "1 km"},
		{"O1", "D2", "2 km"},
		{"O2", "D1", "3 km"},
		{"O2", "D2", "4 km"},
	}

	for i, w := range want {
		got := res.Items[i]
		if got.Origin != w.origin || got.Destination != w.destination || got.DistanceText != w.distance {
			t.Errorf(
				"item %d = (%q, %q, %q), want (%q, %q, %q)",
				i, got.Origin, got.Destination, got.DistanceText,
				w.origin, w.destination, w.distance,
			)
		}
	}
}

func TestParseResponseTopLevelStatuses(t *testing.T) {
	cases := []struct {
		status string
		want   string
	}{
		{"INVALID_REQUEST", "The given request was invalid."},
		{"MAX_ELEMENTS_EXCEEDED", "The requests exceed the per-query limit."},
		{"OVER_DAILY_LIMIT", "There was an issue with the API key."},
		{"OVER_QUERY_LIMIT", "The API has received too many requests from this application."},
		{"REQUEST_DENIED", "This application cannot use the Distance Matrix API."},
		{"UNKNOWN_ERROR", "The request could not be processed due to a server error. Please try again."},
		{"SOMETHING_NEW", "Internal server error."},
	}

	for _, c := range cases {
		res, err := ParseResponse([]byte(`{"status": "` + c.status + `"}`))
		if err != nil {
			t.Fatalf("status %s: unexpected error: %v", c.status, err)
		}

		if res.Message != c.want {
			t.Errorf("status %s: message = %q, want %q", c.status, res.Message, c.want)
		}
		if len(res.Items) != 0 {
			t.Errorf("status %s: expected no items, got %d", c.status, len(res.Items))
		}
	}
}

func TestParseResponseMissingStatus(t *testing.T) {
	res, err := ParseResponse([]byte(`{}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if res.Message != "Internal server error." {
		t.Errorf("message = %q, want fallback", res.Message)
	}
	if len(res.Items) != 0 {
		t.Errorf("expected no items, got %d", len(res.Items))
	}
}

func TestParseResponseTooFewElements(t *testing.T) {
	body := []byte(`{
		"status": "OK",
		"origin_addresses": ["O1", "O2"],
		"destination_addresses": ["D1", "D2"],
		"rows": [
			{"elements": [
				{"status": "OK", "distance": {"text": "1 km", "value": 1000}, "duration": {"text": "1 min", "value": 60}},
				{"status": "OK", "distance": {"text": "2 km", "value": 2000}, "duration": {"text": "2 mins", "value": 120}}
			]},
			{"elements": [
				{"status": "OK", "distance": {"text": "3 km", "value": 3000}, "duration": {"text": "3 mins", "value": 180}}
			]}
		]
	}`)

	_, err := ParseResponse(body)
	if err == nil {
		t.Fatal("expected an error for a short element list")
	}

	var malformed *MalformedResponseError
	if !errors.As(err, &malformed) {
		t.Fatalf("expected *MalformedResponseError, got %T: %v", err, err)
	}

	if malformed.Origins != 2 || malformed.Destinations != 2 || malformed.Elements != 3 {
		t.Errorf(
			"dimensions = (%d, %d, %d), want (2, 2, 3)",
			malformed.Origins, malformed.Destinations, malformed.Elements,
		)
	}
}

func TestParseResponseInvalidJSON(t *testing.T) {
	for _, body := range []string{"not json at all", `{"status": 42}`} {
		_, err := ParseResponse([]byte(body))
		if err == nil {
			t.Fatalf("body %q: expected an error", body)
		}

		var parseErr *ParseError
		if !errors.As(err, &parseErr) {
			t.Errorf("body %q: expected *ParseError, got %T: %v", body, err, err)
		}
	}
}

func TestParseResponseMessageOrderMatchesItems(t *testing.T) {
	body := []byte(`{
		"status": "OK",
		"origin_addresses": ["O"],
		"destination_addresses": ["D1", "D2", "D3"],
		"rows": [
			{"elements": [
				{"status": "NOT_FOUND"},
				{"status": "MAX_ROUTE_LENGTH_EXCEEDED"},
				{"status": "WEIRD"}
			]}
		]
	}`)

	res, err := ParseResponse(body)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := "The origin O and/or destination D1 could not be geocoded." +
		"The requested route is too long and cannot be processed." +
		"Undefined error."
	if res.Message != want {
		t.Errorf("message = %q, want %q", res.Message, want)
	}
}
