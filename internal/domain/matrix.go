package domain

import "fmt"

// ResponseStatus classifies the top-level status of a distance matrix
// response. Values outside the declared set (including the empty string)
// are handled by the switch defaults below.
type ResponseStatus string

const (
	StatusOK                  ResponseStatus = "OK"
	StatusInvalidRequest      ResponseStatus = "INVALID_REQUEST"
	StatusMaxElementsExceeded ResponseStatus = "MAX_ELEMENTS_EXCEEDED"
	StatusOverDailyLimit      ResponseStatus = "OVER_DAILY_LIMIT"
	StatusOverQueryLimit      ResponseStatus = "OVER_QUERY_LIMIT"
	StatusRequestDenied       ResponseStatus = "REQUEST_DENIED"
	StatusUnknownError        ResponseStatus = "UNKNOWN_ERROR"
)

// Message returns the user-facing explanation for a non-OK response status.
func (s ResponseStatus) Message() string {
	switch s {
	case StatusInvalidRequest:
		return "The given request was invalid."
	case StatusMaxElementsExceeded:
		return "The requests exceed the per-query limit."
	case StatusOverDailyLimit:
		return "There was an issue with the API key."
	case StatusOverQueryLimit:
		return "The API has received too many requests from this application."
	case StatusRequestDenied:
		return "This application cannot use the Distance Matrix API."
	case StatusUnknownError:
		return "The request could not be processed due to a server error. Please try again."
	default:
		return "Internal server error."
	}
}

// ElementStatus classifies one origin/destination computation within a
// matrix row.
type ElementStatus string

const (
	ElementOK                     ElementStatus = "OK"
	ElementNotFound               ElementStatus = "NOT_FOUND"
	ElementZeroResults            ElementStatus = "ZERO_RESULTS"
	ElementMaxRouteLengthExceeded ElementStatus = "MAX_ROUTE_LENGTH_EXCEEDED"
)

// MatrixItem is one flattened origin/destination result.
// It is immutable planning data produced by the response parser.
type MatrixItem struct {
	Origin        string
	Destination   string
	DistanceText  string
	DurationText  string
	ElementStatus ElementStatus
}

// Message renders the display text for a single item. Successful items
// contribute a multi-line sentence terminated by a blank line so that
// concatenated messages stay readable.
func (i MatrixItem) Message() string {
	switch i.ElementStatus {
	case ElementOK:
		return fmt.Sprintf(
			"The distance from %s to %s is %s.\nThe drive will take %s.\n\n",
			i.Origin, i.Destination, i.DistanceText, i.DurationText,
		)
	case ElementNotFound:
		return fmt.Sprintf(
			"The origin %s and/or destination %s could not be geocoded.",
			i.Origin, i.Destination,
		)
	case ElementZeroResults:
		return fmt.Sprintf(
			"No route from %s to %s could be found.",
			i.Origin, i.Destination,
		)
	case ElementMaxRouteLengthExceeded:
		return "The requested route is too long and cannot be processed."
	default:
		return "Undefined error."
	}
}

// MatrixResponse is the caller-facing result of one lookup.
// Items is populated only when Status is OK; otherwise Message carries a
// single top-level explanation and Items stays empty. The value is built
// once by the parser and never mutated afterwards.
type MatrixResponse struct {
	Status  ResponseStatus
	Message string
	Items   []MatrixItem
}

// OK reports whether the response carries per-pair results.
func (r MatrixResponse) OK() bool { return r.Status == StatusOK }
