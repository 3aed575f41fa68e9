package distance

import (
	"distance-matrix-service/internal/domain"
	"encoding/json"
	"fmt"
	"strings"
)

// Raw decoded shape of a Distance Matrix API response body.
type rawMatrix struct {
	Status               string   `json:"status"`
	OriginAddresses      []string `json:"origin_addresses"`
	DestinationAddresses []string `json:"destination_addresses"`
	Rows                 []rawRow `json:"rows"`
}

type rawRow struct {
	Elements []rawElement `json:"elements"`
}

type rawElement struct {
	Status   string       `json:"status"`
	Distance rawTextValue `json:"distance"`
	Duration rawTextValue `json:"duration"`
}

type rawTextValue struct {
	Text  string  `json:"text"`
	Value float64 `json:"value"`
}

// ParseError reports a response body that could not be decoded into the
// matrix shape at all.
type ParseError struct {
	Err error
}

func (e *ParseError) Error() string { return fmt.Sprintf("parse matrix response: %v", e.Err) }

func (e *ParseError) Unwrap() error { return e.Err }

// MalformedResponseError reports a structurally valid body whose element
// count does not cover the full origins x destinations grid.
type MalformedResponseError struct {
	Origins      int
	Destinations int
	Elements     int
}

func (e *MalformedResponseError) Error() string {
	return fmt.Sprintf(
		"malformed matrix response: %d origins x %d destinations needs %d elements, got %d",
		e.Origins, e.Destinations, e.Origins*e.Destinations, e.Elements,
	)
}

// ParseResponse decodes a Distance Matrix API body and builds the flattened,
// per-pair result set.
//
// The top-level status drives a two-level dispatch: a non-OK status produces
// a response with an explanatory message and no items, while an OK status
// flattens the matrix and concatenates the per-item messages in item order.
// Errors are reserved for bodies that cannot be decoded (*ParseError) or
// whose matrix dimensions are inconsistent (*MalformedResponseError).
func ParseResponse(body []byte) (domain.MatrixResponse, error) {
	var raw rawMatrix
	if err := json.Unmarshal(body, &raw); err != nil {
		return domain.MatrixResponse{}, &ParseError{Err: err}
	}

	// An absent status field decodes to "" and lands on the generic
	// fallback message below.
	status := domain.ResponseStatus(raw.Status)
	if status != domain.StatusOK {
		return domain.MatrixResponse{
			Status:  status,
			Message: status.Message(),
			Items:   []domain.MatrixItem{},
		}, nil
	}

	items, err := flatten(raw)
	if err != nil {
		return domain.MatrixResponse{}, err
	}

	var msg strings.Builder
	for _, item := range items {
		msg.WriteString(item.Message())
	}

	return domain.MatrixResponse{
		Status:  status,
		Message: msg.String(),
		Items:   items,
	}, nil
}

// flatten pairs the i-th origin with the j-th destination and the element at
// row-major index i*D+j. Rows are concatenated in order, so the bounds check
// holds whenever the total element count covers the full grid.
func flatten(raw rawMatrix) ([]domain.MatrixItem, error) {
	origins := raw.OriginAddresses
	destinations := raw.DestinationAddresses

	elements := make([]rawElement, 0, len(origins)*len(destinations))
	for _, row := range raw.Rows {
		elements = append(elements, row.Elements...)
	}

	if len(elements) < len(origins)*len(destinations) {
		return nil, &MalformedResponseError{
			Origins:      len(origins),
			Destinations: len(destinations),
			Elements:     len(elements),
		}
	}

	items := make([]domain.MatrixItem, 0, len(origins)*len(destinations))
	for i, origin := range origins {
		for j, destination := range destinations {
			element := elements[i*len(destinations)+j]
			items = append(items, domain.MatrixItem{
				Origin:        origin,
				Destination:   destination,
				DistanceText:  element.Distance.Text,
				DurationText:  element.Duration.Text,
				ElementStatus: domain.ElementStatus(element.Status),
			})
		}
	}

	return items, nil
}
