package domain

import (
	"fmt"
	"strings"
)

// Units selects the measurement system reported by the distance API.
type Units string

const (
	UnitsImperial Units = "imperial"
	UnitsMetric   Units = "metric"
)

// ParseUnits validates a configured unit system string.
func ParseUnits(s string) (Units, error) {
	switch Units(strings.ToLower(strings.TrimSpace(s))) {
	case UnitsImperial:
		return UnitsImperial, nil
	case UnitsMetric:
		return UnitsMetric, nil
	default:
		return "", fmt.Errorf("parse units: unsupported unit system %q", s)
	}
}
