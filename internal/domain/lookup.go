package domain

import "time"

// Lookup is one recorded distance matrix query and its outcome.
// History rows are write-only from the request path: they are never
// consulted before calling the external API.
type Lookup struct {
	ID          int
	Origin      string
	Destination string
	Status      string
	ItemCount   int
	RequestedAt time.Time
}
