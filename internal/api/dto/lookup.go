package dto

import "time"

type LookupResponse struct {
	LookupID    int       `json:"lookup_id"`
	Origin      string    `json:"origin"`
	Destination string    `json:"destination"`
	Status      string    `json:"status"`
	ItemCount   int       `json:"item_count"`
	RequestedAt time.Time `json:"requested_at"`
}

type ListLookupsResponse struct {
	Lookups []LookupResponse `json:"lookups"`
}
