package dto

type MatrixItemResponse struct {
	Origin        string `json:"origin"`
	Destination   string `json:"destination"`
	DistanceText  string `json:"distance_text"`
	DurationText  string `json:"duration_text"`
	ElementStatus string `json:"element_status"`
}

type DistanceResponse struct {
	Status  string               `json:"status"`
	Message string               `json:"message"`
	Items   []MatrixItemResponse `json:"items"`
}
