package dto

type DistanceResponse struct {
	From            string  `json:"from"`
	To              string  `json:"to"`
	DistanceMeters  float64 `json:"distance_meters"`
	DurationSeconds float64 `json:"duration_seconds"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
