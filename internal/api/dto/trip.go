package dto

import "time"

type CreateTripRequest struct {
	StartAddress string `json:"start_address" binding:"required"`
	EndAddress   string `json:"end_address" binding:"required"`
}

type TripResponse struct {
	TripID          int        `json:"trip_id"`
	StartAddress    string     `json:"start_address"`
	EndAddress      string     `json:"end_address"`
	Status          string     `json:"status"`
	DistanceMeters  *float64   `json:"distance_meters"`
	DurationSeconds *float64   `json:"duration_seconds"`
	ComputedAt      *time.Time `json:"computed_at"`
	CreatedAt       time.Time  `json:"created_at"`
}

type ListTripsResponse struct {
	Trips []TripResponse `json:"trips"`
}
