package domain

import "time"

type TripStatus string

const (
	TripPending TripStatus = "pending"
	TripDone    TripStatus = "done"
	TripFailed  TripStatus = "failed"
)

// Represents a pair of addresses whose driving distance is computed in batch.
// Distance and duration are only populated once the trip is done.
type Trip struct {
	TripID          int
	StartAddress    string
	EndAddress      string
	Status          TripStatus
	DistanceMeters  *float64
	DurationSeconds *float64
	ComputedAt      *time.Time
	CreatedAt       time.Time
}

// Record a successful distance computation.
func (t *Trip) Complete(meters, seconds float64, at time.Time) {
	t.Status = TripDone
	t.DistanceMeters = &meters
	t.DurationSeconds = &seconds
	t.ComputedAt = &at
}

// Record that no distance could be computed for the trip.
func (t *Trip) Fail(at time.Time) {
	t.Status = TripFailed
	t.DistanceMeters = nil
	t.DurationSeconds = nil
	t.ComputedAt = &at
}

func (t *Trip) IsPending() bool {
	return t.Status == TripPending
}
