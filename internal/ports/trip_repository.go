package ports

import (
	"address-distance-service/internal/domain"
	"context"
)

// Port: a boundary for storing Trip entities and their computed distances.
type TripRepository interface {
	// Retrieve all trips, oldest first.
	ListTrips(ctx context.Context) ([]*domain.Trip, error)
	// Retrieve trips still waiting for a distance.
	ListPendingTrips(ctx context.Context) ([]*domain.Trip, error)
	// Insert a new pending trip and return it with its id.
	CreateTrip(ctx context.Context, startAddress, endAddress string) (*domain.Trip, error)
	// Persist the status and result fields of a trip.
	SaveResult(ctx context.Context, trip *domain.Trip) error
}
