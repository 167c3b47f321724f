package ports

import (
	"address-distance-service/internal/domain"
	"context"
)

// Driving distance and travel duration of a route, as reported by the router.
// Values are passed through unchanged (no rounding).
type DistanceResult struct {
	DistanceMeters  float64
	DurationSeconds float64
}

// Contract for computing the driving distance between two free-text addresses.
type DistanceCalculator interface {
	// Return the driving distance between two addresses, or ok=false when
	// any stage (geocoding either address, routing) yields nothing.
	GetDistance(ctx context.Context, startAddress string, endAddress string) (DistanceResult, bool)
}

// Contract for resolving a driving route between two coordinates.
type Router interface {
	Route(ctx context.Context, start domain.Coordinates, end domain.Coordinates) (DistanceResult, bool)
}
