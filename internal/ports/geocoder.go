package ports

import (
	"address-distance-service/internal/domain"
	"context"
	"errors"
)

// ErrNoMatch reports that a provider answered but had no usable candidate.
var ErrNoMatch = errors.New("no match")

// Contract for resolving a free-text address to coordinates.
// Absence (ok=false) is an expected outcome, not an error.
type Geocoder interface {
	Geocode(ctx context.Context, address string) (domain.Coordinates, bool)
}
