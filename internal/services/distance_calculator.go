package services

import (
	"address-distance-service/internal/domain"
	"address-distance-service/internal/platform/obs"
	"address-distance-service/internal/ports"
	"context"
)

// DistanceCalculator computes the driving distance between two addresses.
//
// Each address is geocoded with the primary geocoder, and with the fallback
// geocoder only when the primary yields nothing. Routing is attempted only
// when both addresses resolved. Any failure collapses to ok=false; callers
// get a single pass/fail signal.
//
// Addresses are resolved one after the other. The calculator holds no
// per-call state and is safe for concurrent use.
type DistanceCalculator struct {
	primary  ports.Geocoder
	fallback ports.Geocoder
	router   ports.Router
}

var _ ports.DistanceCalculator = (*DistanceCalculator)(nil)

func NewDistanceCalculator(primary, fallback ports.Geocoder, router ports.Router) *DistanceCalculator {
	return &DistanceCalculator{
		primary:  primary,
		fallback: fallback,
		router:   router,
	}
}

func (d *DistanceCalculator) GetDistance(
	ctx context.Context,
	startAddress string,
	endAddress string,
) (ports.DistanceResult, bool) {
	log := obs.Entry(ctx)

	start, startOK := d.resolve(ctx, startAddress)
	end, endOK := d.resolve(ctx, endAddress)

	if !startOK || !endOK {
		log.WithField("start_resolved", startOK).
			WithField("end_resolved", endOK).
			Debug("distance: address could not be geocoded")
		return ports.DistanceResult{}, false
	}

	result, ok := d.router.Route(ctx, start, end)
	if !ok {
		log.WithField("start", start.String()).
			WithField("end", end.String()).
			Debug("distance: no route")
		return ports.DistanceResult{}, false
	}

	return result, true
}

// resolve geocodes one address, primary first.
func (d *DistanceCalculator) resolve(ctx context.Context, address string) (domain.Coordinates, bool) {
	if c, ok := d.primary.Geocode(ctx, address); ok {
		return c, true
	}

	obs.Entry(ctx).WithField("address", address).Debug("primary geocoder had no match, trying fallback")
	return d.fallback.Geocode(ctx, address)
}
