package services

import (
	"address-distance-service/internal/domain"
	"address-distance-service/internal/platform/obs"
	"address-distance-service/internal/ports"
	"context"
	"fmt"
	"time"
)

// ProcessPendingTrips computes the distance of every pending trip, one trip
// at a time, and stores the outcome. A trip whose distance cannot be computed
// is stored as failed; only repository errors abort the run.
func ProcessPendingTrips(
	ctx context.Context,
	repo ports.TripRepository,
	calc ports.DistanceCalculator,
) (_ []*domain.Trip, err error) {
	defer obs.Time(ctx, "trips.ProcessPending")(&err)

	trips, err := repo.ListPendingTrips(ctx)
	if err != nil {
		return nil, fmt.Errorf("process trips: list pending: %w", err)
	}

	processed := make([]*domain.Trip, 0, len(trips))
	for _, trip := range trips {
		if err := ctx.Err(); err != nil {
			return processed, fmt.Errorf("process trips: %w", err)
		}

		if !trip.IsPending() {
			continue
		}

		result, ok := calc.GetDistance(ctx, trip.StartAddress, trip.EndAddress)
		if ok {
			trip.Complete(result.DistanceMeters, result.DurationSeconds, time.Now().UTC())
		} else {
			trip.Fail(time.Now().UTC())
		}

		if err := repo.SaveResult(ctx, trip); err != nil {
			return processed, fmt.Errorf("process trips: save trip_id=%d: %w", trip.TripID, err)
		}

		obs.Entry(ctx).WithField("trip_id", trip.TripID).
			WithField("status", trip.Status).
			Info("trip processed")

		processed = append(processed, trip)
	}

	return processed, nil
}
