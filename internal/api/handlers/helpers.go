package handlers

import (
	"address-distance-service/internal/api/dto"
	"address-distance-service/internal/domain"

	"github.com/gin-gonic/gin"
)

func writeError(c *gin.Context, status int, msg string) {
	c.AbortWithStatusJSON(status, dto.ErrorResponse{Error: msg})
}

func toTripResponse(t *domain.Trip) dto.TripResponse {
	return dto.TripResponse{
		TripID:          t.TripID,
		StartAddress:    t.StartAddress,
		EndAddress:      t.EndAddress,
		Status:          string(t.Status),
		DistanceMeters:  t.DistanceMeters,
		DurationSeconds: t.DurationSeconds,
		ComputedAt:      t.ComputedAt,
		CreatedAt:       t.CreatedAt,
	}
}

func toTripsResponse(trips []*domain.Trip) dto.ListTripsResponse {
	res := dto.ListTripsResponse{Trips: make([]dto.TripResponse, 0, len(trips))}
	for _, t := range trips {
		res.Trips = append(res.Trips, toTripResponse(t))
	}
	return res
}
