package handlers

import (
	"address-distance-service/internal/api/dto"
	"address-distance-service/internal/platform/obs"
	"address-distance-service/internal/ports"
	"address-distance-service/internal/services"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

type TripHandler struct {
	Repo       ports.TripRepository
	Calculator ports.DistanceCalculator
}

func (h *TripHandler) List(c *gin.Context) {
	trips, err := h.Repo.ListTrips(c.Request.Context())
	if err != nil {
		obs.Entry(c.Request.Context()).WithError(err).Error("list trips failed")
		writeError(c, http.StatusInternalServerError, "internal server error")
		return
	}

	c.JSON(http.StatusOK, toTripsResponse(trips))
}

func (h *TripHandler) Create(c *gin.Context) {
	var req dto.CreateTripRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "start_address and end_address are required")
		return
	}

	start := strings.TrimSpace(req.StartAddress)
	end := strings.TrimSpace(req.EndAddress)
	if start == "" || end == "" {
		writeError(c, http.StatusBadRequest, "start_address and end_address are required")
		return
	}

	trip, err := h.Repo.CreateTrip(c.Request.Context(), start, end)
	if err != nil {
		obs.Entry(c.Request.Context()).WithError(err).Error("create trip failed")
		writeError(c, http.StatusInternalServerError, "internal server error")
		return
	}

	c.JSON(http.StatusCreated, toTripResponse(trip))
}

// Process computes every pending trip and returns the processed ones.
func (h *TripHandler) Process(c *gin.Context) {
	trips, err := services.ProcessPendingTrips(c.Request.Context(), h.Repo, h.Calculator)
	if err != nil {
		obs.Entry(c.Request.Context()).WithError(err).Error("process trips failed")
		writeError(c, http.StatusInternalServerError, "internal server error")
		return
	}

	c.JSON(http.StatusOK, toTripsResponse(trips))
}
