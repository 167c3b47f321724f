package handlers

import (
	"address-distance-service/internal/api/dto"
	"address-distance-service/internal/ports"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// DistanceHandler exposes the distance calculator over HTTP.
type DistanceHandler struct {
	Calculator ports.DistanceCalculator
}

// Get answers GET /distance?from=...&to=...
// Addresses are forwarded as given; only presence is checked.
func (h *DistanceHandler) Get(c *gin.Context) {
	from := c.Query("from")
	to := c.Query("to")
	if strings.TrimSpace(from) == "" || strings.TrimSpace(to) == "" {
		writeError(c, http.StatusBadRequest, "from and to are required")
		return
	}

	res, ok := h.Calculator.GetDistance(c.Request.Context(), from, to)
	if !ok {
		writeError(c, http.StatusUnprocessableEntity, "could not compute distance")
		return
	}

	c.JSON(http.StatusOK, dto.DistanceResponse{
		From:            from,
		To:              to,
		DistanceMeters:  res.DistanceMeters,
		DurationSeconds: res.DurationSeconds,
	})
}
