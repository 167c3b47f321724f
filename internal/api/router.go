package api

import (
	"address-distance-service/internal/api/handlers"
	"address-distance-service/internal/ports"
	"net/http"

	"github.com/gin-gonic/gin"
)

// NewRouter wires HTTP handlers with their dependencies and returns an http.Handler.
// This is the API composition root (handlers stay unaware of concrete adapters).
// Trip routes are only mounted when repo is non-nil.
func NewRouter(calc ports.DistanceCalculator, repo ports.TripRepository) http.Handler {
	r := gin.New()
	r.HandleMethodNotAllowed = true
	r.Use(requestID(), loggingMiddleware(), gin.Recovery())

	distanceHandler := &handlers.DistanceHandler{Calculator: calc}

	r.GET("/health", handlers.Health)
	r.GET("/distance", distanceHandler.Get)

	if repo != nil {
		tripHandler := &handlers.TripHandler{Repo: repo, Calculator: calc}
		r.GET("/trips", tripHandler.List)
		r.POST("/trips", tripHandler.Create)
		r.POST("/trips/process", tripHandler.Process)
	}

	return r
}
