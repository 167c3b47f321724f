// Package app wires concrete adapters behind ports for the cmd entry points.
package app

import (
	"address-distance-service/internal/adapters/geocode"
	"address-distance-service/internal/adapters/routing"
	"address-distance-service/internal/config"
	"address-distance-service/internal/platform/httpclient"
	"address-distance-service/internal/services"
)

// NewDistanceCalculator builds BAN (primary), Nominatim (fallback) and OSRM
// adapters over one shared HTTP client.
func NewDistanceCalculator(cfg *config.Config) *services.DistanceCalculator {
	client := httpclient.New(httpclient.Options{
		Timeout:     cfg.HTTPTimeout,
		UserAgent:   cfg.UserAgent,
		LogRequests: cfg.LogHTTP,
	})

	return services.NewDistanceCalculator(
		geocode.NewBANGeocoder(client, cfg.BANBaseURL),
		geocode.NewNominatimGeocoder(client, cfg.NominatimBaseURL),
		routing.NewOSRMRouter(client, cfg.OSRMBaseURL),
	)
}
