package routing

import (
	"address-distance-service/internal/domain"
	"address-distance-service/internal/platform/httpclient"
	"address-distance-service/internal/platform/obs"
	"address-distance-service/internal/ports"
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
)

type routeResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Routes  []struct {
		Distance *float64 `json:"distance"`
		Duration *float64 `json:"duration"`
	} `json:"routes"`
}

// OSRMRouter queries an OSRM route service for driving distances.
//
// The request keeps the query used against routing.openstreetmap.de:
// no overview geometry, polyline encoding, and turn-by-turn steps. Step data
// is not decoded.
type OSRMRouter struct {
	client  *httpclient.Client
	baseURL string
	profile string
}

var _ ports.Router = (*OSRMRouter)(nil)

func NewOSRMRouter(client *httpclient.Client, baseURL string) *OSRMRouter {
	return &OSRMRouter{
		client:  client,
		baseURL: strings.TrimRight(baseURL, "/"),
		profile: "driving",
	}
}

func (o *OSRMRouter) Route(ctx context.Context, start, end domain.Coordinates) (ports.DistanceResult, bool) {
	r, err := o.fetchRoute(ctx, start, end)
	if err != nil {
		return ports.DistanceResult{}, false
	}
	return r, true
}

// fetchRoute retrieves the first route between two points.
// OSRM expects each waypoint as "lon,lat", waypoints separated by ';'.
func (o *OSRMRouter) fetchRoute(
	ctx context.Context,
	start domain.Coordinates,
	end domain.Coordinates,
) (_ ports.DistanceResult, err error) {
	defer obs.Time(ctx, "osrm.Route")(&err)

	q := url.Values{}
	q.Set("overview", "false")
	q.Set("geometries", "polyline")
	q.Set("steps", "true")

	endpoint := fmt.Sprintf(
		"%s/route/v1/%s/%s;%s?%s",
		o.baseURL, o.profile, start.LonLat(), end.LonLat(), q.Encode(),
	)

	var rr routeResponse
	if err := o.client.GetJSON(ctx, endpoint, &rr); err != nil {
		return ports.DistanceResult{}, fmt.Errorf("route request failed: %w", err)
	}

	if rr.Code != "Ok" {
		return ports.DistanceResult{}, fmt.Errorf("route status %q: %s", rr.Code, rr.Message)
	}

	if len(rr.Routes) == 0 {
		return ports.DistanceResult{}, fmt.Errorf("route %s -> %s: %w", start, end, ports.ErrNoMatch)
	}

	first := rr.Routes[0]
	if first.Distance == nil {
		return ports.DistanceResult{}, errors.New("route without distance")
	}

	result := ports.DistanceResult{DistanceMeters: *first.Distance}
	if first.Duration != nil {
		result.DurationSeconds = *first.Duration
	}

	return result, nil
}
