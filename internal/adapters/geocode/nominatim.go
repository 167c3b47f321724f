package geocode

import (
	"address-distance-service/internal/domain"
	"address-distance-service/internal/platform/httpclient"
	"address-distance-service/internal/platform/obs"
	"address-distance-service/internal/ports"
	"context"
	"errors"
	"fmt"
	"math"
	"net/http"
	"net/url"
	"strconv"
	"strings"
)

// nominatimResult is one entry of the /search?format=json array.
// lat and lon are decimal strings.
type nominatimResult struct {
	Lat *string `json:"lat"`
	Lon *string `json:"lon"`
}

// NominatimGeocoder resolves addresses with OpenStreetMap Nominatim.
// Coordinates come back as named fields, so no reordering happens here.
type NominatimGeocoder struct {
	client  *httpclient.Client
	baseURL string
}

var _ ports.Geocoder = (*NominatimGeocoder)(nil)

func NewNominatimGeocoder(client *httpclient.Client, baseURL string) *NominatimGeocoder {
	return &NominatimGeocoder{
		client:  client,
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

func (n *NominatimGeocoder) Geocode(ctx context.Context, address string) (domain.Coordinates, bool) {
	c, err := n.lookup(ctx, address)
	if err != nil {
		return domain.Coordinates{}, false
	}
	return c, true
}

func (n *NominatimGeocoder) lookup(ctx context.Context, address string) (_ domain.Coordinates, err error) {
	defer obs.Time(ctx, "nominatim.Geocode")(&err)

	q := url.Values{}
	q.Set("format", "json")
	q.Set("limit", "1")
	q.Set("q", address)
	endpoint := n.baseURL + "/search?" + q.Encode()

	var results []nominatimResult
	if err := n.client.GetJSON(ctx, endpoint, &results); err != nil {
		// Nominatim answers 403/429 when its usage policy is not met.
		if httpclient.IsStatus(err, http.StatusForbidden) || httpclient.IsStatus(err, http.StatusTooManyRequests) {
			return domain.Coordinates{}, fmt.Errorf("nominatim search %q: refused by usage policy: %w", address, err)
		}
		return domain.Coordinates{}, fmt.Errorf("nominatim search %q: %w", address, err)
	}

	if len(results) == 0 {
		return domain.Coordinates{}, fmt.Errorf("nominatim search %q: %w", address, ports.ErrNoMatch)
	}

	lat, err := parseDegrees(results[0].Lat)
	if err != nil {
		return domain.Coordinates{}, fmt.Errorf("nominatim search %q: lat: %w", address, err)
	}
	lon, err := parseDegrees(results[0].Lon)
	if err != nil {
		return domain.Coordinates{}, fmt.Errorf("nominatim search %q: lon: %w", address, err)
	}

	return domain.Coordinates{Lat: lat, Lon: lon}, nil
}

func parseDegrees(s *string) (float64, error) {
	if s == nil {
		return 0, fmt.Errorf("missing: %w", ports.ErrNoMatch)
	}

	v, err := strconv.ParseFloat(strings.TrimSpace(*s), 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, errors.New("not a finite number")
	}
	return v, nil
}
