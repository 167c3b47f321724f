package geocode

import (
	"address-distance-service/internal/domain"
	"address-distance-service/internal/platform/httpclient"
	"address-distance-service/internal/platform/obs"
	"address-distance-service/internal/ports"
	"context"
	"fmt"
	"net/url"
	"strings"
)

// banResponse is the GeoJSON FeatureCollection returned by /search/.
// Coordinates are ordered [lon, lat].
type banResponse struct {
	Features []struct {
		Geometry *struct {
			Coordinates []float64 `json:"coordinates"`
		} `json:"geometry"`
	} `json:"features"`
}

// BANGeocoder resolves addresses against the French national address base
// (api-adresse.data.gouv.fr), restricted to house-number matches.
type BANGeocoder struct {
	client  *httpclient.Client
	baseURL string
}

var _ ports.Geocoder = (*BANGeocoder)(nil)

func NewBANGeocoder(client *httpclient.Client, baseURL string) *BANGeocoder {
	return &BANGeocoder{
		client:  client,
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

func (b *BANGeocoder) Geocode(ctx context.Context, address string) (domain.Coordinates, bool) {
	c, err := b.lookup(ctx, address)
	if err != nil {
		return domain.Coordinates{}, false
	}
	return c, true
}

func (b *BANGeocoder) lookup(ctx context.Context, address string) (_ domain.Coordinates, err error) {
	defer obs.Time(ctx, "ban.Geocode")(&err)

	q := url.Values{}
	q.Set("q", address)
	q.Set("type", "housenumber")
	q.Set("limit", "1")
	q.Set("autocomplete", "1")
	endpoint := b.baseURL + "/search/?" + q.Encode()

	var decoded banResponse
	if err := b.client.GetJSON(ctx, endpoint, &decoded); err != nil {
		return domain.Coordinates{}, fmt.Errorf("ban search %q: %w", address, err)
	}

	if len(decoded.Features) == 0 {
		return domain.Coordinates{}, fmt.Errorf("ban search %q: %w", address, ports.ErrNoMatch)
	}

	geometry := decoded.Features[0].Geometry
	if geometry == nil || len(geometry.Coordinates) < 2 {
		return domain.Coordinates{}, fmt.Errorf("ban search %q: candidate without coordinates: %w", address, ports.ErrNoMatch)
	}

	return domain.Coordinates{
		Lat: geometry.Coordinates[1],
		Lon: geometry.Coordinates[0],
	}, nil
}
