// Package mock provides in-memory Geocoder and Router implementations that
// count their calls.
package mock

import (
	"address-distance-service/internal/domain"
	"address-distance-service/internal/ports"
	"context"
	"sync"
)

type Geocoder struct {
	mu    sync.Mutex
	m     map[string]domain.Coordinates
	calls map[string]int
	total int
}

var _ ports.Geocoder = (*Geocoder)(nil)

// NewGeocoder returns a geocoder that only knows the given addresses.
func NewGeocoder(known map[string]domain.Coordinates) *Geocoder {
	m := make(map[string]domain.Coordinates, len(known))
	for k, v := range known {
		m[k] = v
	}
	return &Geocoder{m: m, calls: map[string]int{}}
}

func (g *Geocoder) Geocode(ctx context.Context, address string) (domain.Coordinates, bool) {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.calls[address]++
	g.total++

	c, ok := g.m[address]
	return c, ok
}

// Calls returns how many times address was looked up.
func (g *Geocoder) Calls(address string) int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.calls[address]
}

// TotalCalls returns the number of lookups for any address.
func (g *Geocoder) TotalCalls() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.total
}
