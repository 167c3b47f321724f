package mock

import (
	"address-distance-service/internal/domain"
	"address-distance-service/internal/ports"
	"context"
	"sync"
)

type Pair struct {
	From, To domain.Coordinates
	Meters   float64
	Seconds  float64
}

type Router struct {
	mu    sync.Mutex
	m     map[[2]domain.Coordinates]ports.DistanceResult
	calls int
}

var _ ports.Router = (*Router)(nil)

func NewRouter(pairs []Pair) *Router {
	m := make(map[[2]domain.Coordinates]ports.DistanceResult, len(pairs))
	for _, p := range pairs {
		m[[2]domain.Coordinates{p.From, p.To}] = ports.DistanceResult{DistanceMeters: p.Meters, DurationSeconds: p.Seconds}
	}
	return &Router{m: m}
}

func (r *Router) Route(ctx context.Context, start, end domain.Coordinates) (ports.DistanceResult, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.calls++
	res, ok := r.m[[2]domain.Coordinates{start, end}]
	return res, ok
}

func (r *Router) Calls() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.calls
}
