package provider

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"mutual-availability/internal/model"
)

// ErrEventsNotSupported is returned when an event descriptor is handed to a
// gateway whose backend cannot accept writes.
var ErrEventsNotSupported = errors.New("gateway does not support event creation")

const cacheMaxEntries = 2048

// CachedGateway wraps a Gateway with an explicit TTL cache of fetched busy
// intervals. The cache is injected per gateway at construction; there is no
// ambient shared state. Fetch errors are never cached.
type CachedGateway struct {
	inner Gateway
	cache *expirable.LRU[string, []model.BusyInterval]
}

// NewCachedGateway decorates inner with a TTL cache. A non-positive ttl
// disables caching by passing every call through.
func NewCachedGateway(inner Gateway, ttl time.Duration) *CachedGateway {
	var cache *expirable.LRU[string, []model.BusyInterval]
	if ttl > 0 {
		cache = expirable.NewLRU[string, []model.BusyInterval](cacheMaxEntries, nil, ttl)
	}
	return &CachedGateway{inner: inner, cache: cache}
}

// FetchBusyIntervals serves from cache when a fresh entry exists, otherwise
// delegates and stores the result.
func (g *CachedGateway) FetchBusyIntervals(ctx context.Context, userID string, from, to time.Time) ([]model.BusyInterval, error) {
	if g.cache == nil {
		return g.inner.FetchBusyIntervals(ctx, userID, from, to)
	}

	key := cacheKey(userID, from, to)
	if cached, ok := g.cache.Get(key); ok {
		return cached, nil
	}

	intervals, err := g.inner.FetchBusyIntervals(ctx, userID, from, to)
	if err != nil {
		return nil, err
	}
	g.cache.Add(key, intervals)
	return intervals, nil
}

// CreateEvent passes writes straight through; only fetches are cached.
func (g *CachedGateway) CreateEvent(ctx context.Context, userID string, event model.EventDescriptor) error {
	writer, ok := g.inner.(EventWriter)
	if !ok {
		return ErrEventsNotSupported
	}
	return writer.CreateEvent(ctx, userID, event)
}

func cacheKey(userID string, from, to time.Time) string {
	return fmt.Sprintf("%s|%d|%d", userID, from.Unix(), to.Unix())
}
