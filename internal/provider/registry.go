package provider

import (
	"errors"
	"fmt"

	"mutual-availability/internal/model"
)

// ErrNoProvidersConfigured is returned when a registry would be empty.
var ErrNoProvidersConfigured = errors.New("no calendar providers configured")

// Registry resolves calendar backends by provider key. It is built once at
// construction time; lookups at call time are plain map reads.
type Registry struct {
	gateways map[model.CalendarProvider]Gateway
}

// NewRegistry builds a registry from the given gateway set. Nil gateways are
// skipped so a partially configured deployment still serves the backends it
// has; an entirely empty set is an error.
func NewRegistry(gateways map[model.CalendarProvider]Gateway) (*Registry, error) {
	resolved := make(map[model.CalendarProvider]Gateway, len(gateways))
	for key, gw := range gateways {
		if gw == nil {
			continue
		}
		resolved[key] = gw
	}
	if len(resolved) == 0 {
		return nil, ErrNoProvidersConfigured
	}
	return &Registry{gateways: resolved}, nil
}

// Lookup returns the gateway registered for the given provider.
func (r *Registry) Lookup(p model.CalendarProvider) (Gateway, error) {
	gw, ok := r.gateways[p]
	if !ok {
		return nil, fmt.Errorf("no gateway registered for provider %q", p)
	}
	return gw, nil
}

// Providers lists the registered provider keys.
func (r *Registry) Providers() []model.CalendarProvider {
	keys := make([]model.CalendarProvider, 0, len(r.gateways))
	for k := range r.gateways {
		keys = append(keys, k)
	}
	return keys
}

// Has reports whether the provider has a registered gateway.
func (r *Registry) Has(p model.CalendarProvider) bool {
	_, ok := r.gateways[p]
	return ok
}
