// Package provider defines the calendar-backend boundary of the availability
// engine. Each external backend supplies a Gateway; the orchestrator talks to
// gateways only through the Registry and never parses provider payloads.
package provider

import (
	"context"
	"time"

	"mutual-availability/internal/model"
)

// Gateway fetches raw busy intervals for one user from one calendar backend.
// Implementations own their authentication and token refresh.
type Gateway interface {
	// FetchBusyIntervals returns the user's obstructions inside [from, to).
	FetchBusyIntervals(ctx context.Context, userID string, from, to time.Time) ([]model.BusyInterval, error)
}

// EventWriter is implemented by gateways that accept a caller-built event
// descriptor. The engine only passes descriptors through, it never builds one.
type EventWriter interface {
	CreateEvent(ctx context.Context, userID string, event model.EventDescriptor) error
}
