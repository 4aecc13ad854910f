// Package gcal adapts the Google Calendar client to the provider.Gateway
// interface consumed by the availability orchestrator.
package gcal

import (
	"context"
	"fmt"
	"time"

	"mutual-availability/internal/model"
	"mutual-availability/internal/provider"
	pkgLog "mutual-availability/pkg/log"

	"mutual-availability/pkg/gcalendar"
)

// CalendarClient abstracts the Google Calendar client for mocking.
type CalendarClient interface {
	ListBusy(ctx context.Context, req gcalendar.ListBusyRequest) ([]gcalendar.BusyPeriod, error)
	InsertEvent(ctx context.Context, req gcalendar.InsertEventRequest) (*gcalendar.InsertedEvent, error)
}

// CalendarResolver maps a user ID to that user's Google calendar ID.
// Deployments that share one service calendar can return "primary" for all.
type CalendarResolver func(userID string) string

type Gateway struct {
	client  CalendarClient
	resolve CalendarResolver
	l       pkgLog.Logger
}

// New creates a Google calendar gateway. A nil resolver maps everyone to
// the primary calendar.
func New(client CalendarClient, resolve CalendarResolver, l pkgLog.Logger) *Gateway {
	if resolve == nil {
		resolve = func(string) string { return "primary" }
	}
	return &Gateway{client: client, resolve: resolve, l: l}
}

// FetchBusyIntervals queries FreeBusy for the user's calendar and converts
// the busy periods into the engine's BusyInterval shape.
func (g *Gateway) FetchBusyIntervals(ctx context.Context, userID string, from, to time.Time) ([]model.BusyInterval, error) {
	calendarID := g.resolve(userID)

	periods, err := g.client.ListBusy(ctx, gcalendar.ListBusyRequest{
		CalendarID: calendarID,
		TimeMin:    from,
		TimeMax:    to,
	})
	if err != nil {
		return nil, fmt.Errorf("google freebusy for user %s: %w", userID, err)
	}

	intervals := make([]model.BusyInterval, 0, len(periods))
	for _, p := range periods {
		intervals = append(intervals, model.BusyInterval{
			Start:    p.Start,
			End:      p.End,
			SourceID: p.CalendarID,
		})
	}
	g.l.Debugf(ctx, "gcal: fetched %d busy intervals for user %s", len(intervals), userID)
	return intervals, nil
}

// CreateEvent forwards a caller-built descriptor to the user's calendar.
func (g *Gateway) CreateEvent(ctx context.Context, userID string, event model.EventDescriptor) error {
	calendarID := event.CalendarID
	if calendarID == "" {
		calendarID = g.resolve(userID)
	}

	_, err := g.client.InsertEvent(ctx, gcalendar.InsertEventRequest{
		CalendarID:  calendarID,
		Summary:     event.Title,
		Description: event.Description,
		StartTime:   event.Start,
		EndTime:     event.End,
	})
	if err != nil {
		return fmt.Errorf("google event insert for user %s: %w", userID, err)
	}
	return nil
}

var _ provider.Gateway = (*Gateway)(nil)
var _ provider.EventWriter = (*Gateway)(nil)
