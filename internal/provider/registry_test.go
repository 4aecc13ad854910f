package provider_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"mutual-availability/internal/model"
	"mutual-availability/internal/provider"
)

type stubGateway struct {
	fetchFunc func(ctx context.Context, userID string, from, to time.Time) ([]model.BusyInterval, error)
	calls     int
}

func (s *stubGateway) FetchBusyIntervals(ctx context.Context, userID string, from, to time.Time) ([]model.BusyInterval, error) {
	s.calls++
	if s.fetchFunc != nil {
		return s.fetchFunc(ctx, userID, from, to)
	}
	return nil, nil
}

func TestNewRegistry(t *testing.T) {
	t.Run("Empty Set Rejected", func(t *testing.T) {
		_, err := provider.NewRegistry(nil)
		if !errors.Is(err, provider.ErrNoProvidersConfigured) {
			t.Errorf("expected ErrNoProvidersConfigured, got %v", err)
		}
	})

	t.Run("Nil Gateways Skipped", func(t *testing.T) {
		reg, err := provider.NewRegistry(map[model.CalendarProvider]provider.Gateway{
			model.ProviderGoogle:  &stubGateway{},
			model.ProviderOutlook: nil,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !reg.Has(model.ProviderGoogle) {
			t.Errorf("google gateway missing")
		}
		if reg.Has(model.ProviderOutlook) {
			t.Errorf("nil outlook gateway should be skipped")
		}
	})

	t.Run("Lookup Unknown Provider Fails", func(t *testing.T) {
		reg, _ := provider.NewRegistry(map[model.CalendarProvider]provider.Gateway{
			model.ProviderGoogle: &stubGateway{},
		})
		if _, err := reg.Lookup(model.ProviderApple); err == nil {
			t.Errorf("expected error for unregistered provider")
		}
	})
}

func TestCachedGateway(t *testing.T) {
	from := time.Date(2024, 5, 6, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 0, 7)

	t.Run("Second Fetch Served From Cache", func(t *testing.T) {
		stub := &stubGateway{
			fetchFunc: func(context.Context, string, time.Time, time.Time) ([]model.BusyInterval, error) {
				return []model.BusyInterval{{Start: from, End: from.Add(time.Hour)}}, nil
			},
		}
		gw := provider.NewCachedGateway(stub, time.Minute)

		first, err := gw.FetchBusyIntervals(context.Background(), "u1", from, to)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		second, err := gw.FetchBusyIntervals(context.Background(), "u1", from, to)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if stub.calls != 1 {
			t.Errorf("expected 1 upstream call, got %d", stub.calls)
		}
		if len(first) != len(second) {
			t.Errorf("cached result differs from fetched result")
		}
	})

	t.Run("Different Users Not Shared", func(t *testing.T) {
		stub := &stubGateway{}
		gw := provider.NewCachedGateway(stub, time.Minute)
		gw.FetchBusyIntervals(context.Background(), "u1", from, to)
		gw.FetchBusyIntervals(context.Background(), "u2", from, to)
		if stub.calls != 2 {
			t.Errorf("expected per-user cache keys, got %d upstream calls", stub.calls)
		}
	})

	t.Run("Errors Not Cached", func(t *testing.T) {
		fail := errors.New("token expired")
		stub := &stubGateway{
			fetchFunc: func(context.Context, string, time.Time, time.Time) ([]model.BusyInterval, error) {
				return nil, fail
			},
		}
		gw := provider.NewCachedGateway(stub, time.Minute)
		gw.FetchBusyIntervals(context.Background(), "u1", from, to)
		gw.FetchBusyIntervals(context.Background(), "u1", from, to)
		if stub.calls != 2 {
			t.Errorf("errors must pass through, got %d upstream calls", stub.calls)
		}
	})

	t.Run("Zero TTL Disables Cache", func(t *testing.T) {
		stub := &stubGateway{}
		gw := provider.NewCachedGateway(stub, 0)
		gw.FetchBusyIntervals(context.Background(), "u1", from, to)
		gw.FetchBusyIntervals(context.Background(), "u1", from, to)
		if stub.calls != 2 {
			t.Errorf("expected passthrough with zero TTL, got %d calls", stub.calls)
		}
	})
}
