package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"mutual-availability/internal/availability"
	"mutual-availability/internal/availability/usecase"
	"mutual-availability/internal/model"
	"mutual-availability/internal/provider"
)

func newMutualFixture(t *testing.T, gw provider.Gateway) availability.UseCase {
	t.Helper()
	registry, err := provider.NewRegistry(map[model.CalendarProvider]provider.Gateway{
		model.ProviderGoogle: gw,
	})
	if err != nil {
		t.Fatalf("failed to build registry: %v", err)
	}
	dir := &mockDirectory{}
	prefSource := &mockPreferenceSource{}
	return usecase.New(&mockLogger{}, registry, dir, prefSource, time.Second, 30).WithClock(fixedNow)
}

func TestFindMutualAvailability(t *testing.T) {
	t.Run("Empty User List Rejected", func(t *testing.T) {
		uc := newMutualFixture(t, &mockGateway{})
		_, err := uc.FindMutualAvailability(context.Background(), availability.FindMutualInput{
			StartDate: monday, EndDate: friday, DurationMinutes: 60,
		})
		if !errors.Is(err, availability.ErrSubjectNotFound) {
			t.Errorf("expected ErrSubjectNotFound, got %v", err)
		}
	})

	t.Run("Default Business Hours Applied", func(t *testing.T) {
		uc := newMutualFixture(t, &mockGateway{})
		out, err := uc.FindMutualAvailability(context.Background(), availability.FindMutualInput{
			UserIDs: []string{"alice", "bob"}, StartDate: monday, EndDate: friday, DurationMinutes: 60,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		// Mon-Fri with a Fri end date: 5 business days, 15 one-hour slots each.
		if len(out.Slots) != 5 {
			t.Fatalf("expected 5 weekdays, got %d", len(out.Slots))
		}
		for day, slots := range out.Slots {
			if len(slots) != 15 {
				t.Errorf("%s: expected 15 slots, got %d", day, len(slots))
			}
		}
	})

	t.Run("Any Users Obstruction Blocks The Slot", func(t *testing.T) {
		gw := &mockGateway{
			fetchFunc: func(ctx context.Context, userID string, from, to time.Time) ([]model.BusyInterval, error) {
				if userID == "bob" {
					return []model.BusyInterval{{
						Start: monday.Add(12 * time.Hour),
						End:   monday.Add(13 * time.Hour),
					}}, nil
				}
				return nil, nil
			},
		}
		uc := newMutualFixture(t, gw)
		out, err := uc.FindMutualAvailability(context.Background(), availability.FindMutualInput{
			UserIDs: []string{"alice", "bob"}, StartDate: monday, EndDate: friday, DurationMinutes: 60,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		for _, s := range out.Slots["2024-05-06"] {
			if s.Start.Hour() == 12 || (s.Start.Hour() == 11 && s.Start.Minute() == 30) {
				t.Errorf("slot at %v conflicts with bob's calendar", s.Start)
			}
		}
	})

	t.Run("Caller Preferences Override Defaults", func(t *testing.T) {
		uc := newMutualFixture(t, &mockGateway{})
		prefs := mondayPrefs()
		out, err := uc.FindMutualAvailability(context.Background(), availability.FindMutualInput{
			UserIDs: []string{"alice"}, StartDate: monday, EndDate: friday, DurationMinutes: 60,
			Preferences: &prefs,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(out.Slots) != 1 {
			t.Errorf("expected only Monday under caller preferences, got %d days", len(out.Slots))
		}
	})
}

func TestScheduleEvent(t *testing.T) {
	event := model.EventDescriptor{
		Title: "Dinner",
		Start: monday.Add(19 * time.Hour),
		End:   monday.Add(21 * time.Hour),
	}

	t.Run("Forwards To Gateway", func(t *testing.T) {
		gw := &mockEventGateway{}
		uc := newMutualFixture(t, gw)
		err := uc.ScheduleEvent(context.Background(), availability.ScheduleEventInput{
			UserID: "alice", Provider: model.ProviderGoogle, Event: event,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if gw.created != 1 {
			t.Errorf("expected 1 event write, got %d", gw.created)
		}
	})

	t.Run("Invalid Event Range Rejected", func(t *testing.T) {
		gw := &mockEventGateway{}
		uc := newMutualFixture(t, gw)
		bad := event
		bad.End = bad.Start
		err := uc.ScheduleEvent(context.Background(), availability.ScheduleEventInput{
			UserID: "alice", Provider: model.ProviderGoogle, Event: bad,
		})
		if !errors.Is(err, availability.ErrInvalidRange) {
			t.Errorf("expected ErrInvalidRange, got %v", err)
		}
	})

	t.Run("Read Only Gateway Rejected", func(t *testing.T) {
		uc := newMutualFixture(t, &mockGateway{})
		err := uc.ScheduleEvent(context.Background(), availability.ScheduleEventInput{
			UserID: "alice", Provider: model.ProviderGoogle, Event: event,
		})
		if !errors.Is(err, availability.ErrProviderWriteOnly) {
			t.Errorf("expected ErrProviderWriteOnly, got %v", err)
		}
	})

	t.Run("Write Failure Surfaces", func(t *testing.T) {
		fail := errors.New("quota exceeded")
		gw := &mockEventGateway{
			createFunc: func(ctx context.Context, userID string, event model.EventDescriptor) error {
				return fail
			},
		}
		uc := newMutualFixture(t, gw)
		err := uc.ScheduleEvent(context.Background(), availability.ScheduleEventInput{
			UserID: "alice", Provider: model.ProviderGoogle, Event: event,
		})
		if !errors.Is(err, fail) {
			t.Errorf("expected write error to surface, got %v", err)
		}
	})
}
