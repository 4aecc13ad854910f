package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"mutual-availability/internal/model"
	"mutual-availability/internal/preference"
	"mutual-availability/internal/preference/repository/memory"
	"mutual-availability/internal/preference/usecase"
)

type noopLogger struct{}

func (noopLogger) Debug(ctx context.Context, args ...any)                 {}
func (noopLogger) Debugf(ctx context.Context, format string, args ...any) {}
func (noopLogger) Info(ctx context.Context, args ...any)                  {}
func (noopLogger) Infof(ctx context.Context, format string, args ...any)  {}
func (noopLogger) Warn(ctx context.Context, args ...any)                  {}
func (noopLogger) Warnf(ctx context.Context, format string, args ...any)  {}
func (noopLogger) Error(ctx context.Context, args ...any)                 {}
func (noopLogger) Errorf(ctx context.Context, format string, args ...any) {}
func (noopLogger) Fatal(ctx context.Context, args ...any)                 {}
func (noopLogger) Fatalf(ctx context.Context, format string, args ...any) {}

func newUseCase() preference.UseCase {
	return usecase.New(noopLogger{}, memory.New())
}

func TestGetDefaultsWhenUnstored(t *testing.T) {
	uc := newUseCase()

	out, err := uc.Get(context.Background(), "sub-1")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if len(out.Preferences.DayPreferences) != 5 {
		t.Fatalf("expected 5 default day preferences, got %d", len(out.Preferences.DayPreferences))
	}
	if !out.Preferences.UseExternalCalendars {
		t.Error("defaults should consult external calendars")
	}
}

func TestUpdateRoundTrip(t *testing.T) {
	uc := newUseCase()
	ctx := context.Background()

	prefs := model.SchedulingPreferences{
		DayPreferences: []model.DayPreference{
			{Weekday: time.Wednesday, Windows: []model.TimeOfDayWindow{{StartHour: 10, EndHour: 12}}},
		},
		MinimumAdvanceNoticeHours: 48,
	}
	if _, err := uc.Update(ctx, preference.UpdateInput{SubjectID: "sub-1", Preferences: prefs}); err != nil {
		t.Fatalf("Update: %v", err)
	}

	out, err := uc.Get(ctx, "sub-1")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if out.Preferences.MinimumAdvanceNoticeHours != 48 {
		t.Errorf("MinimumAdvanceNoticeHours = %d, want 48", out.Preferences.MinimumAdvanceNoticeHours)
	}
	if len(out.Preferences.DayPreferences) != 1 || out.Preferences.DayPreferences[0].Weekday != time.Wednesday {
		t.Errorf("stored day preferences = %+v", out.Preferences.DayPreferences)
	}
}

func TestUpdateRejectsInvalidWindow(t *testing.T) {
	uc := newUseCase()

	cases := []model.TimeOfDayWindow{
		{StartHour: 17, EndHour: 9},                 // inverted
		{StartHour: 9, EndHour: 9},                  // empty
		{StartHour: -1, EndHour: 10},                // negative hour
		{StartHour: 9, EndHour: 25},                 // past midnight
		{StartHour: 9, StartMinute: 75, EndHour: 10}, // bad minute
	}
	for _, w := range cases {
		_, err := uc.Update(context.Background(), preference.UpdateInput{
			SubjectID: "sub-1",
			Preferences: model.SchedulingPreferences{
				DayPreferences: []model.DayPreference{{Weekday: time.Monday, Windows: []model.TimeOfDayWindow{w}}},
			},
		})
		if !errors.Is(err, preference.ErrInvalidWindow) {
			t.Errorf("window %+v: err = %v, want ErrInvalidWindow", w, err)
		}
	}
}

func TestAddCommitment(t *testing.T) {
	uc := newUseCase()
	ctx := context.Background()

	out, err := uc.AddCommitment(ctx, preference.AddCommitmentInput{
		SubjectID: "sub-1",
		Weekday:   2, // Tuesday
		StartHour: 18,
		EndHour:   19,
	})
	if err != nil {
		t.Fatalf("AddCommitment: %v", err)
	}
	if out.Commitment.ID == "" {
		t.Fatal("commitment was not assigned an ID")
	}
	if out.Commitment.Weekday != time.Tuesday {
		t.Errorf("Weekday = %v, want Tuesday", out.Commitment.Weekday)
	}

	stored, err := uc.Get(ctx, "sub-1")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if len(stored.Preferences.RecurringCommitments) != 1 {
		t.Fatalf("expected 1 stored commitment, got %d", len(stored.Preferences.RecurringCommitments))
	}
}

func TestAddCommitmentRejectsBadWeekday(t *testing.T) {
	uc := newUseCase()

	for _, wd := range []int{-1, 7} {
		_, err := uc.AddCommitment(context.Background(), preference.AddCommitmentInput{
			SubjectID: "sub-1",
			Weekday:   wd,
			StartHour: 18,
			EndHour:   19,
		})
		if !errors.Is(err, preference.ErrInvalidWeekday) {
			t.Errorf("weekday %d: err = %v, want ErrInvalidWeekday", wd, err)
		}
	}
}

func TestUpdateCommitment(t *testing.T) {
	uc := newUseCase()
	ctx := context.Background()

	added, err := uc.AddCommitment(ctx, preference.AddCommitmentInput{
		SubjectID: "sub-1", Weekday: 2, StartHour: 18, EndHour: 19,
	})
	if err != nil {
		t.Fatalf("AddCommitment: %v", err)
	}

	updated, err := uc.UpdateCommitment(ctx, preference.UpdateCommitmentInput{
		SubjectID:    "sub-1",
		CommitmentID: added.Commitment.ID,
		Weekday:      4, // Thursday
		StartHour:    7,
		EndHour:      8,
	})
	if err != nil {
		t.Fatalf("UpdateCommitment: %v", err)
	}
	if updated.Commitment.ID != added.Commitment.ID {
		t.Errorf("ID changed on update: %q -> %q", added.Commitment.ID, updated.Commitment.ID)
	}
	if updated.Commitment.Weekday != time.Thursday || updated.Commitment.StartHour != 7 {
		t.Errorf("commitment not rewritten: %+v", updated.Commitment)
	}

	stored, _ := uc.Get(ctx, "sub-1")
	if len(stored.Preferences.RecurringCommitments) != 1 {
		t.Fatalf("expected 1 stored commitment, got %d", len(stored.Preferences.RecurringCommitments))
	}
	if stored.Preferences.RecurringCommitments[0].Weekday != time.Thursday {
		t.Errorf("stored commitment = %+v", stored.Preferences.RecurringCommitments[0])
	}
}

func TestUpdateCommitmentNotFound(t *testing.T) {
	uc := newUseCase()

	_, err := uc.UpdateCommitment(context.Background(), preference.UpdateCommitmentInput{
		SubjectID:    "sub-1",
		CommitmentID: "missing",
		Weekday:      1,
		StartHour:    9,
		EndHour:      10,
	})
	if !errors.Is(err, preference.ErrCommitmentNotFound) {
		t.Fatalf("err = %v, want ErrCommitmentNotFound", err)
	}
}

func TestDeleteCommitment(t *testing.T) {
	uc := newUseCase()
	ctx := context.Background()

	added, err := uc.AddCommitment(ctx, preference.AddCommitmentInput{
		SubjectID: "sub-1", Weekday: 2, StartHour: 18, EndHour: 19,
	})
	if err != nil {
		t.Fatalf("AddCommitment: %v", err)
	}

	if err := uc.DeleteCommitment(ctx, "sub-1", added.Commitment.ID); err != nil {
		t.Fatalf("DeleteCommitment: %v", err)
	}
	stored, _ := uc.Get(ctx, "sub-1")
	if len(stored.Preferences.RecurringCommitments) != 0 {
		t.Fatalf("expected 0 commitments after delete, got %d", len(stored.Preferences.RecurringCommitments))
	}

	if err := uc.DeleteCommitment(ctx, "sub-1", added.Commitment.ID); !errors.Is(err, preference.ErrCommitmentNotFound) {
		t.Fatalf("second delete err = %v, want ErrCommitmentNotFound", err)
	}
}

func TestPreferencesFor(t *testing.T) {
	uc := newUseCase()
	ctx := context.Background()

	prefs, err := uc.PreferencesFor(ctx, "sub-1")
	if err != nil {
		t.Fatalf("PreferencesFor: %v", err)
	}
	if len(prefs.DayPreferences) != 5 {
		t.Errorf("expected default preferences, got %+v", prefs)
	}
}
