package usecase

import (
	"context"
	"sort"
	"time"

	"mutual-availability/internal/availability"
	"mutual-availability/internal/availability/engine"
	"mutual-availability/internal/model"
)

// GetAvailability runs the full pipeline for one subject: validate, fetch
// busy data concurrently, merge per day, generate candidates, filter, rate.
func (uc *implUseCase) GetAvailability(ctx context.Context, input availability.GetAvailabilityInput) (availability.GetAvailabilityOutput, error) {
	if err := validateRange(input.StartDate, input.EndDate); err != nil {
		return availability.GetAvailabilityOutput{}, err
	}
	if err := validateDuration(input.DurationMinutes); err != nil {
		return availability.GetAvailabilityOutput{}, err
	}

	subject, err := uc.resolveSubject(ctx, input.SubjectID)
	if err != nil {
		return availability.GetAvailabilityOutput{}, err
	}

	prefs, err := uc.resolvePreferences(ctx, input.SubjectID, input.Preferences)
	if err != nil {
		return availability.GetAvailabilityOutput{}, err
	}

	slots := uc.compute(ctx, subject.UserIDs, subject.Providers, prefs, input.StartDate, input.EndDate, input.DurationMinutes)
	return availability.GetAvailabilityOutput{Slots: slots}, nil
}

// compute is the shared pipeline behind every availability operation. All
// stages after the fetch are pure and single-threaded; completion order of
// the fetches can never reach the output because merging sorts.
func (uc *implUseCase) compute(
	ctx context.Context,
	userIDs []string,
	providers []model.CalendarProvider,
	prefs model.SchedulingPreferences,
	startDate, endDate time.Time,
	durationMinutes int,
) map[string][]model.RatedSlot {
	var raw []model.BusyInterval
	if prefs.UseExternalCalendars {
		raw = uc.fetchBusyIntervals(ctx, userIDs, providers, startDate, endOfRange(endDate))
	}

	busyByDay := make(map[string][]model.BusyInterval)
	for day, intervals := range engine.GroupByDay(raw) {
		busyByDay[day] = engine.Merge(intervals)
	}

	candidatesByDay := engine.GenerateCandidates(startDate, endDate, prefs, durationMinutes, uc.stepMinutes)
	now := uc.now()

	result := make(map[string][]model.RatedSlot)
	for day, candidates := range candidatesByDay {
		dayBusy := busyByDay[day]
		kept := engine.FilterConflicts(candidates, dayBusy, prefs.RecurringCommitments, now, prefs.MinimumAdvanceNoticeHours)
		if len(kept) == 0 {
			continue
		}
		sort.Slice(kept, func(i, j int) bool { return kept[i].Start.Before(kept[j].Start) })

		rated := make([]model.RatedSlot, 0, len(kept))
		for _, slot := range kept {
			rated = append(rated, model.RatedSlot{
				Start:  slot.Start,
				End:    slot.End,
				Rating: engine.Rate(slot, dayBusy),
			})
		}
		result[day] = rated
	}
	return result
}

func (uc *implUseCase) resolveSubject(ctx context.Context, subjectID string) (model.Subject, error) {
	subject, err := uc.subjects.Resolve(ctx, subjectID)
	if err != nil {
		uc.l.Warnf(ctx, "availability: subject %q not resolvable: %v", subjectID, err)
		return model.Subject{}, availability.ErrSubjectNotFound
	}
	if len(subject.UserIDs) == 0 || !subject.Active() {
		return model.Subject{}, availability.ErrSubjectNotFound
	}
	return subject, nil
}

func (uc *implUseCase) resolvePreferences(ctx context.Context, subjectID string, override *model.SchedulingPreferences) (model.SchedulingPreferences, error) {
	if override != nil {
		return *override, nil
	}
	prefs, err := uc.prefs.PreferencesFor(ctx, subjectID)
	if err != nil {
		uc.l.Warnf(ctx, "availability: no stored preferences for %q, using defaults: %v", subjectID, err)
		return availability.DefaultPreferences(), nil
	}
	return prefs, nil
}

func validateRange(startDate, endDate time.Time) error {
	if !dateOnly(endDate).After(dateOnly(startDate)) {
		return availability.ErrInvalidRange
	}
	return nil
}

func validateDuration(durationMinutes int) error {
	if durationMinutes < availability.MinDurationMinutes || durationMinutes > availability.MaxDurationMinutes {
		return availability.ErrInvalidDuration
	}
	return nil
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// endOfRange is the exclusive upper fetch bound: midnight after the last day.
func endOfRange(endDate time.Time) time.Time {
	return dateOnly(endDate).AddDate(0, 0, 1)
}
