package usecase

import (
	"context"
	"errors"

	"mutual-availability/internal/availability"
	"mutual-availability/internal/model"
	"mutual-availability/internal/preference"
	"mutual-availability/internal/preference/repository"
)

// Get returns the stored preferences, falling back to the default
// business-hours set for subjects that never saved any.
func (uc *implUseCase) Get(ctx context.Context, subjectID string) (preference.GetOutput, error) {
	prefs, err := uc.repo.Get(ctx, subjectID)
	if errors.Is(err, repository.ErrNotFound) {
		return preference.GetOutput{SubjectID: subjectID, Preferences: availability.DefaultPreferences()}, nil
	}
	if err != nil {
		uc.l.Errorf(ctx, "preference: get %q: %v", subjectID, err)
		return preference.GetOutput{}, err
	}
	return preference.GetOutput{SubjectID: subjectID, Preferences: prefs}, nil
}

// Update replaces the subject's preference set after validating every window.
func (uc *implUseCase) Update(ctx context.Context, input preference.UpdateInput) (preference.GetOutput, error) {
	for _, dp := range input.Preferences.DayPreferences {
		for _, w := range dp.Windows {
			if err := validateWindow(w.StartHour, w.StartMinute, w.EndHour, w.EndMinute); err != nil {
				return preference.GetOutput{}, err
			}
		}
	}
	for _, c := range input.Preferences.RecurringCommitments {
		if err := validateWindow(c.StartHour, c.StartMinute, c.EndHour, c.EndMinute); err != nil {
			return preference.GetOutput{}, err
		}
	}

	if err := uc.repo.Put(ctx, input.SubjectID, input.Preferences); err != nil {
		uc.l.Errorf(ctx, "preference: update %q: %v", input.SubjectID, err)
		return preference.GetOutput{}, err
	}
	return preference.GetOutput{SubjectID: input.SubjectID, Preferences: input.Preferences}, nil
}

// PreferencesFor adapts Get for the availability engine.
func (uc *implUseCase) PreferencesFor(ctx context.Context, subjectID string) (model.SchedulingPreferences, error) {
	out, err := uc.Get(ctx, subjectID)
	if err != nil {
		return model.SchedulingPreferences{}, err
	}
	return out.Preferences, nil
}

// validateWindow enforces end-after-start within a single day.
func validateWindow(startHour, startMinute, endHour, endMinute int) error {
	start := startHour*60 + startMinute
	end := endHour*60 + endMinute
	if startHour < 0 || endHour > 24 || startMinute < 0 || startMinute > 59 || endMinute < 0 || endMinute > 59 {
		return preference.ErrInvalidWindow
	}
	if end <= start || end > 24*60 {
		return preference.ErrInvalidWindow
	}
	return nil
}
