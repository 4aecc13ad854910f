package usecase

import (
	"context"

	"mutual-availability/internal/availability"
)

// FindMutualAvailability computes open time shared by an explicit set of
// users. Busy data from every user is pooled before merging, so any one
// user's obstruction blocks the slot for all. Preferences come from the
// caller or fall back to the default business-hours set.
func (uc *implUseCase) FindMutualAvailability(ctx context.Context, input availability.FindMutualInput) (availability.GetAvailabilityOutput, error) {
	if err := validateRange(input.StartDate, input.EndDate); err != nil {
		return availability.GetAvailabilityOutput{}, err
	}
	if err := validateDuration(input.DurationMinutes); err != nil {
		return availability.GetAvailabilityOutput{}, err
	}
	if len(input.UserIDs) == 0 {
		return availability.GetAvailabilityOutput{}, availability.ErrSubjectNotFound
	}

	prefs := availability.DefaultPreferences()
	if input.Preferences != nil {
		prefs = *input.Preferences
	}

	slots := uc.compute(ctx, input.UserIDs, uc.registry.Providers(), prefs, input.StartDate, input.EndDate, input.DurationMinutes)
	return availability.GetAvailabilityOutput{Slots: slots}, nil
}
