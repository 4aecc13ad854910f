package usecase

import (
	"context"

	"mutual-availability/internal/availability"
	"mutual-availability/internal/availability/engine"
)

// GetSlotsForDay runs the availability pipeline restricted to one date.
func (uc *implUseCase) GetSlotsForDay(ctx context.Context, input availability.GetSlotsForDayInput) (availability.GetSlotsForDayOutput, error) {
	if err := validateDuration(input.DurationMinutes); err != nil {
		return availability.GetSlotsForDayOutput{}, err
	}

	subject, err := uc.resolveSubject(ctx, input.SubjectID)
	if err != nil {
		return availability.GetSlotsForDayOutput{}, err
	}

	prefs, err := uc.resolvePreferences(ctx, input.SubjectID, input.Preferences)
	if err != nil {
		return availability.GetSlotsForDayOutput{}, err
	}

	day := dateOnly(input.Date)
	slots := uc.compute(ctx, subject.UserIDs, subject.Providers, prefs, day, day, input.DurationMinutes)

	key := day.Format(engine.DateFormat)
	return availability.GetSlotsForDayOutput{
		Date:  key,
		Slots: slots[key],
	}, nil
}
