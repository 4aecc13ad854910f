package usecase

import (
	"context"

	"mutual-availability/internal/availability"
	"mutual-availability/internal/provider"
)

// ScheduleEvent hands a caller-built event descriptor to one provider
// gateway. The engine builds nothing itself, and unlike busy-data fetches a
// write failure is surfaced to the caller.
func (uc *implUseCase) ScheduleEvent(ctx context.Context, input availability.ScheduleEventInput) error {
	if !input.Event.End.After(input.Event.Start) {
		return availability.ErrInvalidRange
	}

	gw, err := uc.registry.Lookup(input.Provider)
	if err != nil {
		return err
	}

	writer, ok := gw.(provider.EventWriter)
	if !ok {
		return availability.ErrProviderWriteOnly
	}

	if err := writer.CreateEvent(ctx, input.UserID, input.Event); err != nil {
		uc.l.Errorf(ctx, "availability: event write to %s failed for user %s: %v", input.Provider, input.UserID, err)
		return err
	}
	return nil
}
