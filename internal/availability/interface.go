package availability

import (
	"context"

	"mutual-availability/internal/model"
)

// UseCase is the entry point of the mutual-availability engine.
type UseCase interface {
	// GetAvailability computes rated open slots for a subject over a date range.
	GetAvailability(ctx context.Context, input GetAvailabilityInput) (GetAvailabilityOutput, error)

	// GetSlotsForDay runs the same pipeline restricted to a single date.
	GetSlotsForDay(ctx context.Context, input GetSlotsForDayInput) (GetSlotsForDayOutput, error)

	// FindMutualAvailability intersects open time across an explicit list of
	// users, merging their busy data before filtering. Without caller-supplied
	// preferences a default business-hours preference set is used.
	FindMutualAvailability(ctx context.Context, input FindMutualInput) (GetAvailabilityOutput, error)

	// ScheduleEvent forwards a caller-built event descriptor to one provider.
	ScheduleEvent(ctx context.Context, input ScheduleEventInput) error
}

// SubjectDirectory resolves subject identifiers (user or relationship IDs)
// to their member users, state and enabled providers. Identity management
// itself lives outside the engine.
type SubjectDirectory interface {
	Resolve(ctx context.Context, subjectID string) (model.Subject, error)
}

// PreferenceSource supplies the scheduling preferences for a subject when
// the caller does not hand them in directly.
type PreferenceSource interface {
	PreferencesFor(ctx context.Context, subjectID string) (model.SchedulingPreferences, error)
}
