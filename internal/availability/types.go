package availability

import (
	"time"

	"mutual-availability/internal/model"
)

// Requested meeting durations outside these bounds are rejected up front.
const (
	MinDurationMinutes = 15
	MaxDurationMinutes = 720
)

// --- UseCase Inputs ---

type GetAvailabilityInput struct {
	SubjectID       string
	StartDate       time.Time
	EndDate         time.Time
	DurationMinutes int

	// Preferences overrides the subject's stored preference set when non-nil.
	Preferences *model.SchedulingPreferences
}

type GetSlotsForDayInput struct {
	SubjectID       string
	Date            time.Time
	DurationMinutes int
	Preferences     *model.SchedulingPreferences
}

type FindMutualInput struct {
	UserIDs         []string
	StartDate       time.Time
	EndDate         time.Time
	DurationMinutes int

	// Preferences is optional; nil selects the default business-hours set.
	Preferences *model.SchedulingPreferences
}

type ScheduleEventInput struct {
	UserID   string
	Provider model.CalendarProvider
	Event    model.EventDescriptor
}

// --- UseCase Outputs ---

// GetAvailabilityOutput maps each calendar day (DateFormat key) to its rated
// slots ordered by start time. Days with no open slots are absent.
type GetAvailabilityOutput struct {
	Slots map[string][]model.RatedSlot
}

type GetSlotsForDayOutput struct {
	Date  string
	Slots []model.RatedSlot
}
