package model

import "time"

// Rating classifies how desirable a computed slot is.
type Rating string

const (
	RatingExcellent Rating = "excellent"
	RatingGood      Rating = "good"
	RatingFair      Rating = "fair"
)

// BusyInterval is one obstruction pulled from an external calendar.
// Intervals with End <= Start are discarded on ingestion, not treated as errors.
type BusyInterval struct {
	Start    time.Time
	End      time.Time
	SourceID string // Provider-side identifier of the originating calendar/account
}

// Duration returns the length of the interval.
func (b BusyInterval) Duration() time.Duration {
	return b.End.Sub(b.Start)
}

// TimeOfDayWindow is a preferred range within a single day. Windows never
// span midnight: EndHour:EndMinute must be after StartHour:StartMinute.
type TimeOfDayWindow struct {
	StartHour   int
	StartMinute int
	EndHour     int
	EndMinute   int
}

// StartMinuteOfDay returns the window start as minutes from midnight.
func (w TimeOfDayWindow) StartMinuteOfDay() int {
	return w.StartHour*60 + w.StartMinute
}

// EndMinuteOfDay returns the window end as minutes from midnight.
func (w TimeOfDayWindow) EndMinuteOfDay() int {
	return w.EndHour*60 + w.EndMinute
}

// DayPreference lists the preferred windows for one weekday.
// Weekdays without a DayPreference have no availability at all.
type DayPreference struct {
	Weekday time.Weekday
	Windows []TimeOfDayWindow
}

// RecurringCommitment is a standing weekly obstruction independent of any
// calendar provider, e.g. "gym every Tuesday 18:00-19:00". It is matched by
// weekday and minute-of-day, never by absolute date.
type RecurringCommitment struct {
	ID          string
	Weekday     time.Weekday
	StartHour   int
	StartMinute int
	EndHour     int
	EndMinute   int
}

// StartMinuteOfDay returns the commitment start as minutes from midnight.
func (c RecurringCommitment) StartMinuteOfDay() int {
	return c.StartHour*60 + c.StartMinute
}

// EndMinuteOfDay returns the commitment end as minutes from midnight.
func (c RecurringCommitment) EndMinuteOfDay() int {
	return c.EndHour*60 + c.EndMinute
}

// SchedulingPreferences is the caller-owned preference set for a subject.
// The engine never mutates it.
type SchedulingPreferences struct {
	DayPreferences            []DayPreference
	RecurringCommitments      []RecurringCommitment
	MinimumAdvanceNoticeHours int
	UseExternalCalendars      bool
}

// DayPreferenceFor returns the preference for the given weekday, if any.
func (p SchedulingPreferences) DayPreferenceFor(wd time.Weekday) (DayPreference, bool) {
	for _, dp := range p.DayPreferences {
		if dp.Weekday == wd {
			return dp, true
		}
	}
	return DayPreference{}, false
}

// RatedSlot is one open window the engine computed for a meeting.
// End - Start always equals the requested duration.
type RatedSlot struct {
	Start  time.Time
	End    time.Time
	Rating Rating
}
