package engine

import (
	"time"

	"mutual-availability/internal/model"
)

const (
	// DateFormat is the ISO calendar-day key used throughout the pipeline.
	DateFormat = "2006-01-02"

	// DefaultStepMinutes is the granularity at which candidate slots are
	// generated inside a preference window.
	DefaultStepMinutes = 30
)

// Candidate is a fixed-duration slot generated purely from preferences,
// before any conflict filtering.
type Candidate struct {
	Start time.Time
	End   time.Time
}

// GenerateCandidates expands the subject's per-weekday preference windows
// into candidate slots for every calendar day in [startDate, endDate]
// inclusive. Days whose weekday has no DayPreference are skipped. Candidate
// generation never consults busy data; overlapping preference windows are
// passed through as-is and may produce overlapping candidates.
func GenerateCandidates(
	startDate, endDate time.Time,
	prefs model.SchedulingPreferences,
	durationMinutes, stepMinutes int,
) map[string][]Candidate {
	if stepMinutes <= 0 {
		stepMinutes = DefaultStepMinutes
	}
	duration := time.Duration(durationMinutes) * time.Minute
	step := time.Duration(stepMinutes) * time.Minute

	out := make(map[string][]Candidate)
	for day := startOfDay(startDate); !day.After(startOfDay(endDate)); day = day.AddDate(0, 0, 1) {
		dp, ok := prefs.DayPreferenceFor(day.Weekday())
		if !ok {
			continue
		}

		var candidates []Candidate
		for _, w := range dp.Windows {
			windowStart := day.Add(time.Duration(w.StartMinuteOfDay()) * time.Minute)
			windowEnd := day.Add(time.Duration(w.EndMinuteOfDay()) * time.Minute)
			for s := windowStart; !s.Add(duration).After(windowEnd); s = s.Add(step) {
				candidates = append(candidates, Candidate{Start: s, End: s.Add(duration)})
			}
		}
		if len(candidates) > 0 {
			out[day.Format(DateFormat)] = candidates
		}
	}
	return out
}

// startOfDay returns midnight of t's calendar day in t's location.
func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
