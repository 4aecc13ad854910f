package engine

import (
	"time"

	"mutual-availability/internal/model"
)

// FilterConflicts removes candidates that start before the advance-notice
// cutoff, collide with a merged busy interval, or collide with a recurring
// commitment on the same weekday.
//
// Overlap is strict on both obstruction kinds: max(starts) < min(ends).
// A candidate that exactly abuts an obstruction (shares an endpoint) is
// kept. Changing this boundary is a behavior change, not a bug fix.
func FilterConflicts(
	candidates []Candidate,
	busy []model.BusyInterval,
	commitments []model.RecurringCommitment,
	now time.Time,
	minimumAdvanceNoticeHours int,
) []Candidate {
	cutoff := now.Add(time.Duration(minimumAdvanceNoticeHours) * time.Hour)

	var kept []Candidate
	for _, c := range candidates {
		if c.Start.Before(cutoff) {
			continue
		}
		if overlapsBusy(c, busy) {
			continue
		}
		if overlapsCommitment(c, commitments) {
			continue
		}
		kept = append(kept, c)
	}
	return kept
}

func overlapsBusy(c Candidate, busy []model.BusyInterval) bool {
	for _, b := range busy {
		start := laterOf(c.Start, b.Start)
		end := earlierOf(c.End, b.End)
		if start.Before(end) {
			return true
		}
	}
	return false
}

// overlapsCommitment compares by weekday plus minute-of-day, so one
// commitment suppresses matching candidates on every occurrence of its
// weekday across the date range.
func overlapsCommitment(c Candidate, commitments []model.RecurringCommitment) bool {
	slotStart := minuteOfDay(c.Start)
	slotEnd := slotStart + int(c.End.Sub(c.Start).Minutes())
	for _, rc := range commitments {
		if rc.Weekday != c.Start.Weekday() {
			continue
		}
		start := max(slotStart, rc.StartMinuteOfDay())
		end := min(slotEnd, rc.EndMinuteOfDay())
		if start < end {
			return true
		}
	}
	return false
}

func minuteOfDay(t time.Time) int {
	return t.Hour()*60 + t.Minute()
}

func laterOf(a, b time.Time) time.Time {
	if a.After(b) {
		return a
	}
	return b
}

func earlierOf(a, b time.Time) time.Time {
	if a.Before(b) {
		return a
	}
	return b
}
