package engine

import (
	"time"

	"mutual-availability/internal/model"
)

// clearanceBuffer is how far a busy interval must be from either edge of a
// slot for the slot to count as free of adjacent obstructions.
const clearanceBuffer = 30 * time.Minute

// Rate assigns a desirability rating to one slot given the merged busy
// intervals of that slot's day. Commitments never factor into rating, only
// into filtering.
//
//   - excellent: at least 120 minutes and no busy interval ends within 30
//     minutes before the slot starts nor begins within 30 minutes after it ends
//   - good: at least 90 minutes, or the 30-minute clearance holds
//   - fair: everything else
func Rate(slot Candidate, busyForDay []model.BusyInterval) model.Rating {
	duration := slot.End.Sub(slot.Start)
	clear := hasClearance(slot, busyForDay)

	switch {
	case duration >= 120*time.Minute && clear:
		return model.RatingExcellent
	case duration >= 90*time.Minute || clear:
		return model.RatingGood
	default:
		return model.RatingFair
	}
}

// hasClearance reports whether no busy interval ends inside the buffer
// before the slot or starts inside the buffer after it.
func hasClearance(slot Candidate, busy []model.BusyInterval) bool {
	for _, b := range busy {
		if b.End.After(slot.Start.Add(-clearanceBuffer)) && !b.End.After(slot.Start) {
			return false
		}
		if b.Start.Before(slot.End.Add(clearanceBuffer)) && !b.Start.Before(slot.End) {
			return false
		}
	}
	return true
}
