// Package engine holds the pure computation stages of the availability
// pipeline: interval merging, candidate generation, conflict filtering and
// slot rating. Nothing here performs I/O or spawns goroutines.
package engine

import (
	"sort"

	"mutual-availability/internal/model"
)

// Merge consolidates possibly-overlapping busy intervals from any number of
// sources into a minimal sorted set. Touching intervals (next.Start ==
// cur.End) are collapsed into one; zero- and negative-length intervals are
// dropped. Merge is idempotent and independent of input order.
func Merge(intervals []model.BusyInterval) []model.BusyInterval {
	valid := make([]model.BusyInterval, 0, len(intervals))
	for _, iv := range intervals {
		if iv.End.After(iv.Start) {
			valid = append(valid, iv)
		}
	}
	if len(valid) == 0 {
		return nil
	}

	sort.Slice(valid, func(i, j int) bool {
		if valid[i].Start.Equal(valid[j].Start) {
			return valid[i].End.Before(valid[j].End)
		}
		return valid[i].Start.Before(valid[j].Start)
	})

	merged := []model.BusyInterval{valid[0]}
	for _, iv := range valid[1:] {
		last := &merged[len(merged)-1]
		if !iv.Start.After(last.End) {
			if iv.End.After(last.End) {
				last.End = iv.End
			}
			continue
		}
		merged = append(merged, iv)
	}
	return merged
}

// GroupByDay buckets intervals by calendar day (DateFormat) in the
// interval's own location. An interval crossing midnight is split at each
// day boundary, so an overnight or multi-day block obstructs every day it
// touches, not just the day it starts on.
func GroupByDay(intervals []model.BusyInterval) map[string][]model.BusyInterval {
	byDay := make(map[string][]model.BusyInterval)
	for _, iv := range intervals {
		if !iv.End.After(iv.Start) {
			continue
		}
		segStart := iv.Start
		for segStart.Before(iv.End) {
			nextMidnight := startOfDay(segStart).AddDate(0, 0, 1)
			segEnd := iv.End
			if nextMidnight.Before(segEnd) {
				segEnd = nextMidnight
			}
			seg := iv
			seg.Start = segStart
			seg.End = segEnd
			day := segStart.Format(DateFormat)
			byDay[day] = append(byDay[day], seg)
			segStart = nextMidnight
		}
	}
	return byDay
}
