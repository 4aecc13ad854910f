package http

import (
	"sort"
	"time"

	"mutual-availability/internal/availability"
	"mutual-availability/internal/model"
)

// --- Response DTOs ---

type slotResp struct {
	Start  time.Time `json:"start"`
	End    time.Time `json:"end"`
	Rating string    `json:"rating"`
}

func newSlotResp(s model.RatedSlot) slotResp {
	return slotResp{Start: s.Start, End: s.End, Rating: string(s.Rating)}
}

type daySlotsResp struct {
	Date  string     `json:"date"`
	Slots []slotResp `json:"slots"`
}

type availabilityResp struct {
	Days []daySlotsResp `json:"days"`
}

// newAvailabilityResp flattens the per-day map into a date-ordered list so
// the JSON body is stable across calls.
func (h *handler) newAvailabilityResp(out availability.GetAvailabilityOutput) availabilityResp {
	dates := make([]string, 0, len(out.Slots))
	for date := range out.Slots {
		dates = append(dates, date)
	}
	sort.Strings(dates)

	days := make([]daySlotsResp, 0, len(dates))
	for _, date := range dates {
		slots := make([]slotResp, len(out.Slots[date]))
		for i, s := range out.Slots[date] {
			slots[i] = newSlotResp(s)
		}
		days = append(days, daySlotsResp{Date: date, Slots: slots})
	}
	return availabilityResp{Days: days}
}

func (h *handler) newDayResp(out availability.GetSlotsForDayOutput) daySlotsResp {
	slots := make([]slotResp, len(out.Slots))
	for i, s := range out.Slots {
		slots[i] = newSlotResp(s)
	}
	return daySlotsResp{Date: out.Date, Slots: slots}
}
