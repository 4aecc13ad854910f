package http

import (
	"mutual-availability/internal/model"
	"mutual-availability/internal/preference"
)

// --- Response DTOs ---

type windowResp struct {
	StartHour   int `json:"start_hour"`
	StartMinute int `json:"start_minute"`
	EndHour     int `json:"end_hour"`
	EndMinute   int `json:"end_minute"`
}

type dayPreferenceResp struct {
	Weekday int          `json:"weekday"`
	Windows []windowResp `json:"windows"`
}

type commitmentResp struct {
	ID          string `json:"id"`
	Weekday     int    `json:"weekday"`
	StartHour   int    `json:"start_hour"`
	StartMinute int    `json:"start_minute"`
	EndHour     int    `json:"end_hour"`
	EndMinute   int    `json:"end_minute"`
}

func newCommitmentResp(c model.RecurringCommitment) commitmentResp {
	return commitmentResp{
		ID:          c.ID,
		Weekday:     int(c.Weekday),
		StartHour:   c.StartHour,
		StartMinute: c.StartMinute,
		EndHour:     c.EndHour,
		EndMinute:   c.EndMinute,
	}
}

type preferencesResp struct {
	SubjectID                 string              `json:"subject_id"`
	DayPreferences            []dayPreferenceResp `json:"day_preferences"`
	RecurringCommitments      []commitmentResp    `json:"recurring_commitments"`
	MinimumAdvanceNoticeHours int                 `json:"minimum_advance_notice_hours"`
	UseExternalCalendars      bool                `json:"use_external_calendars"`
}

func (h *handler) newPreferencesResp(out preference.GetOutput) preferencesResp {
	resp := preferencesResp{
		SubjectID:                 out.SubjectID,
		DayPreferences:            []dayPreferenceResp{},
		RecurringCommitments:      []commitmentResp{},
		MinimumAdvanceNoticeHours: out.Preferences.MinimumAdvanceNoticeHours,
		UseExternalCalendars:      out.Preferences.UseExternalCalendars,
	}
	for _, dp := range out.Preferences.DayPreferences {
		windows := make([]windowResp, len(dp.Windows))
		for i, w := range dp.Windows {
			windows[i] = windowResp{
				StartHour:   w.StartHour,
				StartMinute: w.StartMinute,
				EndHour:     w.EndHour,
				EndMinute:   w.EndMinute,
			}
		}
		resp.DayPreferences = append(resp.DayPreferences, dayPreferenceResp{
			Weekday: int(dp.Weekday),
			Windows: windows,
		})
	}
	for _, c := range out.Preferences.RecurringCommitments {
		resp.RecurringCommitments = append(resp.RecurringCommitments, newCommitmentResp(c))
	}
	return resp
}
