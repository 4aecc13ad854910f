package http

import (
	"time"

	"github.com/gin-gonic/gin"

	"mutual-availability/internal/availability"
	"mutual-availability/internal/model"
	"mutual-availability/pkg/response"
)

// --- Request DTOs ---

// preferencesReq mirrors model.SchedulingPreferences for callers that want
// to override stored preferences per request.
type preferencesReq struct {
	DayPreferences []struct {
		Weekday int `json:"weekday" binding:"min=0,max=6"`
		Windows []struct {
			StartHour   int `json:"start_hour"   binding:"min=0,max=23"`
			StartMinute int `json:"start_minute" binding:"min=0,max=59"`
			EndHour     int `json:"end_hour"     binding:"min=0,max=24"`
			EndMinute   int `json:"end_minute"   binding:"min=0,max=59"`
		} `json:"windows"`
	} `json:"day_preferences"`
	RecurringCommitments []struct {
		Weekday     int `json:"weekday" binding:"min=0,max=6"`
		StartHour   int `json:"start_hour"`
		StartMinute int `json:"start_minute"`
		EndHour     int `json:"end_hour"`
		EndMinute   int `json:"end_minute"`
	} `json:"recurring_commitments"`
	MinimumAdvanceNoticeHours int  `json:"minimum_advance_notice_hours"`
	UseExternalCalendars      bool `json:"use_external_calendars"`
}

func (r preferencesReq) toModel() *model.SchedulingPreferences {
	prefs := model.SchedulingPreferences{
		MinimumAdvanceNoticeHours: r.MinimumAdvanceNoticeHours,
		UseExternalCalendars:      r.UseExternalCalendars,
	}
	for _, dp := range r.DayPreferences {
		windows := make([]model.TimeOfDayWindow, len(dp.Windows))
		for i, w := range dp.Windows {
			windows[i] = model.TimeOfDayWindow{
				StartHour:   w.StartHour,
				StartMinute: w.StartMinute,
				EndHour:     w.EndHour,
				EndMinute:   w.EndMinute,
			}
		}
		prefs.DayPreferences = append(prefs.DayPreferences, model.DayPreference{
			Weekday: time.Weekday(dp.Weekday),
			Windows: windows,
		})
	}
	for _, c := range r.RecurringCommitments {
		prefs.RecurringCommitments = append(prefs.RecurringCommitments, model.RecurringCommitment{
			Weekday:     time.Weekday(c.Weekday),
			StartHour:   c.StartHour,
			StartMinute: c.StartMinute,
			EndHour:     c.EndHour,
			EndMinute:   c.EndMinute,
		})
	}
	return &prefs
}

// ---

type getAvailabilityReq struct {
	SubjectID       string          `json:"-"`
	StartDate       string          `form:"start_date" json:"start_date" binding:"required"`
	EndDate         string          `form:"end_date"   json:"end_date"   binding:"required"`
	DurationMinutes int             `form:"duration_minutes" json:"duration_minutes" binding:"required"`
	Preferences     *preferencesReq `json:"preferences"`
}

func (r getAvailabilityReq) toInput(resolve dateResolver) (availability.GetAvailabilityInput, error) {
	start, err := resolve(r.StartDate)
	if err != nil {
		return availability.GetAvailabilityInput{}, err
	}
	end, err := resolve(r.EndDate)
	if err != nil {
		return availability.GetAvailabilityInput{}, err
	}
	input := availability.GetAvailabilityInput{
		SubjectID:       r.SubjectID,
		StartDate:       start,
		EndDate:         end,
		DurationMinutes: r.DurationMinutes,
	}
	if r.Preferences != nil {
		input.Preferences = r.Preferences.toModel()
	}
	return input, nil
}

// ---

type getSlotsForDayReq struct {
	SubjectID       string `json:"-"`
	Date            string `form:"date" binding:"required"`
	DurationMinutes int    `form:"duration_minutes" binding:"required"`
}

func (r getSlotsForDayReq) toInput(resolve dateResolver) (availability.GetSlotsForDayInput, error) {
	date, err := resolve(r.Date)
	if err != nil {
		return availability.GetSlotsForDayInput{}, err
	}
	return availability.GetSlotsForDayInput{
		SubjectID:       r.SubjectID,
		Date:            date,
		DurationMinutes: r.DurationMinutes,
	}, nil
}

// ---

type findMutualReq struct {
	UserIDs         []string        `json:"user_ids" binding:"required,min=1"`
	StartDate       string          `json:"start_date" binding:"required"`
	EndDate         string          `json:"end_date"   binding:"required"`
	DurationMinutes int             `json:"duration_minutes" binding:"required"`
	Preferences     *preferencesReq `json:"preferences"`
}

func (r findMutualReq) toInput(resolve dateResolver) (availability.FindMutualInput, error) {
	start, err := resolve(r.StartDate)
	if err != nil {
		return availability.FindMutualInput{}, err
	}
	end, err := resolve(r.EndDate)
	if err != nil {
		return availability.FindMutualInput{}, err
	}
	input := availability.FindMutualInput{
		UserIDs:         r.UserIDs,
		StartDate:       start,
		EndDate:         end,
		DurationMinutes: r.DurationMinutes,
	}
	if r.Preferences != nil {
		input.Preferences = r.Preferences.toModel()
	}
	return input, nil
}

// ---

type scheduleEventReq struct {
	UserID      string `json:"user_id"  binding:"required"`
	Provider    string `json:"provider" binding:"required"`
	Title       string `json:"title"    binding:"required,max=255"`
	Description string `json:"description" binding:"max=2000"`
	Start       string `json:"start" binding:"required"`
	End         string `json:"end"   binding:"required"`
	CalendarID  string `json:"calendar_id"`
}

func (r scheduleEventReq) toInput() (availability.ScheduleEventInput, error) {
	start, err := time.Parse(time.RFC3339, r.Start)
	if err != nil {
		return availability.ScheduleEventInput{}, err
	}
	end, err := time.Parse(time.RFC3339, r.End)
	if err != nil {
		return availability.ScheduleEventInput{}, err
	}
	return availability.ScheduleEventInput{
		UserID:   r.UserID,
		Provider: model.CalendarProvider(r.Provider),
		Event: model.EventDescriptor{
			Title:       r.Title,
			Description: r.Description,
			Start:       start,
			End:         end,
			CalendarID:  r.CalendarID,
		},
	}, nil
}

// --- Date resolution ---

// dateResolver turns a date parameter into a time.Time.
type dateResolver func(string) (time.Time, error)

// resolveDate accepts either an absolute YYYY-MM-DD date or a relative
// expression ("today", "tomorrow", "next monday", "in 2 weeks").
func (h *handler) resolveDate(s string) (time.Time, error) {
	if t, err := time.Parse(response.DateFormat, s); err == nil {
		return t, nil
	}
	return h.dates.Parse(s, time.Now())
}

// --- Binding ---

// processGetAvailabilityReq binds query parameters plus the subject URI param.
func (h *handler) processGetAvailabilityReq(c *gin.Context) (getAvailabilityReq, error) {
	var req getAvailabilityReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, err
	}
	req.SubjectID = c.Param("subject_id")
	return req, nil
}

// processGetSlotsForDayReq binds query parameters plus the subject URI param.
func (h *handler) processGetSlotsForDayReq(c *gin.Context) (getSlotsForDayReq, error) {
	var req getSlotsForDayReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, err
	}
	req.SubjectID = c.Param("subject_id")
	return req, nil
}

// processFindMutualReq binds and validates the mutual-availability body.
func (h *handler) processFindMutualReq(c *gin.Context) (findMutualReq, error) {
	var req findMutualReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}

// processScheduleEventReq binds and validates the schedule-event body.
func (h *handler) processScheduleEventReq(c *gin.Context) (scheduleEventReq, error) {
	var req scheduleEventReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}
