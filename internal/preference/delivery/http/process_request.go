package http

import (
	"time"

	"github.com/gin-gonic/gin"

	"mutual-availability/internal/model"
	"mutual-availability/internal/preference"
)

// --- Request DTOs ---

type windowReq struct {
	StartHour   int `json:"start_hour"   binding:"min=0,max=23"`
	StartMinute int `json:"start_minute" binding:"min=0,max=59"`
	EndHour     int `json:"end_hour"     binding:"min=0,max=24"`
	EndMinute   int `json:"end_minute"   binding:"min=0,max=59"`
}

type commitmentReq struct {
	Weekday     int `json:"weekday" binding:"min=0,max=6"`
	StartHour   int `json:"start_hour"`
	StartMinute int `json:"start_minute"`
	EndHour     int `json:"end_hour"`
	EndMinute   int `json:"end_minute"`
}

type updateReq struct {
	SubjectID      string `json:"-"` // populated from URI param
	DayPreferences []struct {
		Weekday int         `json:"weekday" binding:"min=0,max=6"`
		Windows []windowReq `json:"windows"`
	} `json:"day_preferences"`
	MinimumAdvanceNoticeHours int  `json:"minimum_advance_notice_hours" binding:"min=0"`
	UseExternalCalendars      bool `json:"use_external_calendars"`
}

func (r updateReq) toInput() preference.UpdateInput {
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
	return preference.UpdateInput{SubjectID: r.SubjectID, Preferences: prefs}
}

// ---

type addCommitmentReq struct {
	SubjectID string `json:"-"`
	commitmentReq
}

func (r addCommitmentReq) toInput() preference.AddCommitmentInput {
	return preference.AddCommitmentInput{
		SubjectID:   r.SubjectID,
		Weekday:     r.Weekday,
		StartHour:   r.StartHour,
		StartMinute: r.StartMinute,
		EndHour:     r.EndHour,
		EndMinute:   r.EndMinute,
	}
}

type updateCommitmentReq struct {
	SubjectID    string `json:"-"`
	CommitmentID string `json:"-"`
	commitmentReq
}

func (r updateCommitmentReq) toInput() preference.UpdateCommitmentInput {
	return preference.UpdateCommitmentInput{
		SubjectID:    r.SubjectID,
		CommitmentID: r.CommitmentID,
		Weekday:      r.Weekday,
		StartHour:    r.StartHour,
		StartMinute:  r.StartMinute,
		EndHour:      r.EndHour,
		EndMinute:    r.EndMinute,
	}
}

// --- Binding ---

// processUpdateReq binds the preference body plus the subject URI param.
// Commitments are managed through their own endpoints; the Update handler
// carries the stored ones over unchanged.
func (h *handler) processUpdateReq(c *gin.Context) (updateReq, error) {
	var req updateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	req.SubjectID = c.Param("subject_id")
	return req, nil
}

// processAddCommitmentReq binds the commitment body plus the subject URI param.
func (h *handler) processAddCommitmentReq(c *gin.Context) (addCommitmentReq, error) {
	var req addCommitmentReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	req.SubjectID = c.Param("subject_id")
	return req, nil
}

// processUpdateCommitmentReq binds the commitment body plus both URI params.
func (h *handler) processUpdateCommitmentReq(c *gin.Context) (updateCommitmentReq, error) {
	var req updateCommitmentReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	req.SubjectID = c.Param("subject_id")
	req.CommitmentID = c.Param("commitment_id")
	return req, nil
}
