package http

import (
	"github.com/gin-gonic/gin"

	"mutual-availability/pkg/response"
)

// GetAvailability godoc
// @Summary     Get rated open slots over a date range
// @Description Computes rated open meeting slots for a subject between start_date and end_date inclusive.
// @Tags        Availability
// @Accept      json
// @Produce     json
// @Param       subject_id       path  string true  "Subject ID (user or relationship)"
// @Param       start_date       query string true  "First day of the range (YYYY-MM-DD or relative, e.g. today)"
// @Param       end_date         query string true  "Last day of the range (YYYY-MM-DD or relative, e.g. next friday)"
// @Param       duration_minutes query int    true  "Requested meeting length in minutes (15-720)"
// @Success     200 {object} availabilityResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Subject Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/availability/{subject_id} [GET]
func (h *handler) GetAvailability(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processGetAvailabilityReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	input, err := req.toInput(h.resolveDate)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.GetAvailability(ctx, input)
	if err != nil {
		h.l.Errorf(ctx, "uc.GetAvailability: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newAvailabilityResp(output))
}

// GetSlotsForDay godoc
// @Summary     Get rated open slots for one day
// @Description Runs the availability pipeline restricted to a single date.
// @Tags        Availability
// @Accept      json
// @Produce     json
// @Param       subject_id       path  string true "Subject ID (user or relationship)"
// @Param       date             query string true "The day to compute (YYYY-MM-DD or relative, e.g. tomorrow)"
// @Param       duration_minutes query int    true "Requested meeting length in minutes (15-720)"
// @Success     200 {object} daySlotsResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Subject Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/availability/{subject_id}/day [GET]
func (h *handler) GetSlotsForDay(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processGetSlotsForDayReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	input, err := req.toInput(h.resolveDate)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.GetSlotsForDay(ctx, input)
	if err != nil {
		h.l.Errorf(ctx, "uc.GetSlotsForDay: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newDayResp(output))
}

// FindMutual godoc
// @Summary     Find mutual availability across users
// @Description Intersects open time across an explicit list of users, merging their busy data before filtering.
// @Tags        Availability
// @Accept      json
// @Produce     json
// @Param       body body findMutualReq true "Users, date range and duration"
// @Success     200 {object} availabilityResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Unknown Users"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/availability/mutual [POST]
func (h *handler) FindMutual(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processFindMutualReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	input, err := req.toInput(h.resolveDate)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.FindMutualAvailability(ctx, input)
	if err != nil {
		h.l.Errorf(ctx, "uc.FindMutualAvailability: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newAvailabilityResp(output))
}

// ScheduleEvent godoc
// @Summary     Schedule an event on a provider calendar
// @Description Forwards a caller-built event descriptor to one calendar provider.
// @Tags        Availability
// @Accept      json
// @Produce     json
// @Param       body body scheduleEventReq true "Event descriptor"
// @Success     200 {object} response.Resp "OK"
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     422 {object} response.Resp "Provider cannot accept events"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/availability/events [POST]
func (h *handler) ScheduleEvent(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processScheduleEventReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	input, err := req.toInput()
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	if err := h.uc.ScheduleEvent(ctx, input); err != nil {
		h.l.Errorf(ctx, "uc.ScheduleEvent: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, nil)
}
