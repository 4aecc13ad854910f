package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"mutual-availability/pkg/response"
)

// Get godoc
// @Summary     Get scheduling preferences
// @Description Returns the subject's stored preferences, or the default business-hours set when none were stored.
// @Tags        Preference
// @Accept      json
// @Produce     json
// @Param       subject_id path string true "Subject ID"
// @Success     200 {object} preferencesResp
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/preferences/{subject_id} [GET]
func (h *handler) Get(c *gin.Context) {
	ctx := c.Request.Context()

	subjectID := c.Param("subject_id")
	if subjectID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "subject_id is required"})
		return
	}

	output, err := h.uc.Get(ctx, subjectID)
	if err != nil {
		h.l.Errorf(ctx, "uc.Get: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newPreferencesResp(output))
}

// Update godoc
// @Summary     Update scheduling preferences
// @Description Replaces the subject's day preferences and settings. Recurring commitments are untouched; manage them through the commitment endpoints.
// @Tags        Preference
// @Accept      json
// @Produce     json
// @Param       subject_id path string    true "Subject ID"
// @Param       body       body updateReq true "Preference set"
// @Success     200 {object} preferencesResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/preferences/{subject_id} [PUT]
func (h *handler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processUpdateReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	input := req.toInput()

	// Commitments have their own endpoints; keep the stored ones.
	current, err := h.uc.Get(ctx, req.SubjectID)
	if err != nil {
		h.l.Errorf(ctx, "uc.Get: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}
	input.Preferences.RecurringCommitments = current.Preferences.RecurringCommitments

	output, err := h.uc.Update(ctx, input)
	if err != nil {
		h.l.Errorf(ctx, "uc.Update: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newPreferencesResp(output))
}

// AddCommitment godoc
// @Summary     Add a recurring commitment
// @Description Appends a standing weekly obstruction to the subject's preferences.
// @Tags        Preference
// @Accept      json
// @Produce     json
// @Param       subject_id path string           true "Subject ID"
// @Param       body       body addCommitmentReq true "Commitment window"
// @Success     200 {object} commitmentResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/preferences/{subject_id}/commitments [POST]
func (h *handler) AddCommitment(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processAddCommitmentReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.AddCommitment(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.AddCommitment: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, newCommitmentResp(output.Commitment))
}

// UpdateCommitment godoc
// @Summary     Update a recurring commitment
// @Description Rewrites an existing commitment, keyed by ID.
// @Tags        Preference
// @Accept      json
// @Produce     json
// @Param       subject_id    path string        true "Subject ID"
// @Param       commitment_id path string        true "Commitment ID"
// @Param       body          body commitmentReq true "New commitment window"
// @Success     200 {object} commitmentResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Commitment Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/preferences/{subject_id}/commitments/{commitment_id} [PUT]
func (h *handler) UpdateCommitment(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processUpdateCommitmentReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.UpdateCommitment(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.UpdateCommitment: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, newCommitmentResp(output.Commitment))
}

// DeleteCommitment godoc
// @Summary     Delete a recurring commitment
// @Description Removes a commitment by ID.
// @Tags        Preference
// @Accept      json
// @Produce     json
// @Param       subject_id    path string true "Subject ID"
// @Param       commitment_id path string true "Commitment ID"
// @Success     200 {object} response.Resp "OK"
// @Failure     404 {object} response.Resp "Commitment Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/preferences/{subject_id}/commitments/{commitment_id} [DELETE]
func (h *handler) DeleteCommitment(c *gin.Context) {
	ctx := c.Request.Context()

	subjectID := c.Param("subject_id")
	commitmentID := c.Param("commitment_id")
	if subjectID == "" || commitmentID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "subject_id and commitment_id are required"})
		return
	}

	if err := h.uc.DeleteCommitment(ctx, subjectID, commitmentID); err != nil {
		h.l.Errorf(ctx, "uc.DeleteCommitment: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, nil)
}
