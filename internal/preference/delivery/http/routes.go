package http

import (
	"github.com/gin-gonic/gin"

	"mutual-availability/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
// All routes are protected by the Auth middleware by convention.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	rg.GET("/:subject_id", mw.Auth(), h.Get)
	rg.PUT("/:subject_id", mw.Auth(), h.Update)

	commitments := rg.Group("/:subject_id/commitments")
	{
		commitments.POST("", mw.Auth(), h.AddCommitment)
		commitments.PUT("/:commitment_id", mw.Auth(), h.UpdateCommitment)
		commitments.DELETE("/:commitment_id", mw.Auth(), h.DeleteCommitment)
	}
}
