package http

import (
	"github.com/gin-gonic/gin"

	"mutual-availability/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
// All routes are protected by the Auth middleware by convention.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	rg.POST("/mutual", mw.Auth(), h.FindMutual)
	rg.POST("/events", mw.Auth(), h.ScheduleEvent)
	rg.GET("/:subject_id", mw.Auth(), h.GetAvailability)
	rg.GET("/:subject_id/day", mw.Auth(), h.GetSlotsForDay)
}
