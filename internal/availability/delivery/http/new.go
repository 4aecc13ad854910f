package http

import (
	"github.com/gin-gonic/gin"

	"mutual-availability/internal/availability"
	"mutual-availability/pkg/datemath"
	pkgLog "mutual-availability/pkg/log"
)

// Handler is the public interface for the availability HTTP delivery layer.
type Handler interface {
	GetAvailability(c *gin.Context)
	GetSlotsForDay(c *gin.Context)
	FindMutual(c *gin.Context)
	ScheduleEvent(c *gin.Context)
}

type handler struct {
	l     pkgLog.Logger
	uc    availability.UseCase
	dates *datemath.Parser
}

// New creates a new HTTP handler for the availability domain. The date
// parser lets callers pass relative expressions ("today", "next monday")
// wherever a date is expected.
func New(l pkgLog.Logger, uc availability.UseCase, dates *datemath.Parser) *handler {
	return &handler{
		l:     l,
		uc:    uc,
		dates: dates,
	}
}
