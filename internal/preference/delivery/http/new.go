package http

import (
	"github.com/gin-gonic/gin"

	"mutual-availability/internal/preference"
	pkgLog "mutual-availability/pkg/log"
)

// Handler is the public interface for the preference HTTP delivery layer.
type Handler interface {
	Get(c *gin.Context)
	Update(c *gin.Context)
	AddCommitment(c *gin.Context)
	UpdateCommitment(c *gin.Context)
	DeleteCommitment(c *gin.Context)
}

type handler struct {
	l  pkgLog.Logger
	uc preference.UseCase
}

// New creates a new HTTP handler for the preference domain.
func New(l pkgLog.Logger, uc preference.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
