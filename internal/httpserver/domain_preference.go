package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	"mutual-availability/internal/middleware"
	preferenceHTTP "mutual-availability/internal/preference/delivery/http"
)

// setupPreferenceDomain registers the preference routes.
func (srv HTTPServer) setupPreferenceDomain(api *gin.RouterGroup, mw middleware.Middleware) error {
	h := preferenceHTTP.New(srv.l, srv.preferenceUC)
	preferenceHTTP.RegisterRoutes(api.Group("/preferences"), h, mw)

	srv.l.Infof(context.Background(), "Preference domain registered")
	return nil
}
