package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	availabilityHTTP "mutual-availability/internal/availability/delivery/http"
	"mutual-availability/internal/middleware"
)

// setupAvailabilityDomain registers the availability routes.
//
// Pattern to follow when adding a new domain:
//  1. Create HTTP Handler: h := mydomainHTTP.New(srv.l, uc)
//  2. Register Routes:     mydomainHTTP.RegisterRoutes(api.Group("/myresource"), h, mw)
func (srv HTTPServer) setupAvailabilityDomain(api *gin.RouterGroup, mw middleware.Middleware) error {
	h := availabilityHTTP.New(srv.l, srv.availabilityUC, srv.dateParser)
	availabilityHTTP.RegisterRoutes(api.Group("/availability"), h, mw)

	srv.l.Infof(context.Background(), "Availability domain registered")
	return nil
}
