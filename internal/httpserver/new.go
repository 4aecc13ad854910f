package httpserver

import (
	"errors"

	"github.com/gin-gonic/gin"

	"mutual-availability/internal/availability"
	"mutual-availability/internal/preference"
	"mutual-availability/pkg/datemath"
	"mutual-availability/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string

	// Auth & throttling
	apiKey          string
	rateLimitPerMin int

	// Domains
	availabilityUC availability.UseCase
	preferenceUC   preference.UseCase
	dateParser     *datemath.Parser
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string

	// Auth & throttling
	APIKey          string
	RateLimitPerMin int

	// Domains
	AvailabilityUC availability.UseCase
	PreferenceUC   preference.UseCase

	// DateParser resolves relative date expressions in requests. Nil falls
	// back to UTC.
	DateParser *datemath.Parser
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:               logger,
		gin:             gin.Default(),
		port:            cfg.Port,
		mode:            cfg.Mode,
		environment:     cfg.Environment,
		apiKey:          cfg.APIKey,
		rateLimitPerMin: cfg.RateLimitPerMin,
		availabilityUC:  cfg.AvailabilityUC,
		preferenceUC:    cfg.PreferenceUC,
		dateParser:      cfg.DateParser,
	}

	if srv.dateParser == nil {
		parser, err := datemath.NewParser("UTC")
		if err != nil {
			return nil, err
		}
		srv.dateParser = parser
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	if err := srv.mapHandlers(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.availabilityUC == nil {
		return errors.New("availability use case is required")
	}
	if srv.preferenceUC == nil {
		return errors.New("preference use case is required")
	}
	return nil
}
