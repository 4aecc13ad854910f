package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"mutual-availability/config"
	_ "mutual-availability/docs" // Swagger docs
	availabilityUC "mutual-availability/internal/availability/usecase"
	"mutual-availability/internal/httpserver"
	"mutual-availability/internal/model"
	prefRepo "mutual-availability/internal/preference/repository/memory"
	prefUC "mutual-availability/internal/preference/usecase"
	"mutual-availability/internal/provider"
	"mutual-availability/internal/provider/gcal"
	subjectDir "mutual-availability/internal/subject/memory"
	"mutual-availability/pkg/datemath"
	"mutual-availability/pkg/gcalendar"
	"mutual-availability/pkg/log"
)

// @title       Mutual Availability API
// @description Mutual-availability scheduling engine with calendar provider integration.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Mutual Availability...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Calendar provider gateways
	gateways := make(map[model.CalendarProvider]provider.Gateway)

	if cfg.GoogleCalendar.CredentialsPath != "" {
		calendarClient, gcErr := gcalendar.NewClientFromCredentialsFile(ctx, cfg.GoogleCalendar.CredentialsPath)
		if gcErr != nil {
			logger.Warnf(ctx, "Google Calendar not available: %v", gcErr)
			logger.Warn(ctx, "Run `go run scripts/gcal-auth/main.go` to generate token.json")
		} else {
			var resolver gcal.CalendarResolver
			if cfg.GoogleCalendar.CalendarID != "" {
				calendarID := cfg.GoogleCalendar.CalendarID
				resolver = func(string) string { return calendarID }
			}
			gw := gcal.New(calendarClient, resolver, logger)
			gateways[model.ProviderGoogle] = provider.NewCachedGateway(gw, cfg.Availability.CacheTTL)
			logger.Info(ctx, "Google Calendar gateway initialized")
		}
	}

	registry, err := provider.NewRegistry(gateways)
	if err != nil {
		logger.Error(ctx, "No calendar providers configured; set google_calendar.credentials_path: ", err)
		return
	}

	// 4. Subject directory
	directory := subjectDir.New()
	for _, s := range cfg.Subjects {
		status := model.SubjectStatus(s.Status)
		if status == "" {
			status = model.SubjectActive
		}
		providers := make([]model.CalendarProvider, len(s.Providers))
		for i, p := range s.Providers {
			providers[i] = model.CalendarProvider(p)
		}
		directory.Register(model.Subject{
			ID:        s.ID,
			UserIDs:   s.UserIDs,
			Status:    status,
			Providers: providers,
		})
	}
	logger.Infof(ctx, "Subject directory seeded with %d subjects", len(cfg.Subjects))

	// 5. Use cases
	preferenceUseCase := prefUC.New(logger, prefRepo.New())
	availabilityUseCase := availabilityUC.New(
		logger,
		registry,
		directory,
		preferenceUseCase,
		cfg.Availability.FetchTimeout,
		cfg.Availability.StepMinutes,
	)

	// 6. Date parser for relative date expressions
	dateParser, dtErr := datemath.NewParser(cfg.Availability.Timezone)
	if dtErr != nil {
		// Leaving the parser nil makes the HTTP server fall back to UTC.
		logger.Warnf(ctx, "Invalid timezone %q, falling back to UTC: %v", cfg.Availability.Timezone, dtErr)
		dateParser = nil
	}

	// 7. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:          logger,
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		Environment:     cfg.Environment.Name,
		APIKey:          cfg.API.Key,
		RateLimitPerMin: cfg.API.RateLimitPerMin,
		AvailabilityUC:  availabilityUseCase,
		PreferenceUC:    preferenceUseCase,
		DateParser:      dateParser,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 8. Run
	if err := httpServer.Run(); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
