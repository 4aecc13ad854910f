package usecase

import (
	"time"

	"mutual-availability/internal/availability"
	"mutual-availability/internal/availability/engine"
	"mutual-availability/internal/provider"
	pkgLog "mutual-availability/pkg/log"
)

const defaultFetchTimeout = 10 * time.Second

type implUseCase struct {
	l        pkgLog.Logger
	registry *provider.Registry
	subjects availability.SubjectDirectory
	prefs    availability.PreferenceSource

	fetchTimeout time.Duration
	stepMinutes  int

	// now is swapped out in tests; every stage of one call sees one instant.
	now func() time.Time
}

// New creates a new availability UseCase instance.
func New(
	l pkgLog.Logger,
	registry *provider.Registry,
	subjects availability.SubjectDirectory,
	prefs availability.PreferenceSource,
	fetchTimeout time.Duration,
	stepMinutes int,
) *implUseCase {
	if fetchTimeout <= 0 {
		fetchTimeout = defaultFetchTimeout
	}
	if stepMinutes <= 0 {
		stepMinutes = engine.DefaultStepMinutes
	}
	return &implUseCase{
		l:            l,
		registry:     registry,
		subjects:     subjects,
		prefs:        prefs,
		fetchTimeout: fetchTimeout,
		stepMinutes:  stepMinutes,
		now:          time.Now,
	}
}

// WithClock overrides the time source. Intended for tests.
func (uc *implUseCase) WithClock(now func() time.Time) *implUseCase {
	uc.now = now
	return uc
}
