// Package repository defines the persistence seam for scheduling
// preferences. Durable storage is an external concern; deployments swap
// the in-memory implementation for their own.
package repository

import (
	"context"
	"errors"

	"mutual-availability/internal/model"
)

// ErrNotFound is returned when a subject has no stored preference set.
var ErrNotFound = errors.New("no stored preferences for subject")

// PreferenceRepository stores one SchedulingPreferences value per subject.
type PreferenceRepository interface {
	Get(ctx context.Context, subjectID string) (model.SchedulingPreferences, error)
	Put(ctx context.Context, subjectID string, prefs model.SchedulingPreferences) error
}
