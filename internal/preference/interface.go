package preference

import (
	"context"

	"mutual-availability/internal/model"
)

// UseCase manages a subject's scheduling preferences and recurring
// commitments. Preference mutations never touch calendar providers.
type UseCase interface {
	// Get returns the subject's stored preferences, or the default
	// business-hours set when none were stored yet.
	Get(ctx context.Context, subjectID string) (GetOutput, error)

	// Update replaces the subject's preference set.
	Update(ctx context.Context, input UpdateInput) (GetOutput, error)

	// AddCommitment appends a recurring commitment and returns it with its
	// assigned ID.
	AddCommitment(ctx context.Context, input AddCommitmentInput) (CommitmentOutput, error)

	// UpdateCommitment rewrites an existing commitment in place.
	UpdateCommitment(ctx context.Context, input UpdateCommitmentInput) (CommitmentOutput, error)

	// DeleteCommitment removes a commitment by ID.
	DeleteCommitment(ctx context.Context, subjectID, commitmentID string) error

	// PreferencesFor satisfies the availability engine's PreferenceSource.
	PreferencesFor(ctx context.Context, subjectID string) (model.SchedulingPreferences, error)
}
