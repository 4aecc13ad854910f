// Package memory is the in-process PreferenceRepository used by default.
package memory

import (
	"context"
	"sync"

	"mutual-availability/internal/model"
	"mutual-availability/internal/preference/repository"
)

type Repository struct {
	mu    sync.RWMutex
	store map[string]model.SchedulingPreferences
}

// New creates an empty in-memory preference repository.
func New() *Repository {
	return &Repository{store: make(map[string]model.SchedulingPreferences)}
}

func (r *Repository) Get(ctx context.Context, subjectID string) (model.SchedulingPreferences, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	prefs, ok := r.store[subjectID]
	if !ok {
		return model.SchedulingPreferences{}, repository.ErrNotFound
	}
	return prefs, nil
}

func (r *Repository) Put(ctx context.Context, subjectID string, prefs model.SchedulingPreferences) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.store[subjectID] = prefs
	return nil
}

var _ repository.PreferenceRepository = (*Repository)(nil)
