// Package memory is the in-process SubjectDirectory used by default.
// Deployments with a real identity store swap in their own resolver.
package memory

import (
	"context"
	"errors"
	"sync"

	"mutual-availability/internal/availability"
	"mutual-availability/internal/model"
)

// ErrUnknownSubject is returned for subject IDs the directory never saw.
var ErrUnknownSubject = errors.New("unknown subject")

type Directory struct {
	mu       sync.RWMutex
	subjects map[string]model.Subject
}

// New creates a directory pre-loaded with the given subjects.
func New(subjects ...model.Subject) *Directory {
	d := &Directory{subjects: make(map[string]model.Subject, len(subjects))}
	for _, s := range subjects {
		d.subjects[s.ID] = s
	}
	return d
}

// Register adds or replaces a subject.
func (d *Directory) Register(s model.Subject) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.subjects[s.ID] = s
}

func (d *Directory) Resolve(ctx context.Context, subjectID string) (model.Subject, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	s, ok := d.subjects[subjectID]
	if !ok {
		return model.Subject{}, ErrUnknownSubject
	}
	return s, nil
}

var _ availability.SubjectDirectory = (*Directory)(nil)
