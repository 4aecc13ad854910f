package usecase_test

import (
	"context"
	"time"

	"mutual-availability/internal/model"
)

// --- Shared mocks ---

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, args ...any) {}
func (m *mockLogger) Info(ctx context.Context, args ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, args ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, args ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, args ...any)   {}
func (m *mockLogger) Error(ctx context.Context, args ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, args ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, args ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, args ...any)  {}

type mockGateway struct {
	fetchFunc func(ctx context.Context, userID string, from, to time.Time) ([]model.BusyInterval, error)
	delay     time.Duration
}

func (m *mockGateway) FetchBusyIntervals(ctx context.Context, userID string, from, to time.Time) ([]model.BusyInterval, error) {
	if m.delay > 0 {
		select {
		case <-time.After(m.delay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	if m.fetchFunc != nil {
		return m.fetchFunc(ctx, userID, from, to)
	}
	return nil, nil
}

type mockEventGateway struct {
	mockGateway
	createFunc func(ctx context.Context, userID string, event model.EventDescriptor) error
	created    int
}

func (m *mockEventGateway) CreateEvent(ctx context.Context, userID string, event model.EventDescriptor) error {
	m.created++
	if m.createFunc != nil {
		return m.createFunc(ctx, userID, event)
	}
	return nil
}

type mockDirectory struct {
	subjects map[string]model.Subject
}

func (m *mockDirectory) Resolve(ctx context.Context, subjectID string) (model.Subject, error) {
	if s, ok := m.subjects[subjectID]; ok {
		return s, nil
	}
	return model.Subject{}, errNotFound
}

type mockPreferenceSource struct {
	prefs map[string]model.SchedulingPreferences
}

func (m *mockPreferenceSource) PreferencesFor(ctx context.Context, subjectID string) (model.SchedulingPreferences, error) {
	if p, ok := m.prefs[subjectID]; ok {
		return p, nil
	}
	return model.SchedulingPreferences{}, errNotFound
}

type notFoundError string

func (e notFoundError) Error() string { return string(e) }

const errNotFound = notFoundError("not found")
