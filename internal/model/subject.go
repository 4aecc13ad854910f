package model

import "time"

// CalendarProvider identifies an external calendar backend. The set is an
// open enumeration: adapters register themselves by provider key, the engine
// never parses provider-specific payloads.
type CalendarProvider string

const (
	ProviderGoogle  CalendarProvider = "google"
	ProviderOutlook CalendarProvider = "outlook"
	ProviderApple   CalendarProvider = "apple"
)

// SubjectStatus is the lifecycle state of a subject.
type SubjectStatus string

const (
	SubjectActive   SubjectStatus = "active"
	SubjectInactive SubjectStatus = "inactive"
)

// Subject is whose availability is being computed: a single user, a
// relationship, or an explicit list of users.
type Subject struct {
	ID        string
	UserIDs   []string
	Status    SubjectStatus
	Providers []CalendarProvider // Enabled calendar backends for this subject's users
}

// Active reports whether the subject may be scheduled for.
func (s Subject) Active() bool {
	return s.Status == SubjectActive
}

// EventDescriptor is a caller-built event handed through to a provider
// unchanged. The engine performs no write-back of its own.
type EventDescriptor struct {
	Title       string
	Description string
	Start       time.Time
	End         time.Time
	CalendarID  string
}
