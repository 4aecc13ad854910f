package gcalendar

import "time"

// BusyPeriod is one busy range reported by the FreeBusy API.
type BusyPeriod struct {
	Start      time.Time
	End        time.Time
	CalendarID string
}

// ListBusyRequest is the input for querying busy periods.
type ListBusyRequest struct {
	CalendarID string // Defaults to "primary"
	TimeMin    time.Time
	TimeMax    time.Time
}

// InsertEventRequest is the input for inserting a calendar event. The caller
// builds the event in full; the client only forwards it.
type InsertEventRequest struct {
	CalendarID  string
	Summary     string
	Description string
	StartTime   time.Time
	EndTime     time.Time
}

// InsertedEvent is a simplified view of the created event.
type InsertedEvent struct {
	ID       string
	HtmlLink string
}
