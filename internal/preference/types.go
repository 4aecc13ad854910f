package preference

import "mutual-availability/internal/model"

// --- UseCase Inputs ---

type UpdateInput struct {
	SubjectID   string
	Preferences model.SchedulingPreferences
}

type AddCommitmentInput struct {
	SubjectID   string
	Weekday     int // 0 = Sunday .. 6 = Saturday
	StartHour   int
	StartMinute int
	EndHour     int
	EndMinute   int
}

type UpdateCommitmentInput struct {
	SubjectID    string
	CommitmentID string
	Weekday      int
	StartHour    int
	StartMinute  int
	EndHour      int
	EndMinute    int
}

// --- UseCase Outputs ---

type GetOutput struct {
	SubjectID   string
	Preferences model.SchedulingPreferences
}

type CommitmentOutput struct {
	Commitment model.RecurringCommitment
}
