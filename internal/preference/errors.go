package preference

import "errors"

// Domain-specific errors for the preference package.
var (
	ErrCommitmentNotFound = errors.New("commitment does not exist")
	ErrInvalidWindow      = errors.New("window end must be after window start within one day")
	ErrInvalidWeekday     = errors.New("weekday must be between 0 (Sunday) and 6 (Saturday)")
)
