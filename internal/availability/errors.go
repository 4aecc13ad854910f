package availability

import "errors"

// Domain-specific errors for the availability package. Validation errors
// abort the pipeline before any provider fetch; single-provider fetch
// failures are recovered inside the pipeline and never surface here.
var (
	ErrInvalidRange      = errors.New("end date must be after start date")
	ErrInvalidDuration   = errors.New("duration must be between 15 and 720 minutes")
	ErrSubjectNotFound   = errors.New("subject does not exist or is not active")
	ErrProviderWriteOnly = errors.New("provider does not accept event descriptors")
)
