package response

const (
	// MessageSuccess is the message of successful responses.
	MessageSuccess = "Success"

	// InternalServerErrorCode is the error code for unexpected failures.
	InternalServerErrorCode = 500

	// DefaultErrorMessage hides internal details from clients.
	DefaultErrorMessage = "Something went wrong"
)

const (
	DateFormat     = "2006-01-02"
	DateTimeFormat = "2006-01-02 15:04:05"
)
