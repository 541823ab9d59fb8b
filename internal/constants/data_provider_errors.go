package constants

// Upstream Error Codes
// These constants define specific error scenarios for the external data sources

// Transport-related errors
const (
	ErrCodeNetworkError     = "NETWORK_ERROR"
	ErrCodeRateLimited      = "RATE_LIMITED"
	ErrCodeUpstreamStatus   = "UPSTREAM_STATUS"
	ErrCodeResourceNotFound = "RESOURCE_NOT_FOUND"
)

// Shape-related errors
const (
	ErrCodeTableNotFound     = "TABLE_NOT_FOUND"
	ErrCodeFieldNotFound     = "FIELD_NOT_FOUND"
	ErrCodeInvalidDataFormat = "INVALID_DATA_FORMAT"
)

// Request errors
const (
	ErrCodeValidation      = "VALIDATION_ERROR"
	ErrCodeProfileNotFound = "PROFILE_NOT_FOUND"
	ErrCodeUnauthorized    = "UNAUTHORIZED"
	ErrCodeQueueFailure    = "QUEUE_FAILURE"
	ErrCodeStorageFailure  = "STORAGE_FAILURE"
)

// Error Messages
// Human-readable messages corresponding to error codes

var DataProviderErrorMessages = map[string]string{
	ErrCodeNetworkError:     "Unable to reach the upstream source",
	ErrCodeRateLimited:      "The upstream source is rate limiting us. Please try again later",
	ErrCodeUpstreamStatus:   "The upstream source answered with an unexpected status",
	ErrCodeResourceNotFound: "The upstream resource was not found",

	ErrCodeTableNotFound:     "No table with the expected shape was found on the page",
	ErrCodeFieldNotFound:     "The expected column was not found in the table",
	ErrCodeInvalidDataFormat: "The data format is invalid",

	ErrCodeValidation:      "The request is invalid",
	ErrCodeProfileNotFound: "Profile not found",
	ErrCodeUnauthorized:    "Invalid credentials",
	ErrCodeQueueFailure:    "The message could not be queued",
	ErrCodeStorageFailure:  "The answer could not be saved",
}

// GetErrorMessage returns the human-readable message for an error code
func GetErrorMessage(code string) string {
	if msg, exists := DataProviderErrorMessages[code]; exists {
		return msg
	}
	return "An unknown error occurred"
}
