package services

import (
	"fmt"

	"atn-virtual/crewcenter/internal/constants"
)

// ValidationError reports a request the service refuses to act on
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func newValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// ServiceError wraps failures of a backing store or queue
type ServiceError struct {
	Code    string
	Message string
	Err     error
}

func (e *ServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *ServiceError) Unwrap() error {
	return e.Err
}

func newServiceError(code string, err error) *ServiceError {
	return &ServiceError{Code: code, Message: constants.GetErrorMessage(code), Err: err}
}
