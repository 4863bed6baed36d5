package errs

import (
	"errors"
	"fmt"
)

// ErrValueIsRequired is the sentinel wrapped by every ValueIsRequiredError; match it with errors.Is.
var ErrValueIsRequired = errors.New("value is required")

// ValueIsRequiredError reports a missing (nil or empty) argument.
type ValueIsRequiredError struct {
	ParamName string
	Cause     error
}

// NewValueIsRequiredError creates an error reporting that a required value is missing.
func NewValueIsRequiredError(paramName string) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName}
}

// NewValueIsRequiredErrorWithCause creates an error reporting that a required value is missing, with the underlying cause.
func NewValueIsRequiredErrorWithCause(paramName string, cause error) *ValueIsRequiredError {
	return &ValueIsRequiredError{
		ParamName: paramName,
		Cause:     cause,
	}
}

// Error formats the parameter and, when present, the cause.
func (e *ValueIsRequiredError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", ErrValueIsRequired, e.ParamName, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrValueIsRequired, e.ParamName)
}

// Unwrap returns ErrValueIsRequired so that errors.Is matches the whole class.
func (e *ValueIsRequiredError) Unwrap() error {
	return ErrValueIsRequired
}
