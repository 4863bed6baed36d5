package errs

import (
	"errors"
	"fmt"
)

// ErrValueIsInvalid is the sentinel wrapped by every ValueIsInvalidError; match it with errors.Is.
var ErrValueIsInvalid = errors.New("value is invalid")

// ValueIsInvalidError reports an argument that is present but violates a
// precondition, e.g. a non-positive quantity or a negative discount.
type ValueIsInvalidError struct {
	ParamName string
	Cause     error
}

// NewValueIsInvalidError creates an error reporting that a value violates a precondition.
func NewValueIsInvalidError(paramName string) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName}
}

// NewValueIsInvalidErrorWithCause creates an error reporting that a value violates a precondition, with the underlying cause.
func NewValueIsInvalidErrorWithCause(paramName string, cause error) *ValueIsInvalidError {
	return &ValueIsInvalidError{
		ParamName: paramName,
		Cause:     cause,
	}
}

// Error formats the parameter and, when present, the cause.
func (e *ValueIsInvalidError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", ErrValueIsInvalid, e.ParamName, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrValueIsInvalid, e.ParamName)
}

// Unwrap returns ErrValueIsInvalid so that errors.Is matches the whole class.
func (e *ValueIsInvalidError) Unwrap() error {
	return ErrValueIsInvalid
}

// IsInvalidArgument reports whether err belongs to the invalid argument class,
// i.e. wraps ErrValueIsInvalid or ErrValueIsRequired.
func IsInvalidArgument(err error) bool {
	return errors.Is(err, ErrValueIsInvalid) || errors.Is(err, ErrValueIsRequired)
}
