package errs

import (
	"errors"
	"fmt"
)

// ErrObjectNotFound is the sentinel wrapped by every ObjectNotFoundError; match it with errors.Is.
var ErrObjectNotFound = errors.New("object not found")

// ObjectNotFoundError reports a lookup by key that matched nothing.
type ObjectNotFoundError struct {
	ParamName string
	ID        any
	Cause     error
}

// NewObjectNotFoundError creates an error reporting that an object cannot be found.
func NewObjectNotFoundError(paramName string, id any) *ObjectNotFoundError {
	return &ObjectNotFoundError{
		ParamName: paramName,
		ID:        id,
	}
}

// NewObjectNotFoundErrorWithCause creates an error reporting that an object cannot be found, with the underlying cause.
func NewObjectNotFoundErrorWithCause(paramName string, id any, cause error) *ObjectNotFoundError {
	return &ObjectNotFoundError{
		ParamName: paramName,
		ID:        id,
		Cause:     cause,
	}
}

// Error formats the parameter and, when present, the cause.
func (e *ObjectNotFoundError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: param is: %s, ID is: %s (cause: %v)",
			ErrObjectNotFound, e.ParamName, e.ID, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrObjectNotFound, e.ID)
}

// Unwrap returns ErrObjectNotFound so that errors.Is matches the whole class.
func (e *ObjectNotFoundError) Unwrap() error {
	return ErrObjectNotFound
}
