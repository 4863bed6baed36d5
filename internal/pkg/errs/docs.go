// Package errs provides standardized error types for the order domain.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the module.
//
// The package includes several error types for common error scenarios:
//   - ValueIsRequiredError: For when a required value is missing
//   - ValueIsInvalidError: For when a value violates a precondition
//   - ObjectNotFoundError: For when an object cannot be found
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrValueIsRequired)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method for error wrapping/unwrapping support
//
// ValueIsRequiredError and ValueIsInvalidError together form the
// "invalid argument" class returned synchronously by aggregate methods.
// Use IsInvalidArgument to classify an error without caring which of the two
// was produced.
package errs
