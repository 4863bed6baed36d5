package order

import (
	"fmt"

	"ordermodel/internal/pkg/errs"
)

// Status is the fulfilment state of an order. Any status may be set at any
// time; transition rules belong to whoever owns the workflow.
type Status int

const (
	// Unknown is the zero value and is never a valid status.
	Unknown Status = iota

	Pending

	Processing

	Shipped

	Delivered

	Cancelled

	Returned
)

// getStatusStrings returns every Status with its display name, Unknown included.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:    "Unknown",
		Pending:    "Pending",
		Processing: "Processing",
		Shipped:    "Shipped",
		Delivered:  "Delivered",
		Cancelled:  "Cancelled",
		Returned:   "Returned",
	}
}

// Validate returns an error for Unknown and for values outside the enumeration.
func (s Status) Validate() error {
	if _, ok := getStatusStrings()[s]; !ok || s == Unknown {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the status name, or "Unknown" for values outside the enumeration.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}
