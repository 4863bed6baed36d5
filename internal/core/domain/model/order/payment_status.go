package order

import (
	"fmt"

	"ordermodel/internal/pkg/errs"
)

// PaymentStatus tracks the payment side of an order independently of Status.
type PaymentStatus int

const (
	// PaymentUnknown is the zero value and is never a valid payment status.
	PaymentUnknown PaymentStatus = iota

	// PaymentNotPaid is the initial payment status of a new order.
	PaymentNotPaid

	// PaymentPending means a payment was started but not confirmed.
	PaymentPending

	// PaymentCompleted means the payment was captured.
	PaymentCompleted

	// PaymentFailed means the payment was declined or errored.
	PaymentFailed

	// PaymentRefunded means a captured payment was returned to the customer.
	PaymentRefunded
)

// getPaymentStatusStrings returns every PaymentStatus with its display name.
func getPaymentStatusStrings() map[PaymentStatus]string {
	return map[PaymentStatus]string{
		PaymentUnknown:   "Unknown",
		PaymentNotPaid:   "NotPaid",
		PaymentPending:   "Pending",
		PaymentCompleted: "Completed",
		PaymentFailed:    "Failed",
		PaymentRefunded:  "Refunded",
	}
}

// Validate returns an error for PaymentUnknown and for values outside the enumeration.
//
// Returns:
//   - nil if the payment status is valid
//   - errs.ValueIsInvalidError with the offending value as cause otherwise
func (s PaymentStatus) Validate() error {
	if _, ok := getPaymentStatusStrings()[s]; !ok || s == PaymentUnknown {
		return errs.NewValueIsInvalidErrorWithCause(
			"payment status is invalid",
			fmt.Errorf("%d is not a valid payment status", s),
		)
	}
	return nil
}

// String returns the payment status name, e.g. "NotPaid", or "Unknown".
func (s PaymentStatus) String() string {
	if str, ok := getPaymentStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}
