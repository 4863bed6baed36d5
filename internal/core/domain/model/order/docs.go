// Package order provides the Order aggregate of a commerce order: line items,
// derived monetary totals, status enumerations and field-level validation.
//
// The package includes:
//   - Order: the aggregate root owning the line items and summary amounts
//   - OrderItem: one purchased line, keyed by SKU
//   - Status and PaymentStatus: free-standing enumerations with no enforced
//     transition graph
//
// Key business rules:
//   - Every stored line has quantity >= 1; a line reduced to zero is removed
//   - At most one line per SKU; adding an existing SKU merges quantities and
//     applies the incoming unit price to the whole line
//   - Total is max(0, subtotal + shipping + tax - discount) and never negative
//   - Discounts are set absolutely and cannot be negative
//
// Validation is descriptive: Order.Validate returns the list of violated field
// constraints instead of an error. Operations that receive an invalid argument
// return an errs "invalid argument" error and leave the order unchanged.
//
// An Order is not safe for concurrent mutation; callers that share one must
// synchronize access themselves.
package order
