// Package kernel provides the shared value types of the order domain.
//
// The package includes:
//   - UUID: the order identifier, a thin wrapper over github.com/google/uuid
//     that rejects the nil UUID
//   - FormatMoney: renders a decimal amount as a dollar currency string
//
// Monetary amounts themselves are github.com/shopspring/decimal values so that
// line totals and order totals are exact.
package kernel
