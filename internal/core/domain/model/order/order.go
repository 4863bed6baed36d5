package order

import (
	"errors"
	"fmt"
	"math"
	"slices"
	"strconv"
	"time"

	"ordermodel/internal/core/domain/model/kernel"
	"ordermodel/internal/pkg/errs"
	"ordermodel/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

// AllUnits requests removal of a whole line regardless of its quantity.
const AllUnits = math.MaxInt

var (
	// ErrOrderIsNotConstructed is reported by Validate when an Order instance was
	// not created through the NewOrder factory method.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
)

// Order is the aggregate root of a commerce order. It owns the ordered list of
// line items and the summary amounts, and derives subtotal and total from them
// on every read.
//
// Order follows these invariants:
//   - The identifier and creation time are fixed by NewOrder
//   - Every stored line has quantity >= 1
//   - Lines are unique by SKU and keep insertion order
//   - The discount is never negative when set through ApplyDiscount
//   - Total is never negative
//
// Status, payment status, amounts and addresses are set freely by the owner.
type Order struct {
	id         kernel.UUID
	customerID string

	// items keeps insertion order; the order stores copies, never caller pointers
	items []OrderItem

	shippingAmount decimal.Decimal
	taxAmount      decimal.Decimal
	discountAmount decimal.Decimal

	status        Status
	paymentStatus PaymentStatus

	shippingAddress string
	billingAddress  string

	createdAt time.Time

	// updatedAt stays nil until the first AddItem, RemoveItem or ApplyDiscount
	updatedAt *time.Time

	guard guard.ConstructorGuard
}

// NewOrder creates an empty order for customerID with a fresh identifier,
// Pending status, NotPaid payment status and zero amounts. An empty
// customerID is allowed and shown as "N/A" in the summary.
func NewOrder(customerID string) *Order {
	return &Order{
		id:            kernel.NewUUID(),
		customerID:    customerID,
		status:        Pending,
		paymentStatus: PaymentNotPaid,
		createdAt:     now(),
		guard:         guard.NewConstructorGuard(),
	}
}

// IsEqual compares two orders by identifier.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// CustomerID returns the customer the order belongs to; it may be empty.
func (o *Order) CustomerID() string {
	return o.customerID
}

// SetCustomerID replaces the customer reference. UpdatedAt is not changed.
func (o *Order) SetCustomerID(customerID string) {
	o.customerID = customerID
}

// Items returns a copy of the line items in insertion order.
func (o *Order) Items() []OrderItem {
	return slices.Clone(o.items)
}

// ItemCount returns the number of distinct lines, not the number of units.
func (o *Order) ItemCount() int {
	return len(o.items)
}

// Item returns the line for sku, or an ObjectNotFoundError.
func (o *Order) Item(sku string) (OrderItem, error) {
	i := o.indexOf(sku)
	if i < 0 {
		return OrderItem{}, errs.NewObjectNotFoundError("sku", sku)
	}
	return o.items[i], nil
}

// ShippingAmount returns the shipping charge added to the total.
func (o *Order) ShippingAmount() decimal.Decimal {
	return o.shippingAmount
}

// SetShippingAmount sets the shipping charge as given, without validation.
func (o *Order) SetShippingAmount(amount decimal.Decimal) {
	o.shippingAmount = amount
}

// TaxAmount returns the tax added to the total.
func (o *Order) TaxAmount() decimal.Decimal {
	return o.taxAmount
}

// SetTaxAmount sets the tax as given, without validation.
func (o *Order) SetTaxAmount(amount decimal.Decimal) {
	o.taxAmount = amount
}

// DiscountAmount returns the discount last set by ApplyDiscount.
func (o *Order) DiscountAmount() decimal.Decimal {
	return o.discountAmount
}

// Status returns the current fulfilment status.
func (o *Order) Status() Status {
	return o.status
}

// SetStatus assigns any status; no transition graph is enforced.
func (o *Order) SetStatus(status Status) {
	o.status = status
}

// PaymentStatus returns the current payment status.
func (o *Order) PaymentStatus() PaymentStatus {
	return o.paymentStatus
}

// SetPaymentStatus assigns any payment status; unknown values are reported by Validate.
func (o *Order) SetPaymentStatus(status PaymentStatus) {
	o.paymentStatus = status
}

// ShippingAddress returns the free-form delivery address.
func (o *Order) ShippingAddress() string {
	return o.shippingAddress
}

// SetShippingAddress replaces the delivery address.
func (o *Order) SetShippingAddress(address string) {
	o.shippingAddress = address
}

// BillingAddress returns the free-form billing address.
func (o *Order) BillingAddress() string {
	return o.billingAddress
}

// SetBillingAddress replaces the billing address.
func (o *Order) SetBillingAddress(address string) {
	o.billingAddress = address
}

// CreatedAt returns the UTC time the order was created.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// UpdatedAt returns the time of the last mutating operation, or nil if there was none.
func (o *Order) UpdatedAt() *time.Time {
	if o.updatedAt == nil {
		return nil
	}
	t := *o.updatedAt
	return &t
}

// Subtotal is the sum of all line totals.
func (o *Order) Subtotal() decimal.Decimal {
	subtotal := decimal.Zero
	for _, item := range o.items {
		subtotal = subtotal.Add(item.LineTotal())
	}
	return subtotal
}

// Total is subtotal + shipping + tax - discount, floored at zero.
func (o *Order) Total() decimal.Decimal {
	total := o.Subtotal().
		Add(o.shippingAmount).
		Add(o.taxAmount).
		Sub(o.discountAmount)
	return decimal.Max(decimal.Zero, total)
}

// AddItem adds a line to the order.
//
// If a line with the same SKU already exists, its quantity is increased by
// item.Quantity and its unit price is replaced with item.UnitPrice: the most
// recent price applies to the combined quantity. The existing line keeps its
// name and position. Otherwise a copy of item is appended, so later changes to
// item do not reach the order.
//
// Parameters:
//   - item: The line to add; Quantity must be positive
//
// Returns:
//   - nil on success, with UpdatedAt set
//   - errs.ValueIsRequiredError if item is nil
//   - errs.ValueIsInvalidError if item.Quantity is not positive or the merged
//     quantity would not fit in an int
//
// Example:
//
//	widget := NewOrderItem("A1", "Widget", decimal.RequireFromString("5.00"))
//	widget.Quantity = 2
//	if err := o.AddItem(widget); err != nil {
//	    // Handle invalid argument
//	}
//
// On error the order is left unchanged.
func (o *Order) AddItem(item *OrderItem) error {
	if item == nil {
		return errs.NewValueIsRequiredError("item")
	}
	if item.Quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"quantity",
			fmt.Errorf("%d is not greater than 0", item.Quantity),
		)
	}

	if i := o.indexOf(item.SKU); i >= 0 {
		existing := &o.items[i]
		if existing.Quantity > 0 && item.Quantity > math.MaxInt-existing.Quantity {
			return errs.NewValueIsInvalidErrorWithCause(
				"quantity",
				fmt.Errorf("%d more units of %q would overflow the line quantity %d",
					item.Quantity, item.SKU, existing.Quantity),
			)
		}
		existing.Quantity += item.Quantity
		existing.UnitPrice = item.UnitPrice
	} else {
		o.items = append(o.items, *item)
	}

	o.touch()
	return nil
}

// RemoveItem deletes the whole line for sku. It reports whether a line was removed.
func (o *Order) RemoveItem(sku string) bool {
	return o.RemoveQuantity(sku, AllUnits)
}

// RemoveQuantity takes quantity units off the line for sku.
//
// If quantity is greater than or equal to the line's quantity the line is
// deleted, otherwise the line is decremented and kept.
//
// Parameters:
//   - sku: The SKU of the line to reduce
//   - quantity: The number of units to remove; AllUnits removes the line
//
// Returns:
//   - true if units were removed, with UpdatedAt set
//   - false if no line has that SKU or quantity is zero or negative; the
//     order is not changed and UpdatedAt keeps its value
//
// Example:
//
//	if !o.RemoveQuantity("A1", 2) {
//	    // Nothing was removed
//	}
func (o *Order) RemoveQuantity(sku string, quantity int) bool {
	if quantity <= 0 {
		return false
	}

	i := o.indexOf(sku)
	if i < 0 {
		return false
	}

	if quantity >= o.items[i].Quantity {
		o.items = slices.Delete(o.items, i, i+1)
	} else {
		o.items[i].Quantity -= quantity
	}

	o.touch()
	return true
}

// ApplyDiscount sets the discount to exactly amount; discounts do not accumulate.
// A negative amount returns errs.ValueIsInvalidError and keeps the previous discount.
func (o *Order) ApplyDiscount(amount decimal.Decimal) error {
	if amount.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause(
			"discount",
			fmt.Errorf("%s is negative", amount),
		)
	}

	o.discountAmount = amount
	o.touch()
	return nil
}

// Validate runs the declared field constraints of the order and then of every
// line in sequence. It reports true with no violations when all of them hold,
// otherwise false with one Violation per failed constraint, order-level first.
// Validate never mutates the order.
func (o *Order) Validate() (bool, []Violation) {
	if o == nil {
		return false, []Violation{{Field: "order", Message: ErrOrderIsNotConstructed.Error()}}
	}

	var violations []Violation

	if err := o.guard.Validate(ErrOrderIsNotConstructed); err != nil {
		violations = append(violations, Violation{Field: "order", Message: err.Error()})
	}

	violations = append(violations, fields.check(orderConstraints{
		Status:         o.status,
		PaymentStatus:  o.paymentStatus,
		DiscountAmount: o.discountAmount,
	}, "")...)

	for i, item := range o.items {
		violations = append(violations, fields.check(item, "items["+strconv.Itoa(i)+"].")...)
	}

	return len(violations) == 0, violations
}

// String summarises the order for logs, e.g.
// "Order 6f1c… - Customer: c-42 - Items: 1 - Total: $17.50".
func (o *Order) String() string {
	customer := o.customerID
	if customer == "" {
		customer = "N/A"
	}
	return fmt.Sprintf("Order %s - Customer: %s - Items: %d - Total: %s",
		o.id, customer, len(o.items), kernel.FormatMoney(o.Total()))
}

func (o *Order) indexOf(sku string) int {
	return slices.IndexFunc(o.items, func(item OrderItem) bool {
		return item.SKU == sku
	})
}

func (o *Order) touch() {
	t := now()
	o.updatedAt = &t
}

func now() time.Time {
	return time.Now().UTC()
}
