package order

import (
	"errors"
	"fmt"
	"slices"
	"time"

	"ordermodel/internal/core/domain/model/kernel"
	"ordermodel/internal/pkg/errs"
	"ordermodel/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

// Snapshot is the complete state of an order as exchanged with an external store.
type Snapshot struct {
	ID              kernel.UUID     `json:"orderId"`
	CustomerID      string          `json:"customerId"`
	Items           []OrderItem     `json:"items"`
	ShippingAmount  decimal.Decimal `json:"shippingAmount"`
	TaxAmount       decimal.Decimal `json:"taxAmount"`
	DiscountAmount  decimal.Decimal `json:"discountAmount"`
	Status          Status          `json:"status"`
	PaymentStatus   PaymentStatus   `json:"paymentStatus"`
	ShippingAddress string          `json:"shippingAddress"`
	BillingAddress  string          `json:"billingAddress"`
	CreatedAt       time.Time       `json:"createdAt"`
	UpdatedAt       *time.Time      `json:"updatedAt,omitempty"`
}

// Snapshot copies the current state of the order.
func (o *Order) Snapshot() Snapshot {
	return Snapshot{
		ID:              o.id,
		CustomerID:      o.customerID,
		Items:           o.Items(),
		ShippingAmount:  o.shippingAmount,
		TaxAmount:       o.taxAmount,
		DiscountAmount:  o.discountAmount,
		Status:          o.status,
		PaymentStatus:   o.paymentStatus,
		ShippingAddress: o.shippingAddress,
		BillingAddress:  o.billingAddress,
		CreatedAt:       o.createdAt,
		UpdatedAt:       o.UpdatedAt(),
	}
}

// RestoreOrder rebuilds an order loaded from an external store.
//
// Only identity and structure are enforced here: a valid identifier, a
// creation time and at most one line per SKU. Field-level constraints on
// lines and amounts are left to Validate so that a stored order can be
// inspected even when it no longer satisfies them.
func RestoreOrder(s Snapshot) (*Order, error) {
	if err := errors.Join(
		s.ID.Validate(),
		validateCreatedAt(s.CreatedAt),
		validateUniqueSKUs(s.Items),
	); err != nil {
		return nil, err
	}

	o := &Order{
		id:              s.ID,
		customerID:      s.CustomerID,
		items:           slices.Clone(s.Items),
		shippingAmount:  s.ShippingAmount,
		taxAmount:       s.TaxAmount,
		discountAmount:  s.DiscountAmount,
		status:          s.Status,
		paymentStatus:   s.PaymentStatus,
		shippingAddress: s.ShippingAddress,
		billingAddress:  s.BillingAddress,
		createdAt:       s.CreatedAt,
		guard:           guard.NewConstructorGuard(),
	}
	if s.UpdatedAt != nil {
		t := *s.UpdatedAt
		o.updatedAt = &t
	}
	return o, nil
}

func validateCreatedAt(createdAt time.Time) error {
	if createdAt.IsZero() {
		return errs.NewValueIsRequiredError("createdAt")
	}
	return nil
}

func validateUniqueSKUs(items []OrderItem) error {
	seen := make(map[string]struct{}, len(items))
	for _, item := range items {
		if _, dup := seen[item.SKU]; dup {
			return errs.NewValueIsInvalidErrorWithCause("items", fmt.Errorf("duplicate sku %q", item.SKU))
		}
		seen[item.SKU] = struct{}{}
	}
	return nil
}
