package order

import (
	"github.com/shopspring/decimal"
)

// OrderItem is one purchased line. It is a plain value holder: constraints are
// declared in the validate tags and checked by Order.Validate, not on assignment.
type OrderItem struct {
	SKU       string          `json:"sku" validate:"notblank"`
	Name      string          `json:"name" validate:"notblank"`
	Quantity  int             `json:"quantity" validate:"min=1"`
	UnitPrice decimal.Decimal `json:"unitPrice" validate:"nonneg"`
}

// NewOrderItem returns a single-unit line. Set Quantity afterwards for more.
func NewOrderItem(sku, name string, unitPrice decimal.Decimal) *OrderItem {
	return &OrderItem{
		SKU:       sku,
		Name:      name,
		Quantity:  1,
		UnitPrice: unitPrice,
	}
}

// LineTotal is Quantity * UnitPrice.
func (i OrderItem) LineTotal() decimal.Decimal {
	return i.UnitPrice.Mul(decimal.NewFromInt(int64(i.Quantity)))
}
