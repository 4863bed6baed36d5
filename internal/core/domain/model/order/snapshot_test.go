package order_test

import (
	"encoding/json"
	"testing"
	"time"

	"ordermodel/internal/core/domain/model/kernel"
	"ordermodel/internal/core/domain/model/order"
	"ordermodel/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrder_Snapshot(t *testing.T) {
	o := order.NewOrder("c-42")
	o.SetShippingAmount(dec("4.00"))
	o.SetTaxAmount(dec("1.00"))
	o.SetStatus(order.Processing)
	o.SetPaymentStatus(order.PaymentCompleted)
	o.SetShippingAddress("1 Main St")
	o.SetBillingAddress("2 Side St")
	require.NoError(t, o.AddItem(item("A1", 2, "5.00")))
	require.NoError(t, o.ApplyDiscount(dec("3.00")))

	s := o.Snapshot()

	assert.True(t, o.ID().IsEqual(s.ID))
	assert.Equal(t, "c-42", s.CustomerID)
	require.Len(t, s.Items, 1)
	assertDecimal(t, "4.00", s.ShippingAmount)
	assertDecimal(t, "1.00", s.TaxAmount)
	assertDecimal(t, "3.00", s.DiscountAmount)
	assert.Equal(t, order.Processing, s.Status)
	assert.Equal(t, order.PaymentCompleted, s.PaymentStatus)
	assert.Equal(t, "1 Main St", s.ShippingAddress)
	assert.Equal(t, "2 Side St", s.BillingAddress)
	assert.Equal(t, o.CreatedAt(), s.CreatedAt)
	require.NotNil(t, s.UpdatedAt)

	t.Run("should not share items with the order", func(t *testing.T) {
		s.Items[0].Quantity = 99

		stored, err := o.Item("A1")
		require.NoError(t, err)
		assert.Equal(t, 2, stored.Quantity)
	})
}

func TestRestoreOrder(t *testing.T) {
	t.Run("should round trip a snapshot", func(t *testing.T) {
		o := order.NewOrder("c-42")
		require.NoError(t, o.AddItem(item("A1", 2, "5.00")))
		require.NoError(t, o.AddItem(item("B2", 1, "0.50")))
		require.NoError(t, o.ApplyDiscount(dec("1.00")))

		restored, err := order.RestoreOrder(o.Snapshot())

		require.NoError(t, err)
		assert.True(t, o.IsEqual(restored))
		assert.Equal(t, o.Items(), restored.Items())
		assertDecimal(t, "9.50", restored.Total())
		assert.Equal(t, o.String(), restored.String())
		assert.Equal(t, o.UpdatedAt(), restored.UpdatedAt())

		valid, violations := restored.Validate()
		assert.True(t, valid)
		assert.Empty(t, violations)
	})

	t.Run("should survive a JSON round trip", func(t *testing.T) {
		o := order.NewOrder("c-42")
		require.NoError(t, o.AddItem(item("A1", 3, "4.50")))

		data, err := json.Marshal(o.Snapshot())
		require.NoError(t, err)

		var decoded order.Snapshot
		require.NoError(t, json.Unmarshal(data, &decoded))

		restored, err := order.RestoreOrder(decoded)
		require.NoError(t, err)
		assert.True(t, o.ID().IsEqual(restored.ID()))
		assertDecimal(t, "13.50", restored.Subtotal())
	})

	t.Run("should keep updatedAt nil when absent", func(t *testing.T) {
		restored, err := order.RestoreOrder(order.Snapshot{
			ID:        kernel.NewUUID(),
			CreatedAt: time.Now().UTC(),
		})

		require.NoError(t, err)
		assert.Nil(t, restored.UpdatedAt())
	})

	t.Run("should reject missing identity and creation time", func(t *testing.T) {
		restored, err := order.RestoreOrder(order.Snapshot{})

		require.Error(t, err)
		assert.Nil(t, restored)
		require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Contains(t, err.Error(), "createdAt")
	})

	t.Run("should reject duplicate skus", func(t *testing.T) {
		restored, err := order.RestoreOrder(order.Snapshot{
			ID:        kernel.NewUUID(),
			CreatedAt: time.Now().UTC(),
			Items:     []order.OrderItem{*item("A1", 1, "1"), *item("A1", 2, "1")},
		})

		require.Error(t, err)
		assert.Nil(t, restored)
		assert.True(t, errs.IsInvalidArgument(err))
		assert.Contains(t, err.Error(), `duplicate sku "A1"`)
	})
}
