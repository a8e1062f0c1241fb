package models

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestStaffTransitionTable(t *testing.T) {
	targets := []OrderStatus{OrderStatusPendingPayment, OrderStatusPaid, OrderStatusOnTheWay, OrderStatusDelivered}

	// Any non-terminal status can jump to any staff target.
	for _, from := range []OrderStatus{OrderStatusCreated, OrderStatusPendingPayment, OrderStatusPaid, OrderStatusOnTheWay} {
		for _, to := range targets {
			assert.True(t, from.CanTransitionTo(to), "%s -> %s should be allowed", from, to)
		}
	}

	// Terminal statuses allow nothing.
	for _, from := range []OrderStatus{OrderStatusDelivered, OrderStatusCanceled} {
		for _, to := range targets {
			assert.False(t, from.CanTransitionTo(to), "%s -> %s should be rejected", from, to)
		}
	}
}

func TestIsTerminal(t *testing.T) {
	assert.True(t, OrderStatusDelivered.IsTerminal())
	assert.True(t, OrderStatusCanceled.IsTerminal())
	assert.False(t, OrderStatusCreated.IsTerminal())
	assert.False(t, OrderStatusPendingPayment.IsTerminal())
	assert.False(t, OrderStatusPaid.IsTerminal())
	assert.False(t, OrderStatusOnTheWay.IsTerminal())
}

func TestCancelableByOwner(t *testing.T) {
	assert.True(t, OrderStatusCreated.CancelableByOwner())
	assert.True(t, OrderStatusPendingPayment.CancelableByOwner())
	assert.False(t, OrderStatusPaid.CancelableByOwner())
	assert.False(t, OrderStatusOnTheWay.CancelableByOwner())
	assert.False(t, OrderStatusDelivered.CancelableByOwner())
	assert.False(t, OrderStatusCanceled.CancelableByOwner())
}

func TestParseStaffStatus(t *testing.T) {
	for _, valid := range []string{"PENDING_PAYMENT", "PAID", "ON_THE_WAY", "DELIVERED"} {
		status, ok := ParseStaffStatus(valid)
		assert.True(t, ok)
		assert.Equal(t, OrderStatus(valid), status)
	}
	for _, invalid := range []string{"CREATED", "CANCELED", "paid", "SHIPPED", ""} {
		_, ok := ParseStaffStatus(invalid)
		assert.False(t, ok, "%q should not parse", invalid)
	}
}

func TestPurchasePrice(t *testing.T) {
	regular := decimal.NewFromFloat(10.00)
	discount := decimal.NewFromFloat(8.99)

	p := Product{Price: regular}
	assert.True(t, p.PurchasePrice().Equal(regular))

	p.DiscountPrice = &discount
	assert.True(t, p.PurchasePrice().Equal(discount))
}
