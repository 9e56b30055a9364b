package models_test

import (
	"testing"

	"github.com/aaravmahajanofficial/storefront/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestOrderStatus(t *testing.T) {
	tests := []struct {
		status   models.OrderStatus
		label    string
		valid    bool
		terminal bool
	}{
		{models.OrderStatusPending, "Pending", true, false},
		{models.OrderStatusPaid, "Paid", true, false},
		{models.OrderStatusShipped, "Shipped", true, false},
		{models.OrderStatusDelivered, "Delivered", true, true},
		{models.OrderStatusCancelled, "Cancelled", true, true},
		{models.OrderStatus("refunded"), "Unknown", false, false},
		{models.OrderStatus(""), "Unknown", false, false},
	}

	for _, tc := range tests {
		t.Run(string(tc.status), func(t *testing.T) {
			assert.Equal(t, tc.label, tc.status.Label())
			assert.Equal(t, tc.valid, tc.status.Valid())
			assert.Equal(t, tc.terminal, tc.status.IsTerminal())
		})
	}
}

func TestOrderPresent(t *testing.T) {
	t.Run("Pending keeps the payment link", func(t *testing.T) {
		order := &models.Order{Status: models.OrderStatusPending, PaymentURL: "https://pay.test/x"}

		order.Present()

		assert.Equal(t, "Pending", order.StatusLabel)
		assert.Equal(t, "https://pay.test/x", order.PaymentURL)
	})

	t.Run("Paid hides the payment link", func(t *testing.T) {
		order := &models.Order{Status: models.OrderStatusPaid, PaymentURL: "https://pay.test/x"}

		order.Present()

		assert.Equal(t, "Paid", order.StatusLabel)
		assert.Empty(t, order.PaymentURL)
	})
}
