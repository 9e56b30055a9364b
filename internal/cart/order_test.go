package cart_test

import (
	"testing"

	"github.com/aaravmahajanofficial/storefront/internal/cart"
	"github.com/aaravmahajanofficial/storefront/internal/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildOrder(t *testing.T) {
	userID := uuid.New()

	shirt := &models.Product{
		ID:            uuid.New(),
		Name:          "Linen Shirt",
		Price:         decimal.RequireFromString("50.00"),
		DiscountPrice: decimal.NewNullDecimal(decimal.RequireFromString("40.00")),
	}
	skirt := &models.Product{ID: uuid.New(), Name: "Pleated Skirt", Price: decimal.RequireFromString("35.50")}

	t.Run("Captures prices and totals once", func(t *testing.T) {
		// Arrange
		lines := []models.CartLine{
			{ID: uuid.New(), ProductID: shirt.ID, Quantity: 2, Size: "M", Color: "White", Product: shirt},
			{ID: uuid.New(), ProductID: skirt.ID, Quantity: 1, Size: "S", Color: "Black", Product: skirt},
		}

		// Act
		order := cart.BuildOrder(userID, lines)

		// Assert
		require.Len(t, order.Items, 2)
		assert.Equal(t, userID, order.UserID)
		assert.Equal(t, models.OrderStatusPending, order.Status)
		assert.True(t, decimal.RequireFromString("115.50").Equal(order.Total), "got %s", order.Total)
		assert.True(t, decimal.RequireFromString("40.00").Equal(order.Items[0].Price))
		assert.True(t, decimal.RequireFromString("35.50").Equal(order.Items[1].Price))
		assert.Equal(t, lines[0].ID, order.Items[0].CartLineID)
		assert.Equal(t, lines[1].ID, order.Items[1].CartLineID)

		for _, item := range order.Items {
			assert.Equal(t, order.ID, item.OrderID)
			assert.NotEqual(t, uuid.Nil, item.ID)
		}
	})

	t.Run("Unresolved product captures zero", func(t *testing.T) {
		// Arrange
		lines := []models.CartLine{{ID: uuid.New(), ProductID: uuid.New(), Quantity: 3}}

		// Act
		order := cart.BuildOrder(userID, lines)

		// Assert
		require.Len(t, order.Items, 1)
		assert.True(t, order.Items[0].Price.IsZero())
		assert.True(t, order.Total.IsZero())
	})

	t.Run("Later price change does not touch captured price", func(t *testing.T) {
		// Arrange
		p := &models.Product{ID: uuid.New(), Price: decimal.NewFromInt(10)}
		order := cart.BuildOrder(userID, []models.CartLine{{ProductID: p.ID, Quantity: 1, Product: p}})

		// Act
		p.Price = decimal.NewFromInt(99)

		// Assert
		assert.True(t, decimal.NewFromInt(10).Equal(order.Items[0].Price))
		assert.True(t, decimal.NewFromInt(10).Equal(order.Total))
	})
}
