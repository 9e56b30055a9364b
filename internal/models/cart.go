package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CartLine is one (product, size, color) entry of a user's cart.
type CartLine struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	ProductID uuid.UUID `json:"product_id"`
	Quantity  int       `json:"quantity"`
	Size      string    `json:"size"`
	Color     string    `json:"color"`
	CreatedAt time.Time `json:"created_at"`
	Product   *Product  `json:"product,omitempty"`
}

// SameItem reports whether the line holds the given product variant.
func (l CartLine) SameItem(productID uuid.UUID, size, color string) bool {
	return l.ProductID == productID && l.Size == size && l.Color == color
}

type Cart struct {
	UserID    uuid.UUID       `json:"user_id"`
	Lines     []CartLine      `json:"lines"`
	ItemCount int             `json:"item_count"`
	Total     decimal.Decimal `json:"total"`
}

type AddItemRequest struct {
	ProductID uuid.UUID `json:"product_id" validate:"required"`
	Size      string    `json:"size"`
	Color     string    `json:"color"`
}

// Quantity may be zero or negative, which removes the line.
type UpdateQuantityRequest struct {
	Quantity *int `json:"quantity" validate:"required"`
}
