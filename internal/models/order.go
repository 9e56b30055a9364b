package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusPaid      OrderStatus = "paid"
	OrderStatusShipped   OrderStatus = "shipped"
	OrderStatusDelivered OrderStatus = "delivered"
	OrderStatusCancelled OrderStatus = "cancelled"
)

func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusPending, OrderStatusPaid, OrderStatusShipped, OrderStatusDelivered, OrderStatusCancelled:
		return true
	}

	return false
}

// Label maps a status to its display text. It is not a transition function.
func (s OrderStatus) Label() string {
	switch s {
	case OrderStatusPending:
		return "Pending"
	case OrderStatusPaid:
		return "Paid"
	case OrderStatusShipped:
		return "Shipped"
	case OrderStatusDelivered:
		return "Delivered"
	case OrderStatusCancelled:
		return "Cancelled"
	}

	return "Unknown"
}

func (s OrderStatus) IsTerminal() bool {
	return s == OrderStatusDelivered || s == OrderStatusCancelled
}

// OrderLine stores the unit price captured when the order was created.
type OrderLine struct {
	ID        uuid.UUID       `json:"id"`
	OrderID   uuid.UUID       `json:"order_id"`
	ProductID uuid.UUID       `json:"product_id"`
	Quantity  int             `json:"quantity"`
	Size      string          `json:"size"`
	Color     string          `json:"color"`
	Price     decimal.Decimal `json:"price"`
	CreatedAt time.Time       `json:"created_at"`
	Product   *Product        `json:"product,omitempty"`

	// CartLineID is the cart line this item was converted from. Checkout
	// clears exactly those lines.
	CartLineID uuid.UUID `json:"-"`
}

type Order struct {
	ID          uuid.UUID       `json:"id"`
	UserID      uuid.UUID       `json:"user_id"`
	Total       decimal.Decimal `json:"total"`
	Status      OrderStatus     `json:"status"`
	StatusLabel string          `json:"status_label"`
	PaymentURL  string          `json:"payment_url,omitempty"`
	Items       []OrderLine     `json:"items"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// Present fills derived fields and hides the payment link once it is no
// longer actionable.
func (o *Order) Present() {
	o.StatusLabel = o.Status.Label()
	if o.Status != OrderStatusPending {
		o.PaymentURL = ""
	}
}

type AdminStats struct {
	TotalRevenue  decimal.Decimal `json:"total_revenue"`
	TotalOrders   int             `json:"total_orders"`
	TotalProducts int             `json:"total_products"`
	TotalUsers    int             `json:"total_users"`
}
