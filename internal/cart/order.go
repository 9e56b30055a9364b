package cart

import (
	"time"

	"github.com/aaravmahajanofficial/storefront/internal/models"
	"github.com/aaravmahajanofficial/storefront/internal/pricing"
	"github.com/google/uuid"
)

// BuildOrder turns cart lines into a pending order. Each line captures the
// unit price it sells at now and the total is computed once from the lines.
func BuildOrder(userID uuid.UUID, lines []models.CartLine) *models.Order {
	now := time.Now()

	order := &models.Order{
		ID:        uuid.New(),
		UserID:    userID,
		Status:    models.OrderStatusPending,
		Total:     pricing.Total(lines),
		Items:     make([]models.OrderLine, 0, len(lines)),
		CreatedAt: now,
		UpdatedAt: now,
	}

	for _, line := range lines {
		order.Items = append(order.Items, models.OrderLine{
			ID:        uuid.New(),
			OrderID:   order.ID,
			ProductID: line.ProductID,
			Quantity:  line.Quantity,
			Size:      line.Size,
			Color:     line.Color,
			Price:     pricing.UnitPrice(line.Product),
			CreatedAt: now,
			Product:   line.Product,

			CartLineID: line.ID,
		})
	}

	return order
}
