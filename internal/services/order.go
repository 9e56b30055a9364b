package service

import (
	"context"
	"errors"

	appErrors "github.com/aaravmahajanofficial/storefront/internal/errors"
	"github.com/aaravmahajanofficial/storefront/internal/models"
	repository "github.com/aaravmahajanofficial/storefront/internal/repositories"
	"github.com/google/uuid"
)

type OrderService interface {
	ListOrders(ctx context.Context, userID uuid.UUID, page, size int) ([]models.Order, int, error)
	GetOrder(ctx context.Context, userID, orderID uuid.UUID) (*models.Order, error)
}

type orderService struct {
	orderRepo repository.OrderRepository
}

func NewOrderService(orderRepo repository.OrderRepository) OrderService {
	return &orderService{orderRepo: orderRepo}
}

// ListOrders returns one page of the user's orders, newest first, with lines
// and products resolved.
func (s *orderService) ListOrders(ctx context.Context, userID uuid.UUID, page, size int) ([]models.Order, int, error) {

	orders, total, err := s.orderRepo.ListOrdersByUser(ctx, userID, page, size)
	if err != nil {
		return nil, 0, appErrors.DatabaseError("Failed to list orders").WithError(err)
	}

	for i := range orders {
		orders[i].Present()
	}

	return orders, total, nil
}

func (s *orderService) GetOrder(ctx context.Context, userID, orderID uuid.UUID) (*models.Order, error) {

	order, err := s.orderRepo.GetOrderByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, appErrors.NotFoundError("Order not found").WithError(err)
		}
		return nil, appErrors.DatabaseError("Failed to fetch order").WithError(err)
	}

	if order.UserID != userID {
		return nil, appErrors.ForbiddenError("You don't have permission to access this order")
	}

	order.Present()

	return order, nil
}
