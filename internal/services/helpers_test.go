package service_test

import (
	"context"
	"testing"

	"github.com/aaravmahajanofficial/storefront/internal/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

type mockLinkGenerator struct {
	mock.Mock
}

func (m *mockLinkGenerator) PaymentLink(ctx context.Context, order *models.Order) (string, error) {
	ret := m.Called(ctx, order)

	return ret.String(0), ret.Error(1)
}

func newMockLinkGenerator(t *testing.T) *mockLinkGenerator {
	m := &mockLinkGenerator{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

type mockNotifier struct {
	mock.Mock
}

func (m *mockNotifier) OrderPlaced(ctx context.Context, user *models.User, order *models.Order) error {
	return m.Called(ctx, user, order).Error(0)
}

func newMockNotifier(t *testing.T) *mockNotifier {
	m := &mockNotifier{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func testProduct(price string) *models.Product {
	return &models.Product{
		ID:       uuid.New(),
		Name:     "Wrap Dress",
		Price:    decimal.RequireFromString(price),
		Category: models.CategoryDresses,
		Sizes:    []string{"S", "M"},
		Colors:   []string{"Pink", "Black"},
	}
}
