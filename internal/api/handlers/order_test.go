package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/aaravmahajanofficial/storefront/internal/api/handlers"
	appErrors "github.com/aaravmahajanofficial/storefront/internal/errors"
	"github.com/aaravmahajanofficial/storefront/internal/models"
	"github.com/aaravmahajanofficial/storefront/internal/services/mocks"
	"github.com/aaravmahajanofficial/storefront/internal/testutils"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func setupOrderTest(t *testing.T) (*mocks.MockOrderService, *handlers.OrderHandler) {
	mockOrderService := mocks.NewMockOrderService(t)

	return mockOrderService, handlers.NewOrderHandler(mockOrderService)
}

func TestListOrders(t *testing.T) {
	tests := []struct {
		name         string
		query        string
		wantPage     int
		wantPageSize int
	}{
		{"Defaults", "", 1, 10},
		{"Explicit", "?page=3&pageSize=25", 3, 25},
		{"Out of range falls back", "?page=-1&pageSize=500", 1, 10},
		{"Garbage falls back", "?page=abc&pageSize=x", 1, 10},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			// Arrange
			mockOrderService, orderHandler := setupOrderTest(t)
			userID := uuid.New()
			req := testutils.CreateTestRequestWithContext(http.MethodGet, "/api/v1/orders"+tc.query, nil, userID, nil)
			rec := httptest.NewRecorder()

			orders := []models.Order{{ID: uuid.New(), UserID: userID, Status: models.OrderStatusPaid, StatusLabel: "Paid"}}
			mockOrderService.On("ListOrders", mock.Anything, userID, tc.wantPage, tc.wantPageSize).Return(orders, 1, nil).Once()

			// Act
			orderHandler.ListOrders()(rec, req)

			// Assert
			assert.Equal(t, http.StatusOK, rec.Code)
			data, ok := decodeResponse(t, rec).Data.(map[string]any)
			require.True(t, ok)
			assert.Equal(t, float64(1), data["total"])
			assert.Equal(t, float64(tc.wantPage), data["page"])
			assert.Equal(t, float64(tc.wantPageSize), data["pageSize"])
		})
	}

	t.Run("Failure - Unauthorized", func(t *testing.T) {
		_, orderHandler := setupOrderTest(t)
		req := testutils.CreateTestRequestWithoutContext(http.MethodGet, "/api/v1/orders", nil, nil)
		rec := httptest.NewRecorder()

		orderHandler.ListOrders()(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestGetOrder(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		// Arrange
		mockOrderService, orderHandler := setupOrderTest(t)
		userID := uuid.New()
		orderID := uuid.New()
		req := testutils.CreateTestRequestWithContext(http.MethodGet, "/api/v1/orders/"+orderID.String(), nil, userID,
			map[string]string{"id": orderID.String()})
		rec := httptest.NewRecorder()

		mockOrderService.On("GetOrder", mock.Anything, userID, orderID).Return(&models.Order{ID: orderID, UserID: userID}, nil).Once()

		// Act
		orderHandler.GetOrder()(rec, req)

		// Assert
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("Failure - Forbidden", func(t *testing.T) {
		// Arrange
		mockOrderService, orderHandler := setupOrderTest(t)
		userID := uuid.New()
		orderID := uuid.New()
		req := testutils.CreateTestRequestWithContext(http.MethodGet, "/api/v1/orders/"+orderID.String(), nil, userID,
			map[string]string{"id": orderID.String()})
		rec := httptest.NewRecorder()

		mockOrderService.On("GetOrder", mock.Anything, userID, orderID).
			Return(nil, appErrors.ForbiddenError("You don't have permission to access this order")).Once()

		// Act
		orderHandler.GetOrder()(rec, req)

		// Assert
		assert.Equal(t, http.StatusForbidden, rec.Code)
		assert.Equal(t, appErrors.ErrCodeForbidden, decodeResponse(t, rec).Error.Code)
	})

	t.Run("Failure - Invalid id", func(t *testing.T) {
		_, orderHandler := setupOrderTest(t)
		req := testutils.CreateTestRequestWithContext(http.MethodGet, "/api/v1/orders/nope", nil, uuid.New(),
			map[string]string{"id": "nope"})
		rec := httptest.NewRecorder()

		orderHandler.GetOrder()(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
