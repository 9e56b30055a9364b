package errors_test

import (
	stdErrors "errors"
	"fmt"
	"net/http"
	"testing"

	appErrors "github.com/aaravmahajanofficial/storefront/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppError(t *testing.T) {
	t.Run("Wraps cause", func(t *testing.T) {
		// Arrange
		cause := stdErrors.New("connection refused")

		// Act
		err := appErrors.DatabaseError("Failed to load cart").WithError(cause)

		// Assert
		assert.ErrorIs(t, err, cause)
		assert.Equal(t, "Failed to load cart: connection refused", err.Error())
		assert.Equal(t, http.StatusInternalServerError, err.StatusCode)
	})

	t.Run("Found through wrapping", func(t *testing.T) {
		wrapped := fmt.Errorf("outer: %w", appErrors.NotFoundError("Order not found"))

		appErr, ok := appErrors.IsAppError(wrapped)

		require.True(t, ok)
		assert.Equal(t, appErrors.ErrCodeNotFound, appErr.Code)
		assert.True(t, appErrors.HasCode(wrapped, appErrors.ErrCodeNotFound))
		assert.False(t, appErrors.HasCode(wrapped, appErrors.ErrCodeForbidden))
	})

	t.Run("Status codes", func(t *testing.T) {
		assert.Equal(t, http.StatusBadRequest, appErrors.EmptyCartError("empty").StatusCode)
		assert.Equal(t, http.StatusForbidden, appErrors.SelfTargetError("self").StatusCode)
		assert.Equal(t, http.StatusConflict, appErrors.DuplicateEntryError("dup").StatusCode)
		assert.Equal(t, "detail", appErrors.BadRequestError("bad").WithDetail("detail").Detail)
	})

	t.Run("Plain error is not an AppError", func(t *testing.T) {
		_, ok := appErrors.IsAppError(stdErrors.New("plain"))
		assert.False(t, ok)
	})
}
