package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/aaravmahajanofficial/storefront/internal/api/handlers"
	appErrors "github.com/aaravmahajanofficial/storefront/internal/errors"
	"github.com/aaravmahajanofficial/storefront/internal/models"
	"github.com/aaravmahajanofficial/storefront/internal/services/mocks"
	"github.com/aaravmahajanofficial/storefront/internal/testutils"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func setupUserTest(t *testing.T) (*mocks.MockUserService, *handlers.UserHandler) {
	mockUserService := mocks.NewMockUserService(t)

	return mockUserService, handlers.NewUserHandler(mockUserService)
}

func TestRegister(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		// Arrange
		mockUserService, userHandler := setupUserTest(t)
		body := models.RegisterRequest{Email: "ana@example.com", Password: "secret123", FullName: "Ana"}
		req := testutils.CreateTestRequestWithoutContext(http.MethodPost, "/api/v1/users/register", jsonBody(t, body), nil)
		rec := httptest.NewRecorder()

		mockUserService.On("Register", mock.Anything, &body).
			Return(&models.User{ID: uuid.New(), Email: body.Email, FullName: body.FullName, PasswordHash: "hash"}, nil).Once()

		// Act
		userHandler.Register()(rec, req)

		// Assert
		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.NotContains(t, rec.Body.String(), "hash")
	})

	t.Run("Failure - Invalid email", func(t *testing.T) {
		_, userHandler := setupUserTest(t)
		req := testutils.CreateTestRequestWithoutContext(http.MethodPost, "/api/v1/users/register",
			strings.NewReader(`{"email":"nope","password":"secret123","full_name":"Ana"}`), nil)
		rec := httptest.NewRecorder()

		userHandler.Register()(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("Failure - Duplicate email", func(t *testing.T) {
		mockUserService, userHandler := setupUserTest(t)
		body := models.RegisterRequest{Email: "ana@example.com", Password: "secret123", FullName: "Ana"}
		req := testutils.CreateTestRequestWithoutContext(http.MethodPost, "/api/v1/users/register", jsonBody(t, body), nil)
		rec := httptest.NewRecorder()

		mockUserService.On("Register", mock.Anything, mock.Anything).Return(nil, appErrors.DuplicateEntryError("Email already registered")).Once()

		userHandler.Register()(rec, req)

		assert.Equal(t, http.StatusConflict, rec.Code)
	})
}

func TestLogin(t *testing.T) {
	body := models.LoginRequest{Email: "ana@example.com", Password: "secret123"}

	t.Run("Success", func(t *testing.T) {
		mockUserService, userHandler := setupUserTest(t)
		req := testutils.CreateTestRequestWithoutContext(http.MethodPost, "/api/v1/users/login", jsonBody(t, body), nil)
		rec := httptest.NewRecorder()

		mockUserService.On("Login", mock.Anything, &body).Return(&models.LoginResponse{Token: "tok", ExpiresIn: 3600}, nil).Once()

		userHandler.Login()(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "tok", decodeResponse(t, rec).Data.(map[string]any)["token"])
	})

	t.Run("Failure - Rate limited", func(t *testing.T) {
		mockUserService, userHandler := setupUserTest(t)
		req := testutils.CreateTestRequestWithoutContext(http.MethodPost, "/api/v1/users/login", jsonBody(t, body), nil)
		rec := httptest.NewRecorder()

		mockUserService.On("Login", mock.Anything, mock.Anything).
			Return(nil, appErrors.TooManyRequestsError("Too many login attempts. Please try again later.")).Once()

		userHandler.Login()(rec, req)

		assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	})
}

func TestLogoutAndProfile(t *testing.T) {
	t.Run("Logout - Success", func(t *testing.T) {
		mockUserService, userHandler := setupUserTest(t)
		userID := uuid.New()
		req := testutils.CreateTestRequestWithContext(http.MethodPost, "/api/v1/users/logout", nil, userID, nil)
		rec := httptest.NewRecorder()

		mockUserService.On("Logout", mock.Anything, mock.MatchedBy(func(c *models.Claims) bool {
			return c.UserID == userID
		})).Return(nil).Once()

		userHandler.Logout()(rec, req)

		assert.Equal(t, http.StatusNoContent, rec.Code)
	})

	t.Run("Profile - Success", func(t *testing.T) {
		mockUserService, userHandler := setupUserTest(t)
		userID := uuid.New()
		req := testutils.CreateTestRequestWithContext(http.MethodGet, "/api/v1/users/profile", nil, userID, nil)
		rec := httptest.NewRecorder()

		mockUserService.On("GetUserByID", mock.Anything, userID).Return(&models.User{ID: userID, Email: "ana@example.com"}, nil).Once()

		userHandler.Profile()(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("Profile - Unauthorized", func(t *testing.T) {
		_, userHandler := setupUserTest(t)
		req := testutils.CreateTestRequestWithoutContext(http.MethodGet, "/api/v1/users/profile", nil, nil)
		rec := httptest.NewRecorder()

		userHandler.Profile()(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}
