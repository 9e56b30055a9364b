package middleware_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/aaravmahajanofficial/storefront/internal/api/middleware"
	"github.com/aaravmahajanofficial/storefront/internal/models"
	"github.com/aaravmahajanofficial/storefront/internal/repositories/mocks"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var testJwtKey = []byte("test-secret-key-123456789012345")

func createTestToken(t *testing.T, userID uuid.UUID, tokenID string, duration time.Duration, key []byte, method jwt.SigningMethod) string {
	t.Helper()

	claims := &models.Claims{
		UserID: userID,
		Email:  "test@example.com",
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        tokenID,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(duration)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token, err := jwt.NewWithClaims(method, claims).SignedString(key)
	require.NoError(t, err)

	return token
}

func quietRequest(method, target string) *http.Request {
	req := httptest.NewRequest(method, target, nil)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return req.WithContext(context.WithValue(req.Context(), middleware.LoggerKey, logger))
}

func TestAuthMiddleware(t *testing.T) {
	userID := uuid.New()

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.ClaimsFromContext(r.Context())
		require.True(t, ok, "User claims should be in context")
		assert.Equal(t, userID, claims.UserID)

		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"success": true}`))
	})

	unauthorized := func(msg string) string {
		return `{"success": false, "error": {"code": "UNAUTHORIZED", "message": "` + msg + `"}}`
	}

	tests := []struct {
		name           string
		authHeader     string
		expectedStatus int
		expectedBody   string
	}{
		{
			name:           "Success - Valid Token",
			authHeader:     "Bearer " + createTestToken(t, userID, "jti-1", time.Hour, testJwtKey, jwt.SigningMethodHS256),
			expectedStatus: http.StatusOK,
			expectedBody:   `{"success": true}`,
		},
		{
			name:           "Fail - Missing Authorization Header",
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   unauthorized("Authorization header is required"),
		},
		{
			name:           "Fail - No Bearer Prefix",
			authHeader:     "InvalidTokenFormat",
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   unauthorized("Invalid authorization format"),
		},
		{
			name:           "Fail - Malformed Token",
			authHeader:     "Bearer not.a.valid.token",
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   unauthorized("Invalid or expired token"),
		},
		{
			name:           "Fail - Wrong Signing Key",
			authHeader:     "Bearer " + createTestToken(t, userID, "jti-1", time.Hour, []byte("different-secret-key-0987654321"), jwt.SigningMethodHS256),
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   unauthorized("Invalid or expired token"),
		},
		{
			name:           "Fail - Wrong Signing Method",
			authHeader:     "Bearer " + createTestToken(t, userID, "jti-1", time.Hour, testJwtKey, jwt.SigningMethodHS512),
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   unauthorized("Invalid or expired token"),
		},
		{
			name:           "Fail - Expired Token",
			authHeader:     "Bearer " + createTestToken(t, userID, "jti-1", -time.Hour, testJwtKey, jwt.SigningMethodHS256),
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   unauthorized("Invalid or expired token"),
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			// Arrange
			authMiddleware := middleware.NewAuthMiddleware(testJwtKey, nil)
			req := quietRequest(http.MethodGet, "/")
			if tc.authHeader != "" {
				req.Header.Set("Authorization", tc.authHeader)
			}
			rr := httptest.NewRecorder()

			// Act
			authMiddleware.Authenticate(next).ServeHTTP(rr, req)

			// Assert
			assert.Equal(t, tc.expectedStatus, rr.Code)
			assert.JSONEq(t, tc.expectedBody, rr.Body.String())
		})
	}
}

func TestAuthMiddleware_SignedOutTokens(t *testing.T) {
	userID := uuid.New()
	token := createTestToken(t, userID, "jti-42", time.Hour, testJwtKey, jwt.SigningMethodHS256)

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	t.Run("Active session passes", func(t *testing.T) {
		sessions := mocks.NewMockSessionRepository(t)
		sessions.On("IsRevoked", mock.Anything, "jti-42").Return(false, nil).Once()

		req := quietRequest(http.MethodGet, "/")
		req.Header.Set("Authorization", "Bearer "+token)
		rr := httptest.NewRecorder()

		middleware.NewAuthMiddleware(testJwtKey, sessions).Authenticate(next).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusNoContent, rr.Code)
	})

	t.Run("Revoked session rejected", func(t *testing.T) {
		sessions := mocks.NewMockSessionRepository(t)
		sessions.On("IsRevoked", mock.Anything, "jti-42").Return(true, nil).Once()

		req := quietRequest(http.MethodGet, "/")
		req.Header.Set("Authorization", "Bearer "+token)
		rr := httptest.NewRecorder()

		middleware.NewAuthMiddleware(testJwtKey, sessions).Authenticate(next).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		assert.Contains(t, rr.Body.String(), "Session has been signed out")
	})

	t.Run("Revocation store failure", func(t *testing.T) {
		sessions := mocks.NewMockSessionRepository(t)
		sessions.On("IsRevoked", mock.Anything, "jti-42").Return(false, errors.New("redis down")).Once()

		req := quietRequest(http.MethodGet, "/")
		req.Header.Set("Authorization", "Bearer "+token)
		rr := httptest.NewRecorder()

		middleware.NewAuthMiddleware(testJwtKey, sessions).Authenticate(next).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
	})
}
