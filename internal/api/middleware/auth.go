package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	appErrors "github.com/aaravmahajanofficial/storefront/internal/errors"
	models "github.com/aaravmahajanofficial/storefront/internal/models"
	"github.com/aaravmahajanofficial/storefront/internal/utils/response"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

type contextKey uuid.UUID

var UserContextKey = contextKey(uuid.New())

var errSigningMethod = errors.New("unexpected signing method")

// RevocationChecker reports whether a token id was signed out.
type RevocationChecker interface {
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}

type AuthMiddleware struct {
	jwtKey  []byte
	revoked RevocationChecker
}

// NewAuthMiddleware verifies HS256 bearer tokens. revoked may be nil, in
// which case signed-out tokens stay valid until they expire.
func NewAuthMiddleware(jwtKey []byte, revoked RevocationChecker) *AuthMiddleware {
	return &AuthMiddleware{jwtKey: jwtKey, revoked: revoked}
}

func ClaimsFromContext(ctx context.Context) (*models.Claims, bool) {
	claims, ok := ctx.Value(UserContextKey).(*models.Claims)

	return claims, ok && claims != nil
}

func (m *AuthMiddleware) Authenticate(next http.Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := LoggerFromContext(r.Context())

		authHeader := r.Header.Get("Authorization")

		if authHeader == "" {
			logger.Warn("Missing authorization header")
			response.Error(w, appErrors.UnauthorizedError("Authorization header is required"))
			return
		}

		// Token is of format : "Bearer <token>"
		tokenParts := strings.Split(authHeader, " ")

		if len(tokenParts) != 2 || tokenParts[0] != "Bearer" {
			logger.Warn("Invalid authorization header format")
			response.Error(w, appErrors.UnauthorizedError("Invalid authorization format"))
			return
		}

		claims := &models.Claims{}

		token, err := jwt.ParseWithClaims(tokenParts[1], claims, func(t *jwt.Token) (any, error) {
			if t.Method != jwt.SigningMethodHS256 {
				logger.Error("Unexpected signing method used in JWT", slog.Any("alg", t.Header["alg"]))
				return nil, errSigningMethod
			}

			return m.jwtKey, nil
		}, jwt.WithExpirationRequired())

		if err != nil || !token.Valid {
			logger.Warn("JWT validation failed", slog.Any("error", err))
			response.Error(w, appErrors.UnauthorizedError("Invalid or expired token"))
			return
		}

		if m.revoked != nil && claims.ID != "" {
			revoked, err := m.revoked.IsRevoked(r.Context(), claims.ID)
			if err != nil {
				logger.Error("Failed to check token revocation", slog.Any("error", err))
				response.Error(w, appErrors.InternalError("Failed to verify session").WithError(err))
				return
			}

			if revoked {
				logger.Warn("Signed-out token presented", slog.String("userId", claims.UserID.String()))
				response.Error(w, appErrors.UnauthorizedError("Session has been signed out"))
				return
			}
		}

		ctx := context.WithValue(r.Context(), UserContextKey, claims)

		requestScopedLogger := logger.With(slog.String("userId", claims.UserID.String()))
		ctx = context.WithValue(ctx, LoggerKey, requestScopedLogger)

		requestScopedLogger.Debug("User authenticated")

		next.ServeHTTP(w, r.WithContext(ctx))
	}
}
