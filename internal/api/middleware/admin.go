package middleware

import (
	"context"
	"log/slog"
	"net/http"

	appErrors "github.com/aaravmahajanofficial/storefront/internal/errors"
	models "github.com/aaravmahajanofficial/storefront/internal/models"
	"github.com/aaravmahajanofficial/storefront/internal/utils/response"
	"github.com/google/uuid"
)

type UserLookup interface {
	GetUserById(ctx context.Context, id uuid.UUID) (*models.User, error)
}

// RequireAdmin must run after Authenticate. The admin flag is read from the
// user store on every request; the token alone never grants admin rights.
func RequireAdmin(users UserLookup) func(http.Handler) http.HandlerFunc {
	return func(next http.Handler) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			logger := LoggerFromContext(r.Context())

			claims, ok := ClaimsFromContext(r.Context())
			if !ok {
				response.Error(w, appErrors.UnauthorizedError("Authentication required"))
				return
			}

			user, err := users.GetUserById(r.Context(), claims.UserID)
			if err != nil {
				logger.Warn("Admin check could not load user", slog.Any("error", err))
				response.Error(w, appErrors.ForbiddenError("Admin access required"))
				return
			}

			if !user.IsAdmin {
				logger.Warn("Non-admin user attempted admin access")
				response.Error(w, appErrors.ForbiddenError("Admin access required"))
				return
			}

			next.ServeHTTP(w, r)
		}
	}
}
