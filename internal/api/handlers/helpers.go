package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/aaravmahajanofficial/storefront/internal/api/middleware"
	appErrors "github.com/aaravmahajanofficial/storefront/internal/errors"
	"github.com/aaravmahajanofficial/storefront/internal/models"
	"github.com/aaravmahajanofficial/storefront/internal/utils/response"
)

const (
	defaultPageSize = 10
	maxPageSize     = 100
)

// requireClaims returns the caller's claims and a logger tagged with the
// user id, or writes a 401 and returns ok=false.
func requireClaims(w http.ResponseWriter, r *http.Request, action string) (*models.Claims, *slog.Logger, bool) {
	logger := middleware.LoggerFromContext(r.Context())

	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		logger.Warn("Unauthorized " + action + " attempt: missing user claims")
		response.Error(w, appErrors.UnauthorizedError("Authentication required"))
		return nil, logger, false
	}

	return claims, logger.With(slog.String("userID", claims.UserID.String())), true
}

// pagination reads page and pageSize, falling back to 1 and 10 when absent
// or out of range.
func pagination(r *http.Request) (int, int) {
	page, err := strconv.Atoi(r.URL.Query().Get("page"))
	if err != nil || page < 1 {
		page = 1
	}

	pageSize, err := strconv.Atoi(r.URL.Query().Get("pageSize"))
	if err != nil || pageSize < 1 || pageSize > maxPageSize {
		pageSize = defaultPageSize
	}

	return page, pageSize
}
