package middleware_test

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/aaravmahajanofficial/storefront/internal/api/middleware"
	"github.com/stretchr/testify/assert"
)

func TestLogging(t *testing.T) {
	t.Run("Propagates the request id and a scoped logger", func(t *testing.T) {
		var seen *slog.Logger

		handler := middleware.Logging(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			seen = middleware.LoggerFromContext(r.Context())
			w.WriteHeader(http.StatusTeapot)
		}))

		req := httptest.NewRequest(http.MethodGet, "/api/v1/products", nil)
		req.Header.Set("X-Request-ID", "req-123")
		rr := httptest.NewRecorder()

		handler.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusTeapot, rr.Code)
		assert.Equal(t, "req-123", rr.Header().Get("X-Request-ID"))
		assert.NotNil(t, seen)
		assert.NotSame(t, slog.Default(), seen)
	})

	t.Run("Generates a request id when absent", func(t *testing.T) {
		handler := middleware.Logging(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		rr := httptest.NewRecorder()

		handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.Len(t, rr.Header().Get("X-Request-ID"), 36)
	})

	t.Run("Falls back to the default logger", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)

		assert.Same(t, slog.Default(), middleware.LoggerFromContext(req.Context()))
	})
}
