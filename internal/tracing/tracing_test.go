package tracing

import (
	"testing"

	"github.com/aaravmahajanofficial/storefront/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
)

func TestSetup(t *testing.T) {
	t.Run("Without endpoint", func(t *testing.T) {
		shutdown, err := Setup(t.Context(), config.Tracing{ServiceName: "storefront"}, "test")

		require.NoError(t, err)
		require.NotNil(t, shutdown)

		_, span := otel.Tracer("test").Start(t.Context(), "op")
		assert.True(t, span.SpanContext().IsValid())
		span.End()

		assert.NoError(t, shutdown(t.Context()))
	})

	t.Run("With endpoint", func(t *testing.T) {
		// The exporter connects lazily, so no collector is needed here.
		shutdown, err := Setup(t.Context(), config.Tracing{Endpoint: "localhost:4318", Insecure: true, ServiceName: "storefront"}, "test")

		require.NoError(t, err)
		require.NotNil(t, shutdown)
	})
}
