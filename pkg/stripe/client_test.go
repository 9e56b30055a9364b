package stripe_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	client "github.com/aaravmahajanofficial/storefront/pkg/stripe"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stripe/stripe-go/v81"
)

// useStubBackend routes stripe API calls to handler for the duration of the test.
func useStubBackend(t *testing.T, handler http.HandlerFunc) {
	t.Helper()

	server := httptest.NewServer(handler)
	original := stripe.GetBackend(stripe.APIBackend)

	stripe.SetBackend(stripe.APIBackend, stripe.GetBackendWithConfig(stripe.APIBackend, &stripe.BackendConfig{
		URL:               stripe.String(server.URL),
		MaxNetworkRetries: stripe.Int64(0),
	}))

	t.Cleanup(func() {
		stripe.SetBackend(stripe.APIBackend, original)
		server.Close()
	})
}

func TestCreateCheckoutSession(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		// Arrange
		useStubBackend(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/v1/checkout/sessions", r.URL.Path)
			require.NoError(t, r.ParseForm())
			assert.Equal(t, "order-123", r.PostForm.Get("client_reference_id"))
			assert.Equal(t, "2", r.PostForm.Get("line_items[0][quantity]"))

			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"id":"cs_test_1","object":"checkout.session","url":"https://checkout.stripe.com/c/pay/cs_test_1"}`))
		})
		c := client.NewStripeClient("sk_test_123")

		params := &stripe.CheckoutSessionParams{
			Mode:              stripe.String(string(stripe.CheckoutSessionModePayment)),
			ClientReferenceID: stripe.String("order-123"),
			LineItems: []*stripe.CheckoutSessionLineItemParams{
				{
					Quantity: stripe.Int64(2),
					PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
						Currency:    stripe.String("brl"),
						UnitAmount:  stripe.Int64(6000),
						ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{Name: stripe.String("Shirt")},
					},
				},
			},
		}

		// Act
		cs, err := c.CreateCheckoutSession(t.Context(), params)

		// Assert
		require.NoError(t, err)
		assert.Equal(t, "cs_test_1", cs.ID)
		assert.Equal(t, "https://checkout.stripe.com/c/pay/cs_test_1", cs.URL)
	})

	t.Run("Failure - Missing URL", func(t *testing.T) {
		useStubBackend(t, func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"id":"cs_test_2","object":"checkout.session"}`))
		})
		c := client.NewStripeClient("sk_test_123")

		cs, err := c.CreateCheckoutSession(t.Context(), &stripe.CheckoutSessionParams{})

		require.ErrorIs(t, err, client.ErrMissingURL)
		assert.Nil(t, cs)
	})

	t.Run("Failure - API Error", func(t *testing.T) {
		useStubBackend(t, func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte(`{"error":{"type":"invalid_request_error","message":"bad currency"}}`))
		})
		c := client.NewStripeClient("sk_test_123")

		cs, err := c.CreateCheckoutSession(t.Context(), &stripe.CheckoutSessionParams{})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to create checkout session")
		assert.Nil(t, cs)
	})
}

func TestPing(t *testing.T) {
	useStubBackend(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/balance", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"object":"balance","available":[],"pending":[]}`))
	})

	require.NoError(t, client.NewStripeClient("sk_test_123").Ping(t.Context()))
}
