package stripe

import (
	"context"
	"errors"
	"fmt"

	"github.com/stripe/stripe-go/v81"
	"github.com/stripe/stripe-go/v81/balance"
	"github.com/stripe/stripe-go/v81/checkout/session"
)

var ErrMissingURL = errors.New("checkout session has no redirect url")

// Client is the part of the Stripe API checkout relies on.
type Client interface {
	CreateCheckoutSession(ctx context.Context, params *stripe.CheckoutSessionParams) (*stripe.CheckoutSession, error)
	Ping(ctx context.Context) error
}

type stripeClient struct{}

func NewStripeClient(apiKey string) Client {
	stripe.Key = apiKey

	return &stripeClient{}
}

// CreateCheckoutSession opens a hosted payment page for one order.
func (s *stripeClient) CreateCheckoutSession(ctx context.Context, params *stripe.CheckoutSessionParams) (*stripe.CheckoutSession, error) {
	params.Context = ctx

	cs, err := session.New(params)
	if err != nil {
		return nil, fmt.Errorf("failed to create checkout session: %w", err)
	}

	if cs.URL == "" {
		return nil, ErrMissingURL
	}

	return cs, nil
}

// Ping reads the account balance, which fails fast on a bad key or outage.
func (s *stripeClient) Ping(ctx context.Context) error {
	params := &stripe.BalanceParams{}
	params.Context = ctx

	if _, err := balance.Get(params); err != nil {
		return fmt.Errorf("stripe unreachable: %w", err)
	}

	return nil
}
