// Package payment turns a freshly built order into the URL the buyer is sent
// to for paying it.
package payment

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/aaravmahajanofficial/storefront/internal/models"
	"github.com/aaravmahajanofficial/storefront/internal/pricing"
	stripeClient "github.com/aaravmahajanofficial/storefront/pkg/stripe"
	"github.com/stripe/stripe-go/v81"
)

const (
	GatewayRedirect = "redirect"
	GatewayStripe   = "stripe"
)

var ErrNoItems = errors.New("order has no items")

type LinkGenerator interface {
	PaymentLink(ctx context.Context, order *models.Order) (string, error)
}

// RedirectGenerator builds a gateway redirect carrying a short preference id
// ("<prefix>-<first 8 chars of the order id>") and the order total.
type RedirectGenerator struct {
	baseURL string
	prefix  string
}

// NewRedirectGenerator returns a generator for baseURL. An empty prefix
// leaves the preference id as the bare order id fragment.
func NewRedirectGenerator(baseURL, prefix string) *RedirectGenerator {
	return &RedirectGenerator{baseURL: strings.TrimRight(baseURL, "/"), prefix: prefix}
}

func (g *RedirectGenerator) PaymentLink(_ context.Context, order *models.Order) (string, error) {
	prefID := order.ID.String()[:8]
	if g.prefix != "" {
		prefID = g.prefix + "-" + prefID
	}

	return fmt.Sprintf("%s/checkout/v1/redirect?pref_id=%s&amount=%s",
		g.baseURL, url.QueryEscape(prefID), order.Total.StringFixed(2)), nil
}

// StripeGenerator opens a Stripe Checkout session for the order.
type StripeGenerator struct {
	client     stripeClient.Client
	currency   string
	successURL string
	cancelURL  string
}

func NewStripeGenerator(client stripeClient.Client, currency, successURL, cancelURL string) *StripeGenerator {
	return &StripeGenerator{client: client, currency: currency, successURL: successURL, cancelURL: cancelURL}
}

func (g *StripeGenerator) PaymentLink(ctx context.Context, order *models.Order) (string, error) {
	if len(order.Items) == 0 {
		return "", ErrNoItems
	}

	params := &stripe.CheckoutSessionParams{
		Mode:              stripe.String(string(stripe.CheckoutSessionModePayment)),
		ClientReferenceID: stripe.String(order.ID.String()),
		SuccessURL:        stripe.String(g.successURL),
		CancelURL:         stripe.String(g.cancelURL),
	}

	for _, item := range order.Items {
		params.LineItems = append(params.LineItems, &stripe.CheckoutSessionLineItemParams{
			Quantity: stripe.Int64(int64(item.Quantity)),
			PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
				Currency:   stripe.String(g.currency),
				UnitAmount: stripe.Int64(pricing.Cents(item.Price)),
				ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
					Name: stripe.String(itemName(item)),
				},
			},
		})
	}

	params.AddMetadata("order_id", order.ID.String())

	cs, err := g.client.CreateCheckoutSession(ctx, params)
	if err != nil {
		return "", err
	}

	return cs.URL, nil
}

func itemName(item models.OrderLine) string {
	name := "Item " + item.ProductID.String()[:8]
	if item.Product != nil && item.Product.Name != "" {
		name = item.Product.Name
	}

	var variant []string
	for _, v := range []string{item.Size, item.Color} {
		if v != "" {
			variant = append(variant, v)
		}
	}

	if len(variant) > 0 {
		name += " (" + strings.Join(variant, ", ") + ")"
	}

	return name
}
