package service

import (
	"context"
	"fmt"
	"html"
	"strings"

	"github.com/aaravmahajanofficial/storefront/internal/models"
	"github.com/aaravmahajanofficial/storefront/pkg/sendgrid"
	"github.com/shopspring/decimal"
)

// OrderNotifier tells a buyer their order was placed.
type OrderNotifier interface {
	OrderPlaced(ctx context.Context, user *models.User, order *models.Order) error
}

type emailNotifier struct {
	emailService sendgrid.EmailService
}

func NewOrderNotifier(emailService sendgrid.EmailService) OrderNotifier {
	return &emailNotifier{emailService: emailService}
}

func (n *emailNotifier) OrderPlaced(ctx context.Context, user *models.User, order *models.Order) error {
	if err := n.emailService.Send(ctx, OrderConfirmationEmail(user, order)); err != nil {
		return fmt.Errorf("failed to send order confirmation: %w", err)
	}

	return nil
}

// OrderConfirmationEmail renders the plain text and HTML confirmation for an order.
func OrderConfirmationEmail(user *models.User, order *models.Order) *models.Email {
	shortID := order.ID.String()[:8]

	var text, rows strings.Builder

	fmt.Fprintf(&text, "Hi %s,\n\nWe received your order #%s.\n\n", user.FullName, shortID)

	for _, item := range order.Items {
		name := "Item"
		if item.Product != nil {
			name = item.Product.Name
		}

		lineTotal := item.Price.Mul(decimal.NewFromInt(int64(item.Quantity)))

		fmt.Fprintf(&text, "- %d x %s %s %s: %s\n", item.Quantity, name, item.Size, item.Color, lineTotal.StringFixed(2))
		fmt.Fprintf(&rows, "<tr><td>%d</td><td>%s</td><td>%s</td></tr>",
			item.Quantity, html.EscapeString(name), lineTotal.StringFixed(2))
	}

	fmt.Fprintf(&text, "\nTotal: %s\n", order.Total.StringFixed(2))

	htmlBody := fmt.Sprintf("<p>Hi %s,</p><p>We received your order <strong>#%s</strong>.</p><table>%s</table><p>Total: %s</p>",
		html.EscapeString(user.FullName), shortID, rows.String(), order.Total.StringFixed(2))

	if order.PaymentURL != "" {
		fmt.Fprintf(&text, "\nComplete your payment: %s\n", order.PaymentURL)
		htmlBody += fmt.Sprintf(`<p><a href="%s">Complete your payment</a></p>`, html.EscapeString(order.PaymentURL))
	}

	return &models.Email{
		To:      user.Email,
		ToName:  user.FullName,
		Subject: fmt.Sprintf("Order #%s confirmed", shortID),
		Text:    text.String(),
		HTML:    htmlBody,
	}
}
