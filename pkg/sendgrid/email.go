package sendgrid

import (
	"context"
	"errors"
	"fmt"

	"github.com/aaravmahajanofficial/storefront/internal/models"
	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

var ErrNoRecipient = errors.New("email has no recipient")

type EmailService interface {
	Send(ctx context.Context, email *models.Email) error
}

type Option func(*sendgrid.Client)

// WithBaseURL points the client at another host, e.g. a sandbox or a stub server.
func WithBaseURL(url string) Option {
	return func(c *sendgrid.Client) {
		c.Request.BaseURL = url
	}
}

type emailService struct {
	client    *sendgrid.Client
	fromEmail string
	fromName  string
}

func NewEmailService(apiKey string, fromEmail string, fromName string, opts ...Option) EmailService {
	client := sendgrid.NewSendClient(apiKey)
	for _, opt := range opts {
		opt(client)
	}

	return &emailService{client: client, fromEmail: fromEmail, fromName: fromName}
}

func (e *emailService) Send(ctx context.Context, email *models.Email) error {
	if email.To == "" {
		return ErrNoRecipient
	}

	personalization := mail.NewPersonalization()
	personalization.AddTos(mail.NewEmail(email.ToName, email.To))
	personalization.Subject = email.Subject

	message := mail.NewV3Mail()
	message.SetFrom(mail.NewEmail(e.fromName, e.fromEmail))
	message.AddPersonalizations(personalization)

	message.AddContent(mail.NewContent("text/plain", email.Text))
	if email.HTML != "" {
		message.AddContent(mail.NewContent("text/html", email.HTML))
	}

	response, err := e.client.SendWithContext(ctx, message)
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	if response.StatusCode >= 400 {
		return fmt.Errorf("failed to send email, status code: %d", response.StatusCode)
	}

	return nil
}
