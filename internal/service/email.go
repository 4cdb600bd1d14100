package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/resend/resend-go/v2"
)

// EmailService delivers contact messages and newsletter signups through
// Resend. In development, or when no API key is configured, sends are
// logged instead of delivered.
type EmailService struct {
	client       *resend.Client
	fromEmail    string
	contactEmail string
	audienceID   string
	isDev        bool
}

func NewEmailService(apiKey, fromEmail, contactEmail, audienceID string, isDev bool) *EmailService {
	var client *resend.Client
	if apiKey != "" && !isDev {
		client = resend.NewClient(apiKey)
	}

	return &EmailService{
		client:       client,
		fromEmail:    fromEmail,
		contactEmail: contactEmail,
		audienceID:   audienceID,
		isDev:        isDev,
	}
}

// SendContactMessage forwards a visitor message to the site owner.
func (s *EmailService) SendContactMessage(ctx context.Context, fromName, replyTo, message string) error {
	subject := fmt.Sprintf("Portfolio contact from %s", fromName)
	body := fmt.Sprintf("From: %s <%s>\n\n%s", fromName, replyTo, message)

	if s.isDev {
		slog.Info("email sent (dev mode)", "type", "contact", "from", replyTo, "subject", subject)
		return nil
	}

	if s.client == nil {
		return fmt.Errorf("email service not configured (missing RESEND_API_KEY)")
	}

	params := &resend.SendEmailRequest{
		From:    s.fromEmail,
		To:      []string{s.contactEmail},
		ReplyTo: replyTo,
		Subject: subject,
		Text:    body,
	}

	_, err := s.client.Emails.SendWithContext(ctx, params)
	if err == nil {
		slog.Info("email sent", "type", "contact", "from", replyTo)
	}
	return err
}

// SubscribeNewsletter adds an address to the configured Resend audience.
// Failures are swallowed after logging to prevent email enumeration.
func (s *EmailService) SubscribeNewsletter(email string) error {
	if s.isDev {
		slog.Info("newsletter subscription (dev mode)", "email", email)
		return nil
	}

	if s.client == nil {
		return fmt.Errorf("email service not configured (missing RESEND_API_KEY)")
	}

	if s.audienceID == "" {
		slog.Warn("newsletter subscription requested but no audience configured", "email", email)
		return nil
	}

	params := &resend.CreateContactRequest{
		Email:      email,
		AudienceId: s.audienceID,
	}

	_, err := s.client.Contacts.Create(params)
	if err != nil {
		slog.Warn("newsletter subscription failed", "error", err, "email", email)
		return nil
	}

	slog.Info("newsletter subscription successful", "email", email)
	return nil
}
