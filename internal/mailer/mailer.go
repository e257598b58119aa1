// Package mailer delivers transactional email. The portal only sends one kind
// of message, the login verification code, so the interface stays minimal.
package mailer

import (
	"context"
	"fmt"
	"log"

	"github.com/mailgun/mailgun-go/v4"
)

// Mailer sends a plain-text email to a single recipient.
type Mailer interface {
	Send(ctx context.Context, to, subject, body string) error
}

// MailgunMailer delivers email through the Mailgun HTTP API.
type MailgunMailer struct {
	mg     *mailgun.MailgunImpl
	sender string
}

// NewMailgun creates a MailgunMailer for the given domain and API key.
func NewMailgun(domain, apiKey, sender string) *MailgunMailer {
	return &MailgunMailer{
		mg:     mailgun.NewMailgun(domain, apiKey),
		sender: sender,
	}
}

// Send delivers the message via Mailgun.
func (m *MailgunMailer) Send(ctx context.Context, to, subject, body string) error {
	msg := m.mg.NewMessage(m.sender, subject, body, to)
	if _, _, err := m.mg.Send(ctx, msg); err != nil {
		return fmt.Errorf("failed to send email to %s: %w", to, err)
	}
	return nil
}

// LogMailer writes messages to the process log instead of delivering them.
// Used in development when no Mailgun credentials are configured.
type LogMailer struct{}

// Send logs the message.
func (m *LogMailer) Send(_ context.Context, to, subject, body string) error {
	log.Printf("mail to %s: %s: %s", to, subject, body)
	return nil
}
