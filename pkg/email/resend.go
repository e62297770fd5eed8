package email

import (
	"context"
	"fmt"

	"github.com/resend/resend-go/v2"
)

// ResendSender sends emails using the Resend API.
type ResendSender struct {
	client *resend.Client
}

// NewResendSender creates a new Resend email sender.
func NewResendSender(apiKey string) (*ResendSender, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("resend: api key is empty: %w", ErrNotConfigured)
	}
	return &ResendSender{
		client: resend.NewClient(apiKey),
	}, nil
}

// Send sends an email using the Resend API.
func (s *ResendSender) Send(ctx context.Context, msg Message) (*Result, error) {
	params := &resend.SendEmailRequest{
		From:    msg.From,
		To:      msg.To,
		ReplyTo: msg.ReplyTo,
		Subject: msg.Subject,
		Html:    msg.HTML,
		Text:    msg.Text,
		Headers: msg.Headers,
	}
	for _, tag := range msg.Tags {
		params.Tags = append(params.Tags, resend.Tag{Name: tag.Name, Value: tag.Value})
	}

	sent, err := s.client.Emails.SendWithContext(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("resend: failed to send email: %w", err)
	}

	return &Result{ID: sent.Id, Provider: ProviderResend}, nil
}
