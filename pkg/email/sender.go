// Package email provides email sending functionality with pluggable providers.
package email

import (
	"context"
	"errors"
)

// ErrNotConfigured is returned when the selected provider is missing the
// settings it needs to send mail (for example an API key).
var ErrNotConfigured = errors.New("email provider not configured")

// Message represents an email message to be sent.
type Message struct {
	From    string
	To      []string
	ReplyTo string
	Subject string
	HTML    string
	Text    string // Plain text fallback
	Tags    []Tag
	Headers map[string]string
}

// Tag is a name/value pair attached to a message for providers that support
// message categorization. Providers without tag support ignore them.
type Tag struct {
	Name  string
	Value string
}

// Result is what a provider reports back after accepting a message.
type Result struct {
	ID       string `json:"id"`
	Provider string `json:"provider"`
}

// Sender is the interface for email providers.
type Sender interface {
	Send(ctx context.Context, msg Message) (*Result, error)
}
