package email

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/wneessen/go-mail"
)

// SMTPConfig holds SMTP relay settings.
type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string

	// TLSPolicy is "mandatory" (STARTTLS required), "opportunistic" or "none".
	TLSPolicy string

	// SSL enables implicit TLS (usually port 465) and overrides TLSPolicy.
	SSL bool

	Timeout time.Duration
}

// SMTPSender sends emails through an SMTP relay.
type SMTPSender struct {
	cfg SMTPConfig
}

// NewSMTPSender creates a new SMTP email sender.
func NewSMTPSender(cfg SMTPConfig) (*SMTPSender, error) {
	if cfg.Host == "" {
		return nil, fmt.Errorf("smtp: host is empty: %w", ErrNotConfigured)
	}
	if cfg.Port == 0 {
		cfg.Port = 587
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = 30 * time.Second
	}
	if _, err := tlsPolicy(cfg.TLSPolicy); err != nil {
		return nil, err
	}
	return &SMTPSender{cfg: cfg}, nil
}

func tlsPolicy(name string) (mail.TLSPolicy, error) {
	switch strings.ToLower(name) {
	case "", "mandatory":
		return mail.TLSMandatory, nil
	case "opportunistic":
		return mail.TLSOpportunistic, nil
	case "none":
		return mail.NoTLS, nil
	default:
		return mail.NoTLS, fmt.Errorf("smtp: unknown tls policy %q", name)
	}
}

// Send delivers the message and reports the generated Message-ID.
func (s *SMTPSender) Send(ctx context.Context, msg Message) (*Result, error) {
	m := mail.NewMsg()
	if err := m.From(msg.From); err != nil {
		return nil, fmt.Errorf("smtp: invalid from address: %w", err)
	}
	if err := m.To(msg.To...); err != nil {
		return nil, fmt.Errorf("smtp: invalid to address: %w", err)
	}
	if msg.ReplyTo != "" {
		if err := m.ReplyTo(msg.ReplyTo); err != nil {
			return nil, fmt.Errorf("smtp: invalid reply-to address: %w", err)
		}
	}
	m.Subject(msg.Subject)
	for name, value := range msg.Headers {
		m.SetGenHeader(mail.Header(name), value)
	}

	if msg.Text != "" {
		m.SetBodyString(mail.TypeTextPlain, msg.Text)
		m.AddAlternativeString(mail.TypeTextHTML, msg.HTML)
	} else {
		m.SetBodyString(mail.TypeTextHTML, msg.HTML)
	}
	m.SetMessageID()

	opts := []mail.Option{
		mail.WithPort(s.cfg.Port),
		mail.WithTimeout(s.cfg.Timeout),
	}
	if s.cfg.Username != "" {
		opts = append(opts,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(s.cfg.Username),
			mail.WithPassword(s.cfg.Password),
		)
	}
	if s.cfg.SSL {
		opts = append(opts, mail.WithSSL())
	} else {
		policy, _ := tlsPolicy(s.cfg.TLSPolicy)
		opts = append(opts, mail.WithTLSPortPolicy(policy))
	}

	c, err := mail.NewClient(s.cfg.Host, opts...)
	if err != nil {
		return nil, fmt.Errorf("smtp: failed to create client: %w", err)
	}
	if err := c.DialAndSendWithContext(ctx, m); err != nil {
		return nil, fmt.Errorf("smtp: failed to send email: %w", err)
	}

	return &Result{ID: m.GetMessageID(), Provider: ProviderSMTP}, nil
}
