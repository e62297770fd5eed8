package email

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"
)

// Provider names accepted by New.
const (
	ProviderResend = "resend"
	ProviderSMTP   = "smtp"
	ProviderSES    = "ses"
	ProviderLog    = "log"
)

// Config selects and configures an email provider.
type Config struct {
	Provider     string
	ResendAPIKey string
	SMTP         SMTPConfig
	SES          SESConfig
}

// New builds the Sender named by cfg.Provider. Missing provider settings
// are reported as ErrNotConfigured so callers can keep serving and answer
// individual requests with a configuration error instead.
func New(ctx context.Context, cfg Config, logger *zap.Logger) (Sender, error) {
	var (
		sender Sender
		err    error
	)
	switch strings.ToLower(cfg.Provider) {
	case "", ProviderResend:
		sender, err = asSender(NewResendSender(cfg.ResendAPIKey))
	case ProviderSMTP:
		sender, err = asSender(NewSMTPSender(cfg.SMTP))
	case ProviderSES:
		sender, err = asSender(NewSESSender(ctx, cfg.SES))
	case ProviderLog:
		sender = NewLogSender(logger)
	default:
		err = fmt.Errorf("unknown email provider %q", cfg.Provider)
	}
	if err != nil {
		return nil, err
	}
	return sender, nil
}

// asSender drops typed nil pointers so a failed constructor never yields a
// non-nil Sender interface.
func asSender[S Sender](s S, err error) (Sender, error) {
	if err != nil {
		return nil, err
	}
	return s, nil
}
