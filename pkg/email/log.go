package email

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// LogSender logs emails instead of sending them.
// Useful for development and testing.
type LogSender struct {
	logger *zap.Logger
}

// NewLogSender creates a new log-based email sender.
func NewLogSender(logger *zap.Logger) *LogSender {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LogSender{logger: logger}
}

// Send logs the email details and reports a locally generated id.
func (s *LogSender) Send(ctx context.Context, msg Message) (*Result, error) {
	id := uuid.NewString()
	s.logger.Info("EMAIL (dev mode - not actually sent)",
		zap.String("id", id),
		zap.String("from", msg.From),
		zap.String("to", strings.Join(msg.To, ", ")),
		zap.String("reply_to", msg.ReplyTo),
		zap.String("subject", msg.Subject),
		zap.String("text", msg.Text),
	)
	return &Result{ID: id, Provider: ProviderLog}, nil
}
