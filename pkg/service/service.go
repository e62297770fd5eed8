// Package service wires configuration, logging and the email provider into
// a ready-to-serve contact server.
package service

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/funsnaps/contact-api/pkg/config"
	"github.com/funsnaps/contact-api/pkg/email"
	"github.com/funsnaps/contact-api/pkg/httpserver"
	"github.com/funsnaps/contact-api/pkg/logging"
	"go.uber.org/zap"
)

// New builds a server from cfg. A provider that is missing its settings is
// logged and left nil so the process still starts and each submission is
// answered with a configuration error.
func New(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*httpserver.Server, error) {
	sender, err := email.New(ctx, cfg.Email(), logger)
	if err != nil {
		if !errors.Is(err, email.ErrNotConfigured) {
			return nil, fmt.Errorf("email provider: %w", err)
		}
		logger.Error("email provider is not configured; submissions will fail",
			zap.String("provider", cfg.EmailProvider),
			zap.Error(err),
		)
		return httpserver.New(cfg, logger, nil, httpserver.WithSenderError(err)), nil
	}
	return httpserver.New(cfg, logger, sender), nil
}

// FromEnv loads configuration from the environment and builds a server.
func FromEnv(ctx context.Context) (*httpserver.Server, *zap.Logger, error) {
	boot := logging.MustBuildLogger("info", "production")
	cfg, err := config.Load(boot)
	if err != nil {
		return nil, boot, err
	}

	logger, err := logging.BuildLogger(cfg.LogLevel, cfg.Env)
	if err != nil {
		return nil, boot, fmt.Errorf("logger: %w", err)
	}

	server, err := New(ctx, cfg, logger)
	if err != nil {
		return nil, logger, err
	}
	return server, logger, nil
}

var (
	sharedOnce   sync.Once
	sharedServer *httpserver.Server
	sharedErr    error
)

// Shared returns a server built once per process from the environment,
// reused across serverless invocations.
func Shared() (*httpserver.Server, error) {
	sharedOnce.Do(func() {
		var logger *zap.Logger
		sharedServer, logger, sharedErr = FromEnv(context.Background())
		if sharedErr != nil {
			logger.Error("failed to initialize contact server", zap.Error(sharedErr))
			return
		}
		logger.Info("contact server initialized for serverless runtime")
	})
	return sharedServer, sharedErr
}
