// Package main Contact Form Intake Service.
//
// @title           Contact Form Intake Service
// @version         1.0
//
// @host      localhost:8080
// @BasePath  /
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/funsnaps/contact-api/pkg/config"
	"github.com/funsnaps/contact-api/pkg/logging"
	"github.com/funsnaps/contact-api/pkg/service"
	"github.com/spf13/pflag"
	"go.uber.org/zap"
)

func main() {
	addr := pflag.String("addr", "", "HTTP listen address (overrides HTTP_ADDRESS)")
	provider := pflag.String("provider", "", `Email provider: "resend"|"smtp"|"ses"|"log" (overrides EMAIL_PROVIDER)`)
	logLevel := pflag.String("log-level", "", "Log level (overrides LOG_LEVEL)")
	pflag.Parse()

	boot := logging.MustBuildLogger("info", "development")
	cfg, err := config.Load(boot)
	if err != nil {
		boot.Fatal("failed to load config", zap.Error(err))
	}
	if *addr != "" {
		cfg.HTTPAddress = *addr
	}
	if *provider != "" {
		cfg.EmailProvider = *provider
	}
	if *logLevel != "" {
		cfg.LogLevel = *logLevel
	}

	logger := logging.MustBuildLogger(cfg.LogLevel, cfg.Env)
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	server, err := service.New(ctx, cfg, logger)
	if err != nil {
		logger.Fatal("failed to build server", zap.Error(err))
	}

	go func() {
		<-ctx.Done()
		logger.Info("shutting down")
		if err := server.Close(); err != nil {
			logger.Error("shutdown failed", zap.Error(err))
		}
	}()

	if err := server.Run(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Fatal("failed to start server", zap.Error(err))
	}
}
