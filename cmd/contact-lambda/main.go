package main

import (
	"context"
	"os"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/funsnaps/contact-api/pkg/lambdaproxy"
	"github.com/funsnaps/contact-api/pkg/service"
	"go.uber.org/zap"
)

func main() {
	server, logger, err := service.FromEnv(context.Background())
	if err != nil {
		logger.Error("failed to initialize contact server", zap.Error(err))
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	lambda.Start(lambdaproxy.Adapt(server.Router()))
}
