// Command lambda runs the label report handler on AWS Lambda behind an API
// Gateway proxy integration.
package main

import (
	"context"
	"os"

	awslambda "github.com/aws/aws-lambda-go/lambda"

	"github.com/okian/labelreport/internal/adapters/lambda"
	"github.com/okian/labelreport/internal/config"
	"github.com/okian/labelreport/internal/container"
	"github.com/okian/labelreport/pkg/logger"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load(ctx)
	if err != nil {
		os.Stderr.WriteString("failed to load config: " + err.Error() + "\n")
		os.Exit(1)
	}

	if err := logger.Init(logger.WithFormat(cfg.LogFormat)); err != nil {
		os.Stderr.WriteString("failed to initialize logging: " + err.Error() + "\n")
		os.Exit(1)
	}
	if err := logger.SetLevelString(cfg.LogLevel); err != nil {
		_ = logger.SetLevelString("info")
	}

	c, err := container.New(ctx, cfg)
	if err != nil {
		logger.Get().Fatal(ctx, "failed to build service", logger.Error(err))
	}

	awslambda.Start(lambda.NewHandler(c.Service).Handle)
}
