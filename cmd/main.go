package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/aws/aws-lambda-go/lambda"

	"github.com/acmelimited/netatmo-to-cloudwatch/internal/app"
	"github.com/acmelimited/netatmo-to-cloudwatch/internal/config"
	"github.com/acmelimited/netatmo-to-cloudwatch/internal/logging"
)

var version = "dev"
var appName = "netatmo-to-cloudwatch"

func main() {
	cfg, err := config.LoadFromEnv()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config error: %v\n", err)
		os.Exit(1)
	}

	logger := logging.New(cfg, version, appName)
	slog.SetDefault(logger)

	slog.Info("starting",
		"app", appName,
		"version", version,
		"env", cfg.AppEnv,
		"log_level", cfg.LogLevel.String(),
		"namespace", cfg.Namespace,
	)

	if insideLambda() {
		// The schedule event carries no information; accept and ignore it.
		lambda.Start(func(ctx context.Context, _ json.RawMessage) error {
			return app.Run(ctx, cfg)
		})
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := app.Run(ctx, cfg); err != nil && !errors.Is(err, context.Canceled) {
		slog.Error("run failed", "err", err)
		os.Exit(1)
	}

	slog.Info("done")
}

// insideLambda reports whether the process was started by the Lambda runtime.
func insideLambda() bool {
	return os.Getenv("AWS_LAMBDA_FUNCTION_NAME") != ""
}
