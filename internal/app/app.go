package app

import (
	"context"
	"fmt"
	"log/slog"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	cw "github.com/aws/aws-sdk-go-v2/service/cloudwatch"
	"github.com/aws/aws-sdk-go-v2/service/ssm"

	"github.com/acmelimited/netatmo-to-cloudwatch/internal/cloudwatch"
	"github.com/acmelimited/netatmo-to-cloudwatch/internal/config"
	"github.com/acmelimited/netatmo-to-cloudwatch/internal/metrics"
	"github.com/acmelimited/netatmo-to-cloudwatch/internal/netatmo"
	"github.com/acmelimited/netatmo-to-cloudwatch/internal/secrets"
)

// SecretsStore fetches decrypted secret values by name.
type SecretsStore interface {
	Fetch(ctx context.Context, names []string) (map[string]string, error)
}

// StationSource authenticates against the telemetry provider and returns the
// weather-station tree.
type StationSource interface {
	Authenticate(ctx context.Context, creds netatmo.Credentials) error
	StationsData(ctx context.Context) ([]netatmo.Station, error)
}

// Publisher sends one batch of records in a single call.
type Publisher interface {
	Publish(ctx context.Context, batch []metrics.Record) error
}

// Run executes one collection pass: fetch secrets, authenticate, fetch the
// station tree, extract records and publish them in batches.
func Run(ctx context.Context, cfg config.Config) error {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx)
	if err != nil {
		return fmt.Errorf("load aws config: %w", err)
	}

	store := secrets.NewStore(ssm.NewFromConfig(awsCfg), slog.Default())
	source := netatmo.NewClient(cfg.NetatmoBaseURL, nil, slog.Default())
	publisher := cloudwatch.NewPublisher(cw.NewFromConfig(awsCfg), cfg.Namespace, slog.Default())

	return run(ctx, cfg, store, source, publisher)
}

// run is Run with the collaborators injected; tests drive it with fakes.
func run(ctx context.Context, cfg config.Config, store SecretsStore, source StationSource, publisher Publisher) error {
	values, err := store.Fetch(ctx, cfg.SecretNames())
	if err != nil {
		return fmt.Errorf("fetch secrets: %w", err)
	}

	creds := netatmo.Credentials{
		ClientID:     values[cfg.ClientIDParam],
		ClientSecret: values[cfg.ClientSecretParam],
		Username:     values[cfg.UsernameParam],
		Password:     values[cfg.PasswordParam],
	}
	if err := source.Authenticate(ctx, creds); err != nil {
		return fmt.Errorf("authenticate: %w", err)
	}

	stations, err := source.StationsData(ctx)
	if err != nil {
		return fmt.Errorf("fetch stations: %w", err)
	}

	records := metrics.Extract(stations)
	batches := metrics.Partition(records, cloudwatch.MaxBatchSize)
	for i, batch := range batches {
		if err := publisher.Publish(ctx, batch); err != nil {
			return fmt.Errorf("publish batch %d of %d: %w", i+1, len(batches), err)
		}
	}

	slog.Info("collection complete",
		"stations", len(stations),
		"records", len(records),
		"batches", len(batches),
	)
	return nil
}
