package main

import (
	"context"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"

	"github.com/imgdot/imgdot-go/pkg/client"
	"github.com/imgdot/imgdot-go/pkg/podconfig"
	"github.com/imgdot/imgdot-go/pkg/signer"
)

// logOutput is swapped in tests
var logOutput io.Writer = os.Stderr

func InitializeLogger(settings Settings) zerolog.Logger {
	level, err := zerolog.ParseLevel(settings.LogLevel)
	if err != nil || settings.LogLevel == "" {
		level = zerolog.WarnLevel
	}

	return zerolog.New(zerolog.ConsoleWriter{Out: logOutput, TimeFormat: time.RFC3339}).
		Level(level).
		With().
		Timestamp().
		Str("pod", settings.PodID).
		Logger()
}

func InitializeCredential(settings Settings) podconfig.Credential {
	return podconfig.Credential{
		APIID:  settings.APIID,
		APIKey: settings.APIKey,
	}
}

func InitializeFetcher(settings Settings, logger zerolog.Logger) (podconfig.Fetcher, error) {
	return podconfig.NewHTTPFetcher(podconfig.Config{APIURL: settings.APIURL}, nil, logger)
}

func InitializeClient(
	ctx context.Context,
	settings Settings,
	fetcher podconfig.Fetcher,
	credential podconfig.Credential,
	logger zerolog.Logger,
) (*client.Client, error) {
	opts := []client.Option{
		client.WithFetcher(fetcher),
		client.WithLogger(logger),
	}
	if settings.StrictSizes {
		opts = append(opts, client.WithSignerOptions(signer.WithStrictSizes()))
	}

	podClient, err := client.New(settings.PodID, credential, opts...)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, time.Minute)
	defer cancel()

	if err := podClient.Init(ctx); err != nil {
		return nil, err
	}

	return podClient, nil
}
