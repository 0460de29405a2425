//go:build wireinject
// +build wireinject

package main

import (
	"context"

	"github.com/google/wire"

	"github.com/imgdot/imgdot-go/pkg/client"
)

func NewPodClient(ctx context.Context, settings Settings) (*client.Client, error) {
	wire.Build(
		InitializeLogger,
		InitializeCredential,
		InitializeFetcher,
		InitializeClient,
	)

	return nil, nil
}
