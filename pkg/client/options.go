package client

import (
	"context"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/imgdot/imgdot-go/pkg/podconfig"
	"github.com/imgdot/imgdot-go/pkg/signer"
	"github.com/imgdot/imgdot-go/pkg/storage"
	"github.com/imgdot/imgdot-go/pkg/storage/connections"
)

// StoreFactory opens the object store described by a pod's storage config.
type StoreFactory func(ctx context.Context, config podconfig.StorageConfig, logger zerolog.Logger) (storage.ObjectStore, error)

type Option func(*options)

type options struct {
	apiURL        string
	httpClient    *http.Client
	fetcher       podconfig.Fetcher
	storeFactory  StoreFactory
	logger        zerolog.Logger
	signerOptions []signer.Option
}

// WithAPIURL sets the control API root used by the default fetcher.
func WithAPIURL(apiURL string) Option {
	return func(o *options) {
		o.apiURL = apiURL
	}
}

func WithHTTPClient(httpClient *http.Client) Option {
	return func(o *options) {
		o.httpClient = httpClient
	}
}

// WithFetcher replaces the HTTP fetcher; WithAPIURL is ignored then.
func WithFetcher(fetcher podconfig.Fetcher) Option {
	return func(o *options) {
		o.fetcher = fetcher
	}
}

func WithStoreFactory(factory StoreFactory) Option {
	return func(o *options) {
		o.storeFactory = factory
	}
}

func WithLogger(logger zerolog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

func WithSignerOptions(opts ...signer.Option) Option {
	return func(o *options) {
		o.signerOptions = append(o.signerOptions, opts...)
	}
}

// NewMinioStore is the default StoreFactory.
func NewMinioStore(ctx context.Context, config podconfig.StorageConfig, logger zerolog.Logger) (storage.ObjectStore, error) {
	conn, err := connections.NewMinioConnection(connections.MinioConfig{
		Endpoint:  config.Endpoint,
		AccessKey: config.AccessKey,
		SecretKey: config.SecretKey,
		Region:    config.Region,
		Bucket:    config.Bucket,
		UseSSL:    config.SSLEnabled,
	})
	if err != nil {
		return nil, err
	}

	return storage.NewObjectStore(conn, logger), nil
}
