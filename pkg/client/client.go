// Package client ties the pod configuration, the object store and the URL
// signer of a single imgdot pod together.
//
// A Client starts uninitialized. Init loads the pod configuration once;
// Refresh loads it again and swaps it in as a whole. Loads never overlap.
package client

import (
	"context"
	"sync"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"github.com/imgdot/imgdot-go/pkg/podconfig"
	"github.com/imgdot/imgdot-go/pkg/signer"
	"github.com/imgdot/imgdot-go/pkg/storage"
)

type State int

const (
	StateUninitialized State = iota
	StateLoading
	StateReady
)

func (s State) String() string {
	switch s {
	case StateUninitialized:
		return "uninitialized"
	case StateLoading:
		return "loading"
	case StateReady:
		return "ready"
	default:
		return "unknown"
	}
}

// pod is everything derived from one loaded configuration.
type pod struct {
	signer *signer.URLSigner
	store  storage.ObjectStore
}

type Client struct {
	podID      string
	credential podconfig.Credential
	options    options

	// loadToken holds one value for the whole duration of a load
	loadToken chan struct{}

	lock    sync.RWMutex
	state   State
	current *pod
}

func New(podID string, credential podconfig.Credential, opts ...Option) (*Client, error) {
	o := options{
		storeFactory: NewMinioStore,
		logger:       zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(&o)
	}

	if o.fetcher == nil {
		fetcher, err := podconfig.NewHTTPFetcher(podconfig.Config{APIURL: o.apiURL}, o.httpClient, o.logger)
		if err != nil {
			return nil, err
		}
		o.fetcher = fetcher
	}

	return &Client{
		podID:      podID,
		credential: credential,
		options:    o,
		loadToken:  make(chan struct{}, 1),
	}, nil
}

func (c *Client) PodID() string {
	return c.podID
}

func (c *Client) State() State {
	c.lock.RLock()
	defer c.lock.RUnlock()

	return c.state
}

// Init loads the pod configuration unless it is already loaded. Concurrent
// callers wait for the one load in flight instead of starting their own.
func (c *Client) Init(ctx context.Context) error {
	if err := c.acquireLoad(ctx); err != nil {
		return err
	}
	defer c.releaseLoad()

	if c.State() == StateReady {
		return nil
	}

	return c.load(ctx)
}

// Refresh loads the pod configuration again. Until it completes callers keep
// using the previous one, which also stays in place if the load fails.
func (c *Client) Refresh(ctx context.Context) error {
	if err := c.acquireLoad(ctx); err != nil {
		return err
	}
	defer c.releaseLoad()

	return c.load(ctx)
}

// acquireLoad waits for the load in flight to finish, or for ctx to be done.
func (c *Client) acquireLoad(ctx context.Context) error {
	select {
	case c.loadToken <- struct{}{}:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (c *Client) releaseLoad() {
	<-c.loadToken
}

func (c *Client) load(ctx context.Context) error {
	c.setState(StateLoading)
	c.options.logger.Debug().Str("pod", c.podID).Msg("loading pod")

	loaded, err := c.fetch(ctx)
	if err != nil {
		c.lock.Lock()
		if c.current != nil {
			c.state = StateReady
		} else {
			c.state = StateUninitialized
		}
		c.lock.Unlock()

		c.options.logger.Debug().Err(err).Str("pod", c.podID).Msg("loading pod failed")
		return err
	}

	c.lock.Lock()
	c.current = loaded
	c.state = StateReady
	c.lock.Unlock()

	c.options.logger.Debug().Str("pod", c.podID).Msg("pod ready")
	return nil
}

func (c *Client) fetch(ctx context.Context) (*pod, error) {
	config, err := c.options.fetcher.Load(ctx, c.podID, c.credential)
	if err != nil {
		return nil, err
	}

	store, err := c.options.storeFactory(ctx, config.Storage, c.options.logger)
	if err != nil {
		return nil, errors.Wrap(err, "opening pod storage")
	}

	return &pod{
		signer: signer.NewURLSigner(config.Signing, c.options.signerOptions...),
		store:  store,
	}, nil
}

func (c *Client) setState(state State) {
	c.lock.Lock()
	defer c.lock.Unlock()

	c.state = state
}

func (c *Client) snapshot() (*pod, error) {
	c.lock.RLock()
	defer c.lock.RUnlock()

	if c.current == nil {
		return nil, signer.ErrConfigNotReady
	}

	return c.current, nil
}

// SigningConfig returns the configuration the signer currently uses.
func (c *Client) SigningConfig() (signer.SigningConfig, error) {
	current, err := c.snapshot()
	if err != nil {
		return signer.SigningConfig{}, err
	}

	return current.signer.Config(), nil
}

// BuildURL returns an empty string and no error for an empty sourceURL, even
// before Init.
func (c *Client) BuildURL(sourceURL, size string) (string, error) {
	if sourceURL == "" {
		return "", nil
	}

	current, err := c.snapshot()
	if err != nil {
		return "", err
	}

	return current.signer.BuildURL(sourceURL, size)
}

// BuildURLs maps every size to an empty string for an empty sourceURL, even
// before Init.
func (c *Client) BuildURLs(sourceURL string, sizes []string) (signer.SignedURLs, error) {
	if sourceURL == "" {
		return signer.NewURLSigner(signer.SigningConfig{}).BuildURLs("", sizes)
	}

	current, err := c.snapshot()
	if err != nil {
		return signer.SignedURLs{}, err
	}

	return current.signer.BuildURLs(sourceURL, sizes)
}

func (c *Client) ReadFile(ctx context.Context, key string) ([]byte, error) {
	current, err := c.snapshot()
	if err != nil {
		return nil, err
	}

	return current.store.Read(ctx, key)
}

func (c *Client) WriteFile(ctx context.Context, key string, data []byte) (storage.WriteResult, error) {
	current, err := c.snapshot()
	if err != nil {
		return storage.WriteResult{}, err
	}

	return current.store.Write(ctx, key, data)
}

func (c *Client) DeleteFile(ctx context.Context, key string) error {
	current, err := c.snapshot()
	if err != nil {
		return err
	}

	return current.store.Delete(ctx, key)
}

func (c *Client) FileExists(ctx context.Context, key string) (bool, error) {
	current, err := c.snapshot()
	if err != nil {
		return false, err
	}

	c.options.logger.Debug().Str("key", key).Msg("checking file existence")
	return current.store.Exists(ctx, key)
}

func (c *Client) ListFiles(ctx context.Context, prefix string, recursive bool) (*storage.EntryIterator, error) {
	current, err := c.snapshot()
	if err != nil {
		return nil, err
	}

	return current.store.List(ctx, prefix, recursive), nil
}

func (c *Client) ListAllFiles(ctx context.Context, prefix string, recursive bool) ([]storage.Entry, error) {
	current, err := c.snapshot()
	if err != nil {
		return nil, err
	}

	return current.store.ListAll(ctx, prefix, recursive)
}

func (c *Client) ListMatchingFiles(ctx context.Context, prefix, pattern string) ([]storage.Entry, error) {
	current, err := c.snapshot()
	if err != nil {
		return nil, err
	}

	return current.store.ListMatching(ctx, prefix, pattern)
}
