package podconfig

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	pkgerrors "github.com/pkg/errors"
	"github.com/rs/zerolog"
)

type httpRequestFunc func(req *http.Request) (*http.Response, error)

type Config struct {
	// APIURL is the control API root, for example https://api.imgdot.dev
	APIURL string
}

type HTTPFetcher struct {
	config      Config
	makeRequest httpRequestFunc
	logger      zerolog.Logger
}

var _ Fetcher = (*HTTPFetcher)(nil)

func NewHTTPFetcher(config Config, httpClient *http.Client, logger zerolog.Logger) (*HTTPFetcher, error) {
	if config.APIURL == "" {
		return nil, ErrAPIURLRequired
	}

	if _, err := url.Parse(config.APIURL); err != nil {
		return nil, pkgerrors.Wrap(err, "parsing control api url")
	}

	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	return &HTTPFetcher{config, httpClient.Do, logger}, nil
}

func (f *HTTPFetcher) Load(ctx context.Context, podID string, credential Credential) (PodConfig, error) {
	req, err := f.buildRequest(ctx, podID, credential)
	if err != nil {
		return PodConfig{}, &ConfigFetchError{PodID: podID, Err: err}
	}

	f.logger.Debug().Str("pod", podID).Str("url", req.URL.String()).Msg("fetching pod config")

	response, err := f.makeRequest(req)
	if err != nil {
		return PodConfig{}, &ConfigFetchError{PodID: podID, Err: err}
	}
	defer response.Body.Close()

	if response.StatusCode < 200 || response.StatusCode > 299 {
		return PodConfig{}, &ConfigFetchError{PodID: podID, StatusCode: response.StatusCode}
	}

	var config PodConfig
	if err := json.NewDecoder(response.Body).Decode(&config); err != nil {
		return PodConfig{}, &ConfigFetchError{
			PodID:      podID,
			StatusCode: response.StatusCode,
			Err:        pkgerrors.Wrap(err, "decoding pod config"),
		}
	}

	if config.Signing, err = config.SigningConfig(); err != nil {
		return PodConfig{}, &ConfigFetchError{PodID: podID, StatusCode: response.StatusCode, Err: err}
	}

	f.logger.Debug().
		Str("pod", podID).
		Str("bucket", config.Storage.Bucket).
		Str("proxy", config.Proxy.BaseURL).
		Msg("pod config loaded")

	return config, nil
}

func (f *HTTPFetcher) buildRequest(ctx context.Context, podID string, credential Credential) (*http.Request, error) {
	endpoint := strings.TrimRight(f.config.APIURL, "/") + "/pod-config/" + url.PathEscape(podID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}

	req.SetBasicAuth(credential.APIID, credential.APIKey)
	req.Header.Set("Accept", "application/json")
	return req, nil
}

// ConfigFetchError is returned for every failed Load. StatusCode is zero
// when no response was received.
type ConfigFetchError struct {
	PodID      string
	StatusCode int
	Err        error
}

func (e *ConfigFetchError) Error() string {
	msg := fmt.Sprintf("%s for pod %q", ErrConfigFetch, e.PodID)
	if e.StatusCode != 0 {
		msg += fmt.Sprintf(" (status %d)", e.StatusCode)
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}

	return msg
}

func (e *ConfigFetchError) Unwrap() error {
	return e.Err
}

func (e *ConfigFetchError) Is(target error) bool {
	return target == ErrConfigFetch
}

var (
	ErrConfigFetch    = errors.New("pod config fetch failed")
	ErrAPIURLRequired = errors.New("control api url is required")
)
