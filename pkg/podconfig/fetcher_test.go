package podconfig

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/franela/goblin"
	"github.com/rs/zerolog"

	testutils "github.com/imgdot/imgdot-go/test/utils"
)

type httpResponseBody struct {
	io.Reader
}

func (body *httpResponseBody) Close() error {
	return nil
}

func testReqFunc(statusCode int, response string, callError error, requestAssert func(req *http.Request)) httpRequestFunc {
	return func(req *http.Request) (*http.Response, error) {
		requestAssert(req)

		if callError != nil {
			return nil, callError
		}

		return &http.Response{
			StatusCode: statusCode,
			Body:       &httpResponseBody{bytes.NewReader([]byte(response))},
		}, nil
	}
}

func noAssertions(req *http.Request) {}

const validPodConfigBody = `{
	"s3Config": {
		"accessKey": "access",
		"secretKey": "secret",
		"region": "eu-central-1",
		"endpoint": "s3.example:9000",
		"sslEnabled": true,
		"bucket": "pod-bucket"
	},
	"imgproxyConfig": {
		"baseUrl": "https://img.example/",
		"key": "0001",
		"salt": "0203",
		"quality": 75
	}
}`

func newTestFetcher(makeRequest httpRequestFunc) *HTTPFetcher {
	return &HTTPFetcher{
		config:      Config{APIURL: "https://api.example/"},
		makeRequest: makeRequest,
		logger:      zerolog.Nop(),
	}
}

func TestHTTPFetcher(t *testing.T) {
	g := goblin.Goblin(t)

	g.Describe("HTTPFetcher", func() {
		g.Describe("Load", func() {
			g.It("Should send basic auth request to pod config endpoint", func() {
				fetcher := newTestFetcher(testReqFunc(200, validPodConfigBody, nil, func(req *http.Request) {
					g.Assert(req.Method).Equal(http.MethodGet)
					g.Assert(req.URL.String()).Equal("https://api.example/pod-config/pod-1")
					g.Assert(req.Header.Get("Authorization")).Equal("Basic aWQ6a2V5")
					g.Assert(req.Header.Get("Accept")).Equal("application/json")
				}))

				_, err := fetcher.Load(context.Background(), "pod-1", Credential{APIID: "id", APIKey: "key"})

				g.Assert(err).IsNil()
			})

			g.It("Should decode storage and proxy configuration", func() {
				fetcher := newTestFetcher(testReqFunc(200, validPodConfigBody, nil, noAssertions))

				config, _ := fetcher.Load(context.Background(), "pod-1", Credential{})

				g.Assert(config.Storage).Equal(StorageConfig{
					AccessKey:  "access",
					SecretKey:  "secret",
					Region:     "eu-central-1",
					Endpoint:   "s3.example:9000",
					SSLEnabled: true,
					Bucket:     "pod-bucket",
				})

				signing, err := config.SigningConfig()
				g.Assert(err).IsNil()
				g.Assert(signing.BaseURL()).Equal("https://img.example")
				g.Assert(signing.Key()).Equal([]byte{0x00, 0x01})
				g.Assert(signing.Salt()).Equal([]byte{0x02, 0x03})
				g.Assert(signing.Quality()).Equal(75)
			})

			g.It("Should return the decoded signing configuration", func() {
				fetcher := newTestFetcher(testReqFunc(200, validPodConfigBody, nil, noAssertions))

				config, err := fetcher.Load(context.Background(), "pod-1", Credential{})

				g.Assert(err).IsNil()
				g.Assert(config.Signing.Ready()).IsTrue()
				g.Assert(config.Signing.BaseURL()).Equal("https://img.example")
				g.Assert(config.Signing.Key()).Equal([]byte{0x00, 0x01})
				g.Assert(config.Signing.Salt()).Equal([]byte{0x02, 0x03})
				g.Assert(config.Signing.Quality()).Equal(75)
			})

			g.It("Should return ConfigFetchError on non 2xx response", func() {
				fetcher := newTestFetcher(testReqFunc(403, `{"error":"forbidden"}`, nil, noAssertions))

				_, err := fetcher.Load(context.Background(), "pod-1", Credential{})

				var fetchErr *ConfigFetchError
				g.Assert(errors.Is(err, ErrConfigFetch)).IsTrue()
				g.Assert(errors.As(err, &fetchErr)).IsTrue()
				g.Assert(fetchErr.StatusCode).Equal(403)
				g.Assert(fetchErr.PodID).Equal("pod-1")
			})

			g.It("Should return ConfigFetchError on malformed json", func() {
				fetcher := newTestFetcher(testReqFunc(200, `{"s3Config":`, nil, noAssertions))

				_, err := fetcher.Load(context.Background(), "pod-1", Credential{})

				g.Assert(errors.Is(err, ErrConfigFetch)).IsTrue()
			})

			g.It("Should return ConfigFetchError on undecodable secrets", func() {
				body := strings.Replace(validPodConfigBody, `"key": "0001"`, `"key": "xyz"`, 1)
				fetcher := newTestFetcher(testReqFunc(200, body, nil, noAssertions))

				_, err := fetcher.Load(context.Background(), "pod-1", Credential{})

				g.Assert(errors.Is(err, ErrConfigFetch)).IsTrue()
			})

			g.It("Should wrap transport errors", func() {
				transportErr := errors.New("connection refused")
				fetcher := newTestFetcher(testReqFunc(0, "", transportErr, noAssertions))

				_, err := fetcher.Load(context.Background(), "pod-1", Credential{})

				g.Assert(errors.Is(err, ErrConfigFetch)).IsTrue()
				g.Assert(errors.Is(err, transportErr)).IsTrue()
			})
		})
	})
}

func TestNewHTTPFetcher_ShouldRequireAPIURL(t *testing.T) {
	_, err := NewHTTPFetcher(Config{}, nil, zerolog.Nop())
	if err != ErrAPIURLRequired {
		t.Errorf("Expected ErrAPIURLRequired, got %v", err)
	}
}

func TestHTTPFetcherIntegration_ShouldLoadConfigFromServer(t *testing.T) {
	server := testutils.NewTestHttpServer()
	server.HandleFunc("/pod-config/pod-1", func(w http.ResponseWriter, r *http.Request) {
		id, key, ok := r.BasicAuth()
		if !ok || id != "id" || key != "key" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(validPodConfigBody))
	})
	apiURL := server.Start(t)

	fetcher, err := NewHTTPFetcher(Config{APIURL: apiURL}, nil, zerolog.Nop())
	if err != nil {
		t.Fatalf("Error ocurred when creating fetcher: %s", err)
	}

	config, err := fetcher.Load(context.Background(), "pod-1", Credential{APIID: "id", APIKey: "key"})
	if err != nil {
		t.Fatalf("Error ocurred when loading pod config: %s", err)
	}

	if config.Storage.Bucket != "pod-bucket" {
		t.Errorf("Expected bucket pod-bucket, got %q", config.Storage.Bucket)
	}

	_, err = fetcher.Load(context.Background(), "pod-1", Credential{APIID: "id", APIKey: "wrong"})

	var fetchErr *ConfigFetchError
	if !errors.As(err, &fetchErr) || fetchErr.StatusCode != http.StatusUnauthorized {
		t.Errorf("Expected ConfigFetchError with status 401, got %v", err)
	}
}

func TestHTTPFetcherIntegration_ShouldReportMissingPod(t *testing.T) {
	server := testutils.NewTestHttpServer()
	server.HandleJSON("/pod-config/known", http.StatusOK, map[string]interface{}{})
	apiURL := server.Start(t)

	fetcher, _ := NewHTTPFetcher(Config{APIURL: apiURL}, nil, zerolog.Nop())

	if _, err := fetcher.Load(context.Background(), "known", Credential{}); err != nil {
		t.Errorf("Expected empty config to load, got %v", err)
	}

	_, err := fetcher.Load(context.Background(), "unknown", Credential{})
	if !errors.Is(err, ErrConfigFetch) {
		t.Errorf("Expected ErrConfigFetch, got %v", err)
	}
}
