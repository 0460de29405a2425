package signer

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"
)

const (
	gravity   = "no"
	enlarge   = 1
	extension = "jpg"
)

type Option func(*URLSigner)

// WithStrictSizes makes malformed size tokens fail with ErrInvalidSizeToken
// instead of being passed on to the proxy.
func WithStrictSizes() Option {
	return func(s *URLSigner) {
		s.strictSizes = true
	}
}

type URLSigner struct {
	config      SigningConfig
	strictSizes bool
}

var _ Signer = (*URLSigner)(nil)

func NewURLSigner(config SigningConfig, opts ...Option) *URLSigner {
	s := &URLSigner{config: config}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

func (s *URLSigner) Config() SigningConfig {
	return s.config
}

// BuildURL returns an empty string and no error when sourceURL is empty.
func (s *URLSigner) BuildURL(sourceURL, size string) (string, error) {
	if sourceURL == "" {
		return "", nil
	}

	if !s.config.Ready() {
		return "", ErrConfigNotReady
	}

	spec, err := parseSize(size, s.strictSizes)
	if err != nil {
		return "", err
	}

	path := TransformPath{
		ResizingType:  spec.resizingType,
		Width:         spec.width,
		Height:        spec.height,
		Gravity:       gravity,
		Enlarge:       enlarge,
		EncodedSource: encodeURLSafe([]byte(sourceURL)),
		Extension:     extension,
	}.String()

	return s.config.baseURL + "/" + s.sign(path) + path, nil
}

func (s *URLSigner) BuildURLs(sourceURL string, sizes []string) (SignedURLs, error) {
	result := SignedURLs{urls: make(map[string]string, len(sizes))}
	for _, size := range sizes {
		signedURL, err := s.BuildURL(sourceURL, size)
		if err != nil {
			return SignedURLs{}, err
		}

		result.set(size, signedURL)
	}

	return result, nil
}

// salt and path go in as two separate writes, salt first.
func (s *URLSigner) sign(path string) string {
	mac := hmac.New(sha256.New, s.config.key)
	mac.Write(s.config.salt)
	mac.Write([]byte(path))
	return encodeURLSafe(mac.Sum(nil))
}

// TransformPath is the processing part of a proxy URL, everything after the
// signature segment.
type TransformPath struct {
	ResizingType  string
	Width         string
	Height        string
	Gravity       string
	Enlarge       int
	EncodedSource string
	Extension     string
}

func (p TransformPath) String() string {
	return fmt.Sprintf("/%s/%s/%s/%s/%d/%s.%s",
		p.ResizingType, p.Width, p.Height, p.Gravity, p.Enlarge, p.EncodedSource, p.Extension)
}

func encodeURLSafe(data []byte) string {
	return base64.RawURLEncoding.EncodeToString(data)
}

// SignedURLs keeps the requested size tokens in the order they were first seen.
type SignedURLs struct {
	sizes []string
	urls  map[string]string
}

func (u *SignedURLs) set(size, signedURL string) {
	if _, exists := u.urls[size]; !exists {
		u.sizes = append(u.sizes, size)
	}

	u.urls[size] = signedURL
}

func (u SignedURLs) Sizes() []string {
	return append([]string(nil), u.sizes...)
}

func (u SignedURLs) Get(size string) (string, bool) {
	signedURL, found := u.urls[size]
	return signedURL, found
}

func (u SignedURLs) Len() int {
	return len(u.sizes)
}

func (u SignedURLs) Map() map[string]string {
	out := make(map[string]string, len(u.urls))
	for size, signedURL := range u.urls {
		out[size] = signedURL
	}

	return out
}

var (
	ErrConfigNotReady   = errors.New("signing config not ready")
	ErrInvalidSizeToken = errors.New("invalid size token")
)
