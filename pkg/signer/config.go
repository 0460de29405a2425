package signer

import (
	"encoding/hex"
	"strings"

	"github.com/pkg/errors"
)

// SigningConfig holds the image proxy parameters a signer works with.
// It is never mutated after construction; a refreshed configuration
// replaces the whole value.
type SigningConfig struct {
	baseURL string
	key     []byte
	salt    []byte
	quality int
}

// NewSigningConfig decodes the hex encoded key and salt handed out by the
// control API.
func NewSigningConfig(baseURL, hexKey, hexSalt string, quality int) (SigningConfig, error) {
	key, err := hex.DecodeString(hexKey)
	if err != nil {
		return SigningConfig{}, errors.Wrap(err, "decoding signing key")
	}

	salt, err := hex.DecodeString(hexSalt)
	if err != nil {
		return SigningConfig{}, errors.Wrap(err, "decoding signing salt")
	}

	return SigningConfig{
		baseURL: strings.TrimRight(baseURL, "/"),
		key:     key,
		salt:    salt,
		quality: quality,
	}, nil
}

// NewSigningConfigFromBytes is like NewSigningConfig for already decoded secrets.
func NewSigningConfigFromBytes(baseURL string, key, salt []byte, quality int) SigningConfig {
	return SigningConfig{
		baseURL: strings.TrimRight(baseURL, "/"),
		key:     cloneBytes(key),
		salt:    cloneBytes(salt),
		quality: quality,
	}
}

func (c SigningConfig) BaseURL() string { return c.baseURL }
func (c SigningConfig) Key() []byte     { return cloneBytes(c.key) }
func (c SigningConfig) Salt() []byte    { return cloneBytes(c.salt) }
func (c SigningConfig) Quality() int    { return c.quality }

// Ready reports whether every value needed for signing is present.
func (c SigningConfig) Ready() bool {
	return c.baseURL != "" && len(c.key) > 0 && len(c.salt) > 0
}

func cloneBytes(b []byte) []byte {
	if b == nil {
		return nil
	}

	out := make([]byte, len(b))
	copy(out, b)
	return out
}
