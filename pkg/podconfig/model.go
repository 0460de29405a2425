package podconfig

import (
	"github.com/imgdot/imgdot-go/pkg/signer"
)

type Credential struct {
	APIID  string
	APIKey string
}

// PodConfig is the body returned by the control API for a single pod.
type PodConfig struct {
	Storage StorageConfig `json:"s3Config"`
	Proxy   ProxyConfig   `json:"imgproxyConfig"`

	// Signing is Proxy decoded, filled in by Load.
	Signing signer.SigningConfig `json:"-"`
}

type StorageConfig struct {
	AccessKey  string `json:"accessKey"`
	SecretKey  string `json:"secretKey"`
	Region     string `json:"region"`
	Endpoint   string `json:"endpoint"`
	SSLEnabled bool   `json:"sslEnabled"`
	Bucket     string `json:"bucket"`
}

// ProxyConfig carries the image proxy secrets hex encoded.
type ProxyConfig struct {
	BaseURL string `json:"baseUrl"`
	Key     string `json:"key"`
	Salt    string `json:"salt"`
	Quality int    `json:"quality"`
}

func (c PodConfig) SigningConfig() (signer.SigningConfig, error) {
	return signer.NewSigningConfig(c.Proxy.BaseURL, c.Proxy.Key, c.Proxy.Salt, c.Proxy.Quality)
}
