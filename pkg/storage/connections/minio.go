package connections

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/pkg/errors"
)

// ListPageSize bounds the number of keys fetched per listing request.
const ListPageSize = 20

type MinioConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Region    string
	Bucket    string
	UseSSL    bool
}

type MinioConnection struct {
	config MinioConfig
	client *minio.Client
}

var _ Connection = (*MinioConnection)(nil)

func NewMinioConnection(config MinioConfig) (*MinioConnection, error) {
	if config.Bucket == "" {
		return nil, ErrBucketRequired
	}

	host, secure, err := normalizeEndpoint(config.Endpoint, config.UseSSL)
	if err != nil {
		return nil, err
	}

	client, err := minio.New(host, &minio.Options{
		Creds:  credentials.NewStaticV4(config.AccessKey, config.SecretKey, ""),
		Secure: secure,
		Region: config.Region,
	})
	if err != nil {
		return nil, errors.Wrap(err, "creating minio client")
	}

	return &MinioConnection{
		config: config,
		client: client,
	}, nil
}

func (c *MinioConnection) Bucket() string {
	return c.config.Bucket
}

func (c *MinioConnection) GetObject(ctx context.Context, objectName string) (io.ReadCloser, error) {
	object, err := c.client.GetObject(ctx, c.config.Bucket, objectName, minio.GetObjectOptions{})
	if err != nil {
		return nil, err
	}

	// GetObject is lazy, a missing key only shows up on the first request
	if _, err := object.Stat(); err != nil {
		object.Close()
		return nil, err
	}

	return object, nil
}

func (c *MinioConnection) PutObject(
	ctx context.Context,
	objectName string,
	objectSize int64,
	mimeType string,
	reader io.Reader,
) (minio.UploadInfo, error) {
	return c.client.PutObject(
		ctx,
		c.config.Bucket,
		objectName,
		reader,
		objectSize,
		minio.PutObjectOptions{ContentType: mimeType},
	)
}

func (c *MinioConnection) DeleteObject(ctx context.Context, objectName string) error {
	return c.client.RemoveObject(ctx, c.config.Bucket, objectName, minio.RemoveObjectOptions{})
}

func (c *MinioConnection) ObjectExists(ctx context.Context, objectName string) (exists bool, err error) {
	_, err = c.client.StatObject(ctx, c.config.Bucket, objectName, minio.StatObjectOptions{})
	if err != nil {
		if IsNotFound(err) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (c *MinioConnection) ListObjects(ctx context.Context, prefix string, recursive bool) <-chan minio.ObjectInfo {
	return c.client.ListObjects(ctx, c.config.Bucket, minio.ListObjectsOptions{
		Prefix:    prefix,
		Recursive: recursive,
		MaxKeys:   ListPageSize,
	})
}

// IsNotFound reports whether err is the storage's answer for a missing key.
func IsNotFound(err error) bool {
	if err == nil {
		return false
	}

	response := minio.ToErrorResponse(err)
	switch response.Code {
	case "NoSuchKey", "NotFound":
		return true
	}

	return response.StatusCode == http.StatusNotFound && response.Code != "NoSuchBucket"
}

// normalizeEndpoint accepts both host:port and a full URL. A URL scheme
// decides about SSL when one is given.
func normalizeEndpoint(endpoint string, useSSL bool) (host string, secure bool, err error) {
	if endpoint == "" {
		return "", false, ErrEndpointRequired
	}

	if !strings.Contains(endpoint, "://") {
		return strings.TrimRight(endpoint, "/"), useSSL, nil
	}

	parsed, err := url.Parse(endpoint)
	if err != nil {
		return "", false, errors.Wrap(err, "parsing storage endpoint")
	}

	switch parsed.Scheme {
	case "https":
		return parsed.Host, true, nil
	case "http":
		return parsed.Host, false, nil
	default:
		return "", false, errors.Errorf("unsupported storage endpoint scheme %q", parsed.Scheme)
	}
}

var (
	ErrBucketRequired   = errors.New("storage bucket is required")
	ErrEndpointRequired = errors.New("storage endpoint is required")
)
