package connections

import (
	"context"
	"io"

	"github.com/minio/minio-go/v7"
)

type Connection interface {
	GetObject(ctx context.Context, objectName string) (io.ReadCloser, error)
	PutObject(ctx context.Context, objectName string, objectSize int64, mimeType string, reader io.Reader) (minio.UploadInfo, error)
	DeleteObject(ctx context.Context, objectName string) error
	ObjectExists(ctx context.Context, objectName string) (exists bool, err error)
	// ListObjects pages through the bucket lazily and closes the channel when
	// the listing ends or ctx is cancelled.
	ListObjects(ctx context.Context, prefix string, recursive bool) <-chan minio.ObjectInfo
}
