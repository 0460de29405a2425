package connections

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"testing"

	"github.com/franela/goblin"
	"github.com/minio/minio-go/v7"
)

func TestMinioConnectionHelpers(t *testing.T) {
	g := goblin.Goblin(t)

	g.Describe("normalizeEndpoint", func() {
		g.It("Should keep host:port endpoints and the ssl flag", func() {
			host, secure, err := normalizeEndpoint("s3.example:9000", true)

			g.Assert(err).IsNil()
			g.Assert(host).Equal("s3.example:9000")
			g.Assert(secure).IsTrue()
		})

		g.It("Should turn ssl on for https urls", func() {
			host, secure, _ := normalizeEndpoint("https://s3.example", false)

			g.Assert(host).Equal("s3.example")
			g.Assert(secure).IsTrue()
		})

		g.It("Should turn ssl off for http urls", func() {
			host, secure, _ := normalizeEndpoint("http://localhost:9000/", true)

			g.Assert(host).Equal("localhost:9000")
			g.Assert(secure).IsFalse()
		})

		g.It("Should reject an empty endpoint", func() {
			_, _, err := normalizeEndpoint("", false)

			g.Assert(err).Equal(ErrEndpointRequired)
		})

		g.It("Should reject unknown schemes", func() {
			_, _, err := normalizeEndpoint("ftp://s3.example", false)

			g.Assert(err == nil).IsFalse()
		})
	})

	g.Describe("IsNotFound", func() {
		g.It("Should recognize missing keys", func() {
			g.Assert(IsNotFound(minio.ErrorResponse{Code: "NoSuchKey"})).IsTrue()
			g.Assert(IsNotFound(minio.ErrorResponse{Code: "NotFound"})).IsTrue()
			g.Assert(IsNotFound(minio.ErrorResponse{StatusCode: http.StatusNotFound})).IsTrue()
		})

		g.It("Should not treat other errors as missing keys", func() {
			g.Assert(IsNotFound(nil)).IsFalse()
			g.Assert(IsNotFound(minio.ErrorResponse{Code: "AccessDenied", StatusCode: http.StatusForbidden})).IsFalse()
			g.Assert(IsNotFound(minio.ErrorResponse{Code: "NoSuchBucket", StatusCode: http.StatusNotFound})).IsFalse()
		})
	})
}

func TestNewMinioConnection_ShouldRequireBucket(t *testing.T) {
	_, err := NewMinioConnection(MinioConfig{Endpoint: "localhost:9000"})
	if err != ErrBucketRequired {
		t.Errorf("Expected ErrBucketRequired, got %v", err)
	}
}

func TestMinioConnectionIntegration_ShouldPutGetAndDeleteObject(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping minio connection integration tests")
	}

	ctx := context.Background()
	conn := NewMinioTestingConnection(t)
	testData := []byte("test data")

	if _, err := conn.PutObject(ctx, "a/b.txt", int64(len(testData)), "text/plain", bytes.NewReader(testData)); err != nil {
		t.Fatalf("Error ocurred while putting object: %s", err)
	}

	reader, err := conn.GetObject(ctx, "a/b.txt")
	if err != nil {
		t.Fatalf("Error ocurred while getting object: %s", err)
	}
	data, _ := io.ReadAll(reader)
	reader.Close()

	if !bytes.Equal(data, testData) {
		t.Fatalf("Readed data is not equal to original data")
	}

	if err := conn.DeleteObject(ctx, "a/b.txt"); err != nil {
		t.Fatalf("Error ocurred while deleting object: %s", err)
	}

	exists, err := conn.ObjectExists(ctx, "a/b.txt")
	if err != nil || exists {
		t.Fatalf("Expected object to be gone, got exists=%v err=%v", exists, err)
	}

	if _, err := conn.GetObject(ctx, "a/b.txt"); !IsNotFound(err) {
		t.Fatalf("Expected not found error, got %v", err)
	}
}
