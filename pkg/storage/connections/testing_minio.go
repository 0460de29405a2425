package connections

import (
	"context"
	"os"
	"testing"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
)

// MinioTestingConnection works on a fresh bucket that is emptied and dropped
// when the test ends.
type MinioTestingConnection struct {
	*MinioConnection
}

func NewMinioTestingConnection(t *testing.T) *MinioTestingConnection {
	conn, err := NewMinioConnection(MinioConfig{
		Endpoint:  testingServerEndpoint(),
		AccessKey: testingServerAccessKey,
		SecretKey: testingServerSecretKey,
		Bucket:    "placeholder",
		Region:    "us-east-1",
		UseSSL:    false,
	})
	if err != nil {
		t.Fatalf("Error when connecting to minio: %s", err)
	}

	conn.config.Bucket = getRandomTestingBucketName(t, conn.client)
	if err := conn.client.MakeBucket(context.Background(), conn.config.Bucket, minio.MakeBucketOptions{Region: "us-east-1"}); err != nil {
		t.Fatalf("Error when creating test bucket: %s", err)
	}

	testingConn := &MinioTestingConnection{conn}
	t.Cleanup(func() { testingConn.dropTestBucket(t) })

	return testingConn
}

func (c *MinioTestingConnection) dropTestBucket(t *testing.T) {
	ctx := context.Background()

	objects := c.client.ListObjects(ctx, c.config.Bucket, minio.ListObjectsOptions{Recursive: true})
	for removeErr := range c.client.RemoveObjects(ctx, c.config.Bucket, objects, minio.RemoveObjectsOptions{}) {
		t.Errorf("Error when emptying test bucket: %s", removeErr.Err)
	}

	if err := c.client.RemoveBucket(ctx, c.config.Bucket); err != nil {
		t.Errorf("Error when dropping test bucket: %s", err)
	}
}

func getRandomTestingBucketName(t *testing.T, client *minio.Client) string {
	for i := 0; i < 10; i++ {
		bucketName := "test-" + uuid.New().String()

		exists, err := client.BucketExists(context.Background(), bucketName)
		if err != nil {
			t.Fatalf("Error when checking if bucket name exists: %s", err)
		}
		if !exists {
			return bucketName
		}
	}

	t.Fatal("Could not generate random bucket name")
	return ""
}

func testingServerEndpoint() string {
	if endpoint := os.Getenv("IMGDOT_TEST_MINIO_ENDPOINT"); endpoint != "" {
		return endpoint
	}

	return "localhost:9000"
}

const testingServerAccessKey = "minio"
const testingServerSecretKey = "minio123"
