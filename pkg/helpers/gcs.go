package helpers

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"cloud.google.com/go/storage"
	"google.golang.org/api/option"
)

// NewGCSClient creates a Google Cloud Storage client. If credsPath is empty, ADC is used.
func NewGCSClient(ctx context.Context, credsPath string) (*storage.Client, error) {
	if credsPath == "" {
		return storage.NewClient(ctx)
	}
	return storage.NewClient(ctx, option.WithCredentialsFile(credsPath))
}

// UploadObject uploads bytes from r into bucket/objectPath with the provided contentType
func UploadObject(ctx context.Context, client *storage.Client, bucket, objectPath, contentType string, r io.Reader) (string, error) {
	wc := client.Bucket(bucket).Object(objectPath).NewWriter(ctx)
	wc.ContentType = contentType
	wc.ChunkSize = 0 // single request upload
	if _, err := io.Copy(wc, r); err != nil {
		_ = wc.Close()
		return "", err
	}
	if err := wc.Close(); err != nil {
		return "", err
	}
	return ObjectURL(bucket, objectPath), nil
}

// UploadBytes is UploadObject for an in-memory payload.
func UploadBytes(ctx context.Context, client *storage.Client, bucket, objectPath, contentType string, data []byte) (string, error) {
	return UploadObject(ctx, client, bucket, objectPath, contentType, bytes.NewReader(data))
}

func ObjectURL(bucket, objectPath string) string {
	return fmt.Sprintf("gs://%s/%s", bucket, objectPath)
}
