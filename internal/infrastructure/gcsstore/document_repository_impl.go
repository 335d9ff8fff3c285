package gcsstore

import (
	"context"
	"errors"
	"fmt"
	"io"

	"cloud.google.com/go/storage"

	"github.com/pogojump/pogojump-api/internal/domain/repository"
	"github.com/pogojump/pogojump-api/pkg/helpers"
)

// DocumentRepository keeps the document as one object in a GCS bucket.
// Object writes are atomic on the GCS side: readers see the old or the new object.
type DocumentRepository struct {
	client *storage.Client
	bucket string
	object string
}

func NewDocumentRepository(client *storage.Client, bucket, object string) *DocumentRepository {
	return &DocumentRepository{client: client, bucket: bucket, object: object}
}

func (r *DocumentRepository) Read(ctx context.Context) ([]byte, error) {
	rc, err := r.client.Bucket(r.bucket).Object(r.object).NewReader(ctx)
	if errors.Is(err, storage.ErrObjectNotExist) {
		return nil, repository.ErrDocumentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("opening gs://%s/%s: %w", r.bucket, r.object, err)
	}
	defer func() { _ = rc.Close() }()
	b, err := io.ReadAll(rc)
	if err != nil {
		return nil, fmt.Errorf("reading gs://%s/%s: %w", r.bucket, r.object, err)
	}
	return b, nil
}

func (r *DocumentRepository) Write(ctx context.Context, data []byte) error {
	if _, err := helpers.UploadBytes(ctx, r.client, r.bucket, r.object, "application/json", data); err != nil {
		return fmt.Errorf("writing gs://%s/%s: %w", r.bucket, r.object, err)
	}
	return nil
}

var _ repository.DocumentRepository = (*DocumentRepository)(nil)
