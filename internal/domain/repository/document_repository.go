package repository

import (
	"context"
	"errors"
)

// ErrDocumentNotFound is returned by Read when nothing has been persisted yet.
var ErrDocumentNotFound = errors.New("document not found")

// DocumentRepository stores the raw bytes of the single persisted document.
// Write replaces the previous content as a whole; readers never see a partial write.
type DocumentRepository interface {
	Read(ctx context.Context) ([]byte, error)
	Write(ctx context.Context, data []byte) error
}
