package filestore

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/pogojump/pogojump-api/internal/domain/repository"
)

// DocumentRepository keeps the document in a single JSON file on local disk.
type DocumentRepository struct {
	path string
}

func NewDocumentRepository(path string) *DocumentRepository {
	return &DocumentRepository{path: path}
}

func (r *DocumentRepository) Path() string { return r.path }

func (r *DocumentRepository) Read(_ context.Context) ([]byte, error) {
	b, err := os.ReadFile(r.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, repository.ErrDocumentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", r.path, err)
	}
	return b, nil
}

// Write goes through a temp file in the same directory and renames it over
// the target, so a crash mid-write leaves the previous document intact.
func (r *DocumentRepository) Write(_ context.Context, data []byte) error {
	dir := filepath.Dir(r.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating data directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".document-*.json")
	if err != nil {
		return fmt.Errorf("creating temp document: %w", err)
	}
	tmpPath := tmp.Name()

	success := false
	defer func() {
		if !success {
			_ = os.Remove(tmpPath)
		}
	}()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("writing temp document: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("syncing temp document: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("closing temp document: %w", err)
	}
	if err := os.Rename(tmpPath, r.path); err != nil {
		return fmt.Errorf("replacing %s: %w", r.path, err)
	}
	success = true
	return nil
}

var _ repository.DocumentRepository = (*DocumentRepository)(nil)
