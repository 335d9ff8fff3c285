package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/pogojump/pogojump-api/internal/domain/repository"
)

// DocumentRepository keeps the document as one jsonb row of the documents table.
type DocumentRepository struct {
	pool *pgxpool.Pool
	name string
}

func NewDocumentRepository(pool *pgxpool.Pool, name string) *DocumentRepository {
	return &DocumentRepository{pool: pool, name: name}
}

func (r *DocumentRepository) Read(ctx context.Context) ([]byte, error) {
	var body []byte
	err := r.pool.QueryRow(ctx, `
		SELECT body
		FROM documents
		WHERE name = $1
	`, r.name).Scan(&body)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, repository.ErrDocumentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("select document %q: %w", r.name, err)
	}
	return body, nil
}

func (r *DocumentRepository) Write(ctx context.Context, data []byte) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO documents (name, body, updated_at)
		VALUES ($1, $2, now())
		ON CONFLICT (name) DO UPDATE SET body = EXCLUDED.body, updated_at = EXCLUDED.updated_at
	`, r.name, data)
	if err != nil {
		return fmt.Errorf("upsert document %q: %w", r.name, err)
	}
	return nil
}

var _ repository.DocumentRepository = (*DocumentRepository)(nil)
