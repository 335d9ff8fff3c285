package redisstore

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/pogojump/pogojump-api/internal/domain/repository"
)

// DocumentRepository keeps the document under a single Redis string key.
type DocumentRepository struct {
	rdb *redis.Client
	key string
}

func NewDocumentRepository(rdb *redis.Client, key string) *DocumentRepository {
	return &DocumentRepository{rdb: rdb, key: key}
}

func (r *DocumentRepository) Read(ctx context.Context) ([]byte, error) {
	b, err := r.rdb.Get(ctx, r.key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, repository.ErrDocumentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("redis get %s: %w", r.key, err)
	}
	return b, nil
}

// Write stores the document without expiry.
func (r *DocumentRepository) Write(ctx context.Context, data []byte) error {
	if err := r.rdb.Set(ctx, r.key, data, 0).Err(); err != nil {
		return fmt.Errorf("redis set %s: %w", r.key, err)
	}
	return nil
}

var _ repository.DocumentRepository = (*DocumentRepository)(nil)
