package helpers

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// NewRedisClient initializes a redis client
func NewRedisClient(addr, password string, db int) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
}

// PingRedis fails fast when the server is unreachable at startup.
func PingRedis(ctx context.Context, rdb *redis.Client) error {
	c, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	return rdb.Ping(c).Err()
}
