package repository

import (
	"context"
	"time"
)

// CacheRepository stores rendered response bytes with a TTL. A miss is
// (nil, nil), not an error.
type CacheRepository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}
