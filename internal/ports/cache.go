package ports

import (
	"context"
	"time"
)

// CacheRepository is the raw byte store behind the query cache. The Redis
// adapter implements it in production; tests use an in-memory double.
type CacheRepository interface {
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	// Get returns (nil, nil) when the key does not exist.
	Get(ctx context.Context, key string) ([]byte, error)
	Delete(ctx context.Context, key string) (bool, error)
	// DeletePrefix removes every key with the given prefix and returns the
	// number of keys removed.
	DeletePrefix(ctx context.Context, prefix string) (int, error)
}
