package cache

// Package cache is the query cache between the HTTP layer and the remote
// actor. Results are cached per caller with key-specific TTLs; identical
// in-flight fetches are coalesced with singleflight; mutations invalidate
// through the static table in keys.go. Identity logout clears the caller's
// whole scope.

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"golang.org/x/sync/singleflight"

	"github.com/keyhaven/crm-ui-api/internal/ports"
)

const keyPrefix = "q:"

// Cache is the typed query cache. Safe for concurrent use.
type Cache struct {
	repo   ports.CacheRepository
	group  singleflight.Group
	logger *slog.Logger
}

// New creates a Cache backed by the given repository.
func New(repo ports.CacheRepository, logger *slog.Logger) *Cache {
	if logger == nil {
		logger = slog.Default()
	}
	return &Cache{repo: repo, logger: logger}
}

// storageKey builds the repository key for a caller-scoped query.
func storageKey(caller string, key Key) string {
	return keyPrefix + caller + ":" + string(key)
}

// scopePrefix is the repository key prefix covering every query of a caller.
func scopePrefix(caller string) string {
	return keyPrefix + caller + ":"
}

// GetOrFetch returns the cached bytes for the caller's query, fetching and
// storing them on a miss. Concurrent calls for the same caller and key share
// one fetch. Cache read/write failures degrade to a direct fetch; only the
// fetch error itself fails the caller.
func (c *Cache) GetOrFetch(
	ctx context.Context,
	caller string,
	key Key,
	fetch func(ctx context.Context) (any, error),
) ([]byte, error) {
	sk := storageKey(caller, key)

	if data, err := c.repo.Get(ctx, sk); err != nil {
		c.logger.WarnContext(ctx, "cache read failed", "key", key, "error", err)
	} else if data != nil {
		return data, nil
	}

	v, err, _ := c.group.Do(sk, func() (any, error) {
		// Re-check under the flight lock: a concurrent fetch may have
		// populated the entry while this call waited.
		if data, getErr := c.repo.Get(ctx, sk); getErr == nil && data != nil {
			return data, nil
		}

		result, fetchErr := fetch(ctx)
		if fetchErr != nil {
			return nil, fetchErr
		}
		data, marshalErr := json.Marshal(result)
		if marshalErr != nil {
			return nil, fmt.Errorf("marshal cached query %s: %w", key, marshalErr)
		}
		if setErr := c.repo.Set(ctx, sk, data, key.TTL()); setErr != nil {
			c.logger.WarnContext(ctx, "cache write failed", "key", key, "error", setErr)
		}
		return data, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]byte), nil
}

// Invalidate removes the given query keys for the caller.
func (c *Cache) Invalidate(ctx context.Context, caller string, keys ...Key) error {
	for _, key := range keys {
		if _, err := c.repo.Delete(ctx, storageKey(caller, key)); err != nil {
			return fmt.Errorf("invalidate %s: %w", key, err)
		}
	}
	return nil
}

// InvalidateFor removes every key the mutation makes stale, per the static
// dependency table.
func (c *Cache) InvalidateFor(ctx context.Context, caller string, m Mutation) error {
	return c.Invalidate(ctx, caller, InvalidatedBy(m)...)
}

// Clear removes every cached query for the caller. Used on identity logout.
func (c *Cache) Clear(ctx context.Context, caller string) error {
	n, err := c.repo.DeletePrefix(ctx, scopePrefix(caller))
	if err != nil {
		return fmt.Errorf("clear cache scope: %w", err)
	}
	c.logger.DebugContext(ctx, "cleared query cache", "caller", caller, "entries", n)
	return nil
}

// FetchAs fetches a query through the cache and unmarshals it into T.
func FetchAs[T any](
	ctx context.Context,
	c *Cache,
	caller string,
	key Key,
	fetch func(ctx context.Context) (any, error),
) (T, error) {
	var out T
	data, err := c.GetOrFetch(ctx, caller, key, fetch)
	if err != nil {
		return out, err
	}
	if err := json.Unmarshal(data, &out); err != nil {
		return out, fmt.Errorf("unmarshal cached query %s: %w", key, err)
	}
	return out, nil
}
