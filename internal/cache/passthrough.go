package cache

import (
	"context"
	"time"

	"github.com/keyhaven/crm-ui-api/internal/ports"
)

// PassthroughRepo is a CacheRepository that stores nothing. Every lookup
// misses, so queries always go to the actor. Used when Redis is unavailable;
// singleflight coalescing still applies.
type PassthroughRepo struct{}

var _ ports.CacheRepository = PassthroughRepo{}

func (PassthroughRepo) Set(context.Context, string, []byte, time.Duration) error {
	return nil
}

func (PassthroughRepo) Get(context.Context, string) ([]byte, error) {
	return nil, nil
}

func (PassthroughRepo) Delete(context.Context, string) (bool, error) {
	return false, nil
}

func (PassthroughRepo) DeletePrefix(context.Context, string) (int, error) {
	return 0, nil
}
