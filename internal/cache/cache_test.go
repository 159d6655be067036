package cache

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/keyhaven/crm-ui-api/internal/testutil"
)

const testCaller = "principal-1"

func newTestCache(t *testing.T) (*testutil.MemoryCacheRepo, *Cache) {
	t.Helper()
	repo := testutil.NewMemoryCacheRepo()
	return repo, New(repo, testutil.Logger())
}

func TestGetOrFetch_CachesResult(t *testing.T) {
	t.Parallel()
	_, c := newTestCache(t)
	ctx := context.Background()

	var calls atomic.Int32
	fetch := func(ctx context.Context) (any, error) {
		calls.Add(1)
		return map[string]string{"name": "Asha"}, nil
	}

	first, err := c.GetOrFetch(ctx, testCaller, KeyCurrentUserProfile, fetch)
	require.NoError(t, err)
	second, err := c.GetOrFetch(ctx, testCaller, KeyCurrentUserProfile, fetch)
	require.NoError(t, err)

	assert.JSONEq(t, string(first), string(second))
	assert.Equal(t, int32(1), calls.Load(), "second call must hit the cache")
}

func TestGetOrFetch_FetchErrorPropagates(t *testing.T) {
	t.Parallel()
	_, c := newTestCache(t)

	fetchErr := errors.New("actor not available")
	_, err := c.GetOrFetch(context.Background(), testCaller, KeyIsAdmin, func(ctx context.Context) (any, error) {
		return nil, fetchErr
	})
	require.ErrorIs(t, err, fetchErr)
}

func TestGetOrFetch_ScopedByCaller(t *testing.T) {
	t.Parallel()
	_, c := newTestCache(t)
	ctx := context.Background()

	var calls atomic.Int32
	fetch := func(ctx context.Context) (any, error) {
		calls.Add(1)
		return true, nil
	}

	_, err := c.GetOrFetch(ctx, "alice", KeyIsAdmin, fetch)
	require.NoError(t, err)
	_, err = c.GetOrFetch(ctx, "bob", KeyIsAdmin, fetch)
	require.NoError(t, err)

	assert.Equal(t, int32(2), calls.Load(), "callers must not share entries")
}

func TestGetOrFetch_CoalescesConcurrentFetches(t *testing.T) {
	t.Parallel()
	_, c := newTestCache(t)

	var calls atomic.Int32
	release := make(chan struct{})
	fetch := func(ctx context.Context) (any, error) {
		calls.Add(1)
		<-release
		return "data", nil
	}

	const workers = 8
	var wg sync.WaitGroup
	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := c.GetOrFetch(context.Background(), testCaller, KeyAllCustomers, fetch)
			assert.NoError(t, err)
		}()
	}
	close(release)
	wg.Wait()

	// Workers that entered before the first fetch stored its result share
	// that flight; stragglers hit the cache.
	assert.Equal(t, int32(1), calls.Load())
}

func TestInvalidate_RemovesOnlyNamedKeys(t *testing.T) {
	t.Parallel()
	repo, c := newTestCache(t)
	ctx := context.Background()

	seed := func(key Key) {
		_, err := c.GetOrFetch(ctx, testCaller, key, func(ctx context.Context) (any, error) { return "x", nil })
		require.NoError(t, err)
	}
	seed(KeyCurrentUserProfile)
	seed(KeyIsAdmin)
	seed(KeyAllCustomers)
	repo.ResetDeletions()

	require.NoError(t, c.Invalidate(ctx, testCaller, KeyCurrentUserProfile, KeyIsAdmin))

	assert.ElementsMatch(t, []string{
		"q:principal-1:currentUserProfile",
		"q:principal-1:isAdmin",
	}, repo.Deletions())
	assert.True(t, repo.Has("q:principal-1:allCustomers"), "unrelated key must survive")
}

func TestInvalidateFor_UsesStaticTable(t *testing.T) {
	t.Parallel()
	repo, c := newTestCache(t)
	ctx := context.Background()

	require.NoError(t, c.InvalidateFor(ctx, testCaller, MutationApproveAgent))

	assert.ElementsMatch(t, []string{
		"q:principal-1:allAgentProfiles",
		"q:principal-1:pendingAgents",
		"q:principal-1:approvedAgents",
		"q:principal-1:agentLoginTimes",
	}, repo.Deletions())
}

func TestClear_RemovesWholeScope(t *testing.T) {
	t.Parallel()
	repo, c := newTestCache(t)
	ctx := context.Background()

	for _, key := range []Key{KeyCurrentUserProfile, KeyIsAdmin, KeyAllLeads} {
		_, err := c.GetOrFetch(ctx, testCaller, key, func(ctx context.Context) (any, error) { return "x", nil })
		require.NoError(t, err)
	}
	_, err := c.GetOrFetch(ctx, "other", KeyIsAdmin, func(ctx context.Context) (any, error) { return "x", nil })
	require.NoError(t, err)

	require.NoError(t, c.Clear(ctx, testCaller))

	assert.False(t, repo.Has("q:principal-1:currentUserProfile"))
	assert.False(t, repo.Has("q:principal-1:isAdmin"))
	assert.False(t, repo.Has("q:principal-1:allLeads"))
	assert.True(t, repo.Has("q:other:isAdmin"), "other caller's scope must survive")
}

func TestFetchAs_Roundtrip(t *testing.T) {
	t.Parallel()
	_, c := newTestCache(t)

	type profile struct {
		Name string `json:"name"`
	}
	got, err := FetchAs[profile](context.Background(), c, testCaller, KeyCurrentUserProfile,
		func(ctx context.Context) (any, error) { return profile{Name: "Asha"}, nil })
	require.NoError(t, err)
	assert.Equal(t, "Asha", got.Name)
}
