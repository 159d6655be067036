package testutil

// Package testutil provides shared test doubles and helpers.

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"sync"
	"time"
)

// Logger returns a logger that discards output, for quiet tests.
func Logger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// MemoryCacheRepo is an in-memory ports.CacheRepository that records
// deletions so tests can assert exact invalidation sets. TTLs are honored
// on read.
type MemoryCacheRepo struct {
	mu        sync.Mutex
	entries   map[string]memoryEntry
	deletions []string

	// GetErr and SetErr, when set, are returned by the corresponding
	// operations to simulate a degraded cache backend.
	GetErr error
	SetErr error
}

type memoryEntry struct {
	data      []byte
	expiresAt time.Time
}

// NewMemoryCacheRepo creates an empty MemoryCacheRepo.
func NewMemoryCacheRepo() *MemoryCacheRepo {
	return &MemoryCacheRepo{entries: make(map[string]memoryEntry)}
}

func (r *MemoryCacheRepo) Set(_ context.Context, key string, value []byte, ttl time.Duration) error {
	if r.SetErr != nil {
		return r.SetErr
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	expires := time.Time{}
	if ttl > 0 {
		expires = time.Now().Add(ttl)
	}
	data := make([]byte, len(value))
	copy(data, value)
	r.entries[key] = memoryEntry{data: data, expiresAt: expires}
	return nil
}

func (r *MemoryCacheRepo) Get(_ context.Context, key string) ([]byte, error) {
	if r.GetErr != nil {
		return nil, r.GetErr
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	entry, ok := r.entries[key]
	if !ok {
		return nil, nil
	}
	if !entry.expiresAt.IsZero() && time.Now().After(entry.expiresAt) {
		delete(r.entries, key)
		return nil, nil
	}
	return entry.data, nil
}

func (r *MemoryCacheRepo) Delete(_ context.Context, key string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, existed := r.entries[key]
	delete(r.entries, key)
	r.deletions = append(r.deletions, key)
	return existed, nil
}

func (r *MemoryCacheRepo) DeletePrefix(_ context.Context, prefix string) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for key := range r.entries {
		if strings.HasPrefix(key, prefix) {
			delete(r.entries, key)
			n++
		}
	}
	return n, nil
}

// Has reports whether a live entry exists for the key.
func (r *MemoryCacheRepo) Has(key string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	entry, ok := r.entries[key]
	if !ok {
		return false
	}
	return entry.expiresAt.IsZero() || time.Now().Before(entry.expiresAt)
}

// Deletions returns every key passed to Delete since the last reset.
func (r *MemoryCacheRepo) Deletions() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, len(r.deletions))
	copy(out, r.deletions)
	return out
}

// ResetDeletions clears the deletion record.
func (r *MemoryCacheRepo) ResetDeletions() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.deletions = nil
}
