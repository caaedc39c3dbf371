package blobstore

import (
	"context"
	"errors"

	"golang.org/x/sync/errgroup"
)

// prefetchConcurrency bounds parallel backend fetches to avoid FD exhaustion
// or rate limits.
const prefetchConcurrency = 16

// CachingStore wraps a (typically remote) backend Store with a faster local
// cache. Reads are served from the cache when possible and populate it on
// miss; writes go through to both.
//
// The cache is best-effort: cache failures never fail the operation as long
// as the backend succeeds.
type CachingStore struct {
	backend Store
	cache   Store
}

// NewCachingStore creates a CachingStore over backend, caching blobs in
// cache.
func NewCachingStore(backend, cache Store) *CachingStore {
	return &CachingStore{
		backend: backend,
		cache:   cache,
	}
}

// Put stores the blob in the backend and refreshes the cache.
func (c *CachingStore) Put(ctx context.Context, name string, data []byte) error {
	if err := c.backend.Put(ctx, name, data); err != nil {
		return err
	}
	_ = c.cache.Put(ctx, name, data)
	return nil
}

// Get returns the blob from the cache, falling back to the backend on miss.
func (c *CachingStore) Get(ctx context.Context, name string) ([]byte, error) {
	if data, err := c.cache.Get(ctx, name); err == nil {
		return data, nil
	}

	data, err := c.backend.Get(ctx, name)
	if err != nil {
		return nil, err
	}

	_ = c.cache.Put(ctx, name, data)
	return data, nil
}

// Delete removes the blob from both backend and cache.
func (c *CachingStore) Delete(ctx context.Context, name string) error {
	if err := c.backend.Delete(ctx, name); err != nil {
		return err
	}
	return c.cache.Delete(ctx, name)
}

// List lists blobs in the backend.
func (c *CachingStore) List(ctx context.Context, prefix string) ([]string, error) {
	return c.backend.List(ctx, prefix)
}

// Prefetch warms the cache for the given blobs in parallel. Blobs missing
// from the backend are skipped.
func (c *CachingStore) Prefetch(ctx context.Context, names ...string) error {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(prefetchConcurrency)

	for _, name := range names {
		g.Go(func() error {
			if _, err := c.cache.Get(ctx, name); err == nil {
				return nil
			}

			data, err := c.backend.Get(ctx, name)
			if errors.Is(err, ErrNotFound) {
				return nil
			}
			if err != nil {
				return err
			}

			return c.cache.Put(ctx, name, data)
		})
	}

	return g.Wait()
}
