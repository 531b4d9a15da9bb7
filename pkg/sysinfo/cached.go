package sysinfo

import (
	"context"
	"time"

	"gitlab.com/tinyland/lab/ttyfolio/pkg/cache"
)

// CacheKey is the cache entry holding the last collected facts.
const CacheKey = "sysinfo/facts"

// CacheTTL bounds how stale remembered facts may be.
const CacheTTL = 24 * time.Hour

// Last returns the facts remembered in c, if any.
func Last(c *cache.Store) (*Facts, bool) {
	if c == nil {
		return nil, false
	}
	f, ok := cache.GetTyped[Facts](c, CacheKey)
	if !ok {
		return nil, false
	}
	return &f, true
}

// Remembering wraps collect so that every successful collection is
// written to c. Cache write failures do not fail the collection.
func Remembering(c *cache.Store, collect func(context.Context) (*Facts, error)) func(context.Context) (*Facts, error) {
	if c == nil {
		return collect
	}
	return func(ctx context.Context) (*Facts, error) {
		f, err := collect(ctx)
		if err == nil && f != nil {
			_ = cache.PutTypedWithTTL(c, CacheKey, *f, CacheTTL)
		}
		return f, err
	}
}
