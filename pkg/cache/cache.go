// Package cache stores build artifacts keyed by the content that produced
// them.
//
// The CLI caches rendered figures and scene descriptions so that running
// the same figure file against unchanged inputs is instant. Keys are
// derived from content hashes (see [FigureKey]), never from file names or
// modification times.
package cache

import (
	"context"
	"strings"
	"time"

	"github.com/surfplot/surfplot/pkg/observability"
)

// Cache is a byte store with optional expiry.
type Cache interface {
	// Get returns the value for key. A miss is (nil, false, nil).
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores data under key. A ttl of zero never expires.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases resources held by the cache.
	Close() error
}

// keyType returns the prefix of a "type:hash" key, for hooks.
func keyType(key string) string {
	if i := strings.IndexByte(key, ':'); i > 0 {
		return key[:i]
	}
	return "unknown"
}

// observed reports cache traffic to the registered cache hooks.
type observed struct{ Cache }

// Observe wraps c so that hits, misses and writes reach
// [observability.Cache].
func Observe(c Cache) Cache { return observed{c} }

func (o observed) Get(ctx context.Context, key string) ([]byte, bool, error) {
	data, ok, err := o.Cache.Get(ctx, key)
	if err == nil {
		if ok {
			observability.Cache().OnCacheHit(ctx, keyType(key))
		} else {
			observability.Cache().OnCacheMiss(ctx, keyType(key))
		}
	}
	return data, ok, err
}

func (o observed) Set(ctx context.Context, key string, data []byte, ttl time.Duration) error {
	if err := o.Cache.Set(ctx, key, data, ttl); err != nil {
		return err
	}
	observability.Cache().OnCacheSet(ctx, keyType(key), len(data))
	return nil
}
