// Package mtime caches file modification times for a bounded interval.
package mtime

import (
	"time"

	cache "github.com/go-pkgz/expirable-cache/v3"
	"go.trai.ch/precomp/internal/core/ports"
)

// DefaultMaxKeys bounds the number of cached entries.
const DefaultMaxKeys = 10_000

var _ ports.MtimeCache = (*Cache)(nil)

// Cache implements ports.MtimeCache. A non-positive TTL disables caching so
// every lookup stats the filesystem.
type Cache struct {
	stater ports.Stater
	ttl    time.Duration
	values cache.Cache[string, time.Time]
}

// New creates a Cache that asks stater on a miss.
func New(stater ports.Stater, ttl time.Duration) *Cache {
	c := &Cache{stater: stater, ttl: ttl}
	if ttl > 0 {
		c.values = cache.NewCache[string, time.Time]().
			WithTTL(ttl).
			WithMaxKeys(DefaultMaxKeys)
	}
	return c
}

// Mtime returns the modification time of fullPath. Failed stats are not cached.
func (c *Cache) Mtime(fullPath string) (time.Time, error) {
	if c.values != nil {
		if t, ok := c.values.Get(fullPath); ok {
			return t, nil
		}
	}

	t, err := c.stater.ModTime(fullPath)
	if err != nil {
		return time.Time{}, err
	}

	if c.values != nil {
		c.values.Set(fullPath, t, 0)
	}
	return t, nil
}

// Invalidate drops the cached value for fullPath.
func (c *Cache) Invalidate(fullPath string) {
	if c.values != nil {
		c.values.Invalidate(fullPath)
	}
}
