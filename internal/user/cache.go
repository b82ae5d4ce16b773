package user

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/osse101/Foodgram_Go/internal/domain"
	"github.com/osse101/Foodgram_Go/internal/metrics"
)

// CacheConfig sizes the user cache
type CacheConfig struct {
	Size int
	TTL  time.Duration
}

// cachedUserEntry wraps a user with version metadata for cache invalidation
type cachedUserEntry struct {
	Version  string
	User     domain.User
	CachedAt time.Time
}

// userCache is an in-memory LRU of accounts keyed by id, with time-based
// expiration and version-based invalidation
type userCache struct {
	lru *expirable.LRU[int64, *cachedUserEntry]
}

func newUserCache(config CacheConfig) *userCache {
	if config.Size <= 0 {
		config.Size = DefaultCacheSize
	}
	if config.TTL <= 0 {
		config.TTL = DefaultCacheTTL
	}
	return &userCache{
		lru: expirable.NewLRU[int64, *cachedUserEntry](config.Size, nil, config.TTL),
	}
}

// Get returns a copy of the cached user. Entries written under another
// schema version are dropped.
func (c *userCache) Get(id int64) (*domain.User, bool) {
	entry, found := c.lru.Get(id)
	if found && entry.Version != CacheSchemaVersion {
		c.lru.Remove(id)
		found = false
	}
	if !found {
		metrics.UserCacheLookups.WithLabelValues(metrics.ResultMiss).Inc()
		return nil, false
	}

	metrics.UserCacheLookups.WithLabelValues(metrics.ResultHit).Inc()
	u := entry.User
	return &u, true
}

// Set stores a copy of u so callers cannot mutate the cached value
func (c *userCache) Set(u *domain.User) {
	c.lru.Add(u.ID, &cachedUserEntry{
		Version:  CacheSchemaVersion,
		User:     *u,
		CachedAt: time.Now(),
	})
}

func (c *userCache) Invalidate(id int64) {
	c.lru.Remove(id)
}
