package user

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/Foodgram_Go/internal/domain"
	"github.com/osse101/Foodgram_Go/internal/metrics"
)

func TestUserCache_GetSet(t *testing.T) {
	c := newUserCache(CacheConfig{Size: 10, TTL: time.Minute})
	hits := testutil.ToFloat64(metrics.UserCacheLookups.WithLabelValues(metrics.ResultHit))
	misses := testutil.ToFloat64(metrics.UserCacheLookups.WithLabelValues(metrics.ResultMiss))

	_, ok := c.Get(1)
	assert.False(t, ok)

	c.Set(&domain.User{ID: 1, Username: "alice"})
	got, ok := c.Get(1)
	require.True(t, ok)
	assert.Equal(t, "alice", got.Username)

	assert.Equal(t, hits+1, testutil.ToFloat64(metrics.UserCacheLookups.WithLabelValues(metrics.ResultHit)))
	assert.Equal(t, misses+1, testutil.ToFloat64(metrics.UserCacheLookups.WithLabelValues(metrics.ResultMiss)))
	assert.Equal(t, 1, c.lru.Len())
}

func TestUserCache_ReturnsCopies(t *testing.T) {
	c := newUserCache(CacheConfig{Size: 10, TTL: time.Minute})
	u := &domain.User{ID: 1, Username: "alice"}
	c.Set(u)
	u.Username = "mallory"

	got, ok := c.Get(1)
	require.True(t, ok)
	got.Username = "eve"

	again, _ := c.Get(1)
	assert.Equal(t, "alice", again.Username)
}

func TestUserCache_Invalidate(t *testing.T) {
	c := newUserCache(CacheConfig{Size: 10, TTL: time.Minute})
	c.Set(&domain.User{ID: 1})
	c.Set(&domain.User{ID: 2})

	c.Invalidate(1)
	_, ok := c.Get(1)
	assert.False(t, ok)
	_, ok = c.Get(2)
	assert.True(t, ok)
	assert.Equal(t, 1, c.lru.Len())
}

func TestUserCache_StaleVersionIsDropped(t *testing.T) {
	c := newUserCache(CacheConfig{Size: 10, TTL: time.Minute})
	c.lru.Add(1, &cachedUserEntry{Version: "0.9", User: domain.User{ID: 1}})

	_, ok := c.Get(1)
	assert.False(t, ok)
	assert.Equal(t, 0, c.lru.Len())
}

func TestUserCache_Expiry(t *testing.T) {
	c := newUserCache(CacheConfig{Size: 10, TTL: 20 * time.Millisecond})
	c.Set(&domain.User{ID: 1})

	assert.Eventually(t, func() bool {
		_, ok := c.Get(1)
		return !ok
	}, time.Second, 10*time.Millisecond)
}

func TestUserCache_Defaults(t *testing.T) {
	c := newUserCache(CacheConfig{})
	for i := int64(1); i <= DefaultCacheSize+5; i++ {
		c.Set(&domain.User{ID: i})
	}
	assert.Equal(t, DefaultCacheSize, c.lru.Len())
}
