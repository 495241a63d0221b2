package cache_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/albapepper/moneyball/internal/cache"
)

func TestSetGet(t *testing.T) {
	c := cache.New(true)

	etag := c.Set("k", []byte(`{"a":1}`), time.Minute)
	require.NotEmpty(t, etag)

	data, got, ok := c.Get("k")
	require.True(t, ok)
	assert.Equal(t, []byte(`{"a":1}`), data)
	assert.Equal(t, etag, got)
}

func TestGetMissing(t *testing.T) {
	c := cache.New(true)
	_, _, ok := c.Get("nope")
	assert.False(t, ok)
}

func TestExpiry(t *testing.T) {
	c := cache.New(true)
	c.Set("k", []byte("v"), -time.Second)

	_, _, ok := c.Get("k")
	assert.False(t, ok)
}

func TestDisabledCacheNeverStores(t *testing.T) {
	c := cache.New(false)

	etag := c.Set("k", []byte("v"), time.Minute)
	// Still produces an ETag so handlers can revalidate pass-through responses.
	assert.NotEmpty(t, etag)

	_, _, ok := c.Get("k")
	assert.False(t, ok)
}

func TestETagStability(t *testing.T) {
	a := cache.ComputeETag([]byte("same"))
	b := cache.ComputeETag([]byte("same"))
	other := cache.ComputeETag([]byte("different"))

	assert.Equal(t, a, b)
	assert.NotEqual(t, a, other)
	assert.Contains(t, a, `W/"`)
}

func TestCheckETagMatch(t *testing.T) {
	etag := cache.ComputeETag([]byte("body"))

	assert.True(t, cache.CheckETagMatch(etag, etag))
	assert.True(t, cache.CheckETagMatch("*", etag))
	assert.False(t, cache.CheckETagMatch("", etag))
	assert.False(t, cache.CheckETagMatch(`W/"other"`, etag))
}

func TestStats(t *testing.T) {
	c := cache.New(true)
	c.Set("live", []byte("v"), time.Minute)
	c.Set("dead", []byte("v"), -time.Second)

	stats := c.Stats()
	assert.Equal(t, true, stats["enabled"])
	assert.Equal(t, 2, stats["total_keys"])
	assert.Equal(t, 1, stats["active_keys"])
	assert.Equal(t, 1, stats["expired_keys"])
}
