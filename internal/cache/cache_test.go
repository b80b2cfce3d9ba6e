package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSetGetRoundTrip(t *testing.T) {
	c := New(true)
	etag := c.Set("teams:2021", []byte(`[{"name":"Arsenal"}]`), time.Minute)

	data, gotETag, ok := c.Get("teams:2021")
	assert.True(t, ok)
	assert.Equal(t, etag, gotETag)
	assert.JSONEq(t, `[{"name":"Arsenal"}]`, string(data))
}

func TestExpiredEntryIsMiss(t *testing.T) {
	c := New(true)
	c.Set("k", []byte("v"), -time.Second)

	_, _, ok := c.Get("k")
	assert.False(t, ok)
}

func TestDisabledCacheIsNoOp(t *testing.T) {
	c := New(false)
	etag := c.Set("k", []byte("v"), time.Minute)
	assert.NotEmpty(t, etag) // still computes ETags for response headers

	_, _, ok := c.Get("k")
	assert.False(t, ok)
}

func TestETagStableForSameBytes(t *testing.T) {
	assert.Equal(t, ComputeETag([]byte("abc")), ComputeETag([]byte("abc")))
	assert.NotEqual(t, ComputeETag([]byte("abc")), ComputeETag([]byte("abd")))
}

func TestCheckETagMatch(t *testing.T) {
	etag := ComputeETag([]byte("abc"))
	assert.True(t, CheckETagMatch(etag, etag))
	assert.True(t, CheckETagMatch("*", etag))
	assert.False(t, CheckETagMatch("", etag))
	assert.False(t, CheckETagMatch(`W/"deadbeef"`, etag))
}
