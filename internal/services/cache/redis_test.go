package cache

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRedisCache_KeyPrefix(t *testing.T) {
	c := newRedisCache(redis.NewClient(&redis.Options{Addr: "127.0.0.1:0"}), "rofind:", 0)
	defer c.Close()

	assert.Equal(t, "rofind:http:/api/v1/facets", c.key("http:/api/v1/facets"))
	assert.Equal(t, DefaultTTL, c.defaultTTL)
}

func TestRedisCache_UnreachableReadsAsMiss(t *testing.T) {
	client := redis.NewClient(&redis.Options{Addr: "127.0.0.1:1", DialTimeout: 50 * time.Millisecond, MaxRetries: -1})
	c := newRedisCache(client, "rofind:", time.Minute)
	defer c.Close()

	_, ok := c.Get(context.Background(), "anything")
	assert.False(t, ok)
	assert.Error(t, c.Set(context.Background(), "anything", []byte("v"), 0))
}

func TestNewRedisCache_FailsWithoutServer(t *testing.T) {
	_, err := NewRedisCache(RedisConfig{Address: "127.0.0.1:1"}, "rofind:", time.Minute)
	assert.Error(t, err)
}

// Runs against a real server when ROFIND_TEST_REDIS_ADDR is set
func TestRedisCache_Integration(t *testing.T) {
	addr := os.Getenv("ROFIND_TEST_REDIS_ADDR")
	if addr == "" {
		t.Skip("ROFIND_TEST_REDIS_ADDR not set")
	}

	ctx := context.Background()
	c, err := NewRedisCache(RedisConfig{Address: addr}, "rofind-test:", time.Minute)
	require.NoError(t, err)
	defer c.Close()

	require.NoError(t, c.Clear(ctx))
	require.NoError(t, c.Set(ctx, "k", []byte("v"), time.Minute))

	value, ok := c.Get(ctx, "k")
	assert.True(t, ok)
	assert.Equal(t, "v", string(value))

	require.NoError(t, c.Delete(ctx, "k"))
	_, ok = c.Get(ctx, "k")
	assert.False(t, ok)
}
