package cache

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/embedviz/embedviz/config"
)

func TestNewStore(t *testing.T) {
	t.Run("disabled returns noop store", func(t *testing.T) {
		cfg := &config.Config{}
		store := NewStore(cfg)
		assert.IsType(t, &NoopStore{}, store)
	})

	t.Run("enabled returns redis store", func(t *testing.T) {
		cfg := &config.Config{
			Cache: config.CacheConfig{
				Enabled: true,
				Host:    "localhost",
				Port:    6379,
			},
		}
		store := NewStore(cfg)
		assert.IsType(t, &RedisStore{}, store)
		require.NoError(t, store.Close())
	})
}

func TestNoopStore(t *testing.T) {
	ctx := context.Background()
	store := &NoopStore{}

	embeddings := store.GetEmbeddings(ctx, []string{"a", "b"})
	assert.Empty(t, embeddings)

	assert.True(t, store.PutEmbeddings(ctx, map[string][]float32{"a": {1, 2}}))

	allowed, count := store.CheckAndIncrementRate(ctx, "user", "/api/visualize")
	assert.True(t, allowed)
	assert.Equal(t, int64(0), count)

	assert.NoError(t, store.Close())
}

func TestKeyFormats(t *testing.T) {
	assert.Equal(t, "embedding:hello world", embeddingKey("hello world"))
	assert.Equal(
		t,
		"rate_limit:user-123:/api/visualize",
		rateLimitKey("user-123", "/api/visualize"),
	)
}

// Redis operations must degrade gracefully when the server is unreachable.
func TestRedisStore_FailOpen(t *testing.T) {
	cfg := &config.Config{
		Cache: config.CacheConfig{
			Enabled:    true,
			Host:       "localhost",
			Port:       16379, // nothing listens here
			TTLSeconds: 3600,
		},
		RateLimit: config.RateLimitConfig{RequestsPerMinute: 5},
	}
	store := NewRedisStore(cfg)
	defer store.Close()

	ctx := context.Background()

	embeddings := store.GetEmbeddings(ctx, []string{"a"})
	assert.Empty(t, embeddings)

	assert.False(t, store.PutEmbeddings(ctx, map[string][]float32{"a": {1}}))

	allowed, count := store.CheckAndIncrementRate(ctx, "user", "/api/visualize")
	assert.True(t, allowed)
	assert.Equal(t, int64(0), count)
}
