package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/embedviz/embedviz/config"
	"github.com/embedviz/embedviz/pkg/models"
)

const rateLimitWindow = 60 * time.Second

var _ models.CacheStore = &RedisStore{}

// RedisStore caches embeddings and tracks per-user request rates in redis.
// All operations fail open: a redis outage degrades to recomputing
// embeddings and admitting requests, never to failing them.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
	limit  int64
}

func NewRedisStore(cfg *config.Config) *RedisStore {
	client := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", cfg.Cache.Host, cfg.Cache.Port),
		Password: cfg.Cache.Password,
		DB:       cfg.Cache.DB,
	})

	return &RedisStore{
		client: client,
		ttl:    time.Duration(cfg.Cache.TTLSeconds) * time.Second,
		limit:  int64(cfg.RateLimit.RequestsPerMinute),
	}
}

func embeddingKey(text string) string {
	return "embedding:" + text
}

func rateLimitKey(userID, endpoint string) string {
	return fmt.Sprintf("rate_limit:%s:%s", userID, endpoint)
}

// GetEmbeddings returns the cached vectors for texts, keyed by text. Texts
// with no cached vector are absent from the result.
func (s *RedisStore) GetEmbeddings(
	ctx context.Context,
	texts []string,
) map[string][]float32 {
	embeddings := make(map[string][]float32, len(texts))
	if len(texts) == 0 {
		return embeddings
	}

	keys := make([]string, len(texts))
	for i, text := range texts {
		keys[i] = embeddingKey(text)
	}

	values, err := s.client.MGet(ctx, keys...).Result()
	if err != nil {
		log.Warnf("cache read failed: %v", err)
		return embeddings
	}

	for i, value := range values {
		raw, ok := value.(string)
		if !ok {
			continue
		}
		var embedding []float32
		if err := json.Unmarshal([]byte(raw), &embedding); err != nil {
			log.Warnf("discarding malformed cache entry for %q: %v", keys[i], err)
			continue
		}
		embeddings[texts[i]] = embedding
	}

	return embeddings
}

// PutEmbeddings writes the given vectors to the cache with the configured
// TTL. Returns false if any write failed.
func (s *RedisStore) PutEmbeddings(
	ctx context.Context,
	embeddings map[string][]float32,
) bool {
	if len(embeddings) == 0 {
		return true
	}

	pipe := s.client.Pipeline()
	for text, embedding := range embeddings {
		data, err := json.Marshal(embedding)
		if err != nil {
			log.Warnf("failed to marshal embedding for cache: %v", err)
			return false
		}
		pipe.Set(ctx, embeddingKey(text), data, s.ttl)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		log.Warnf("cache write failed: %v", err)
		return false
	}

	return true
}

// CheckAndIncrementRate increments the caller's request count for the
// endpoint and reports whether the request is within the per-minute limit.
// The first request in a window sets the 60s expiry.
func (s *RedisStore) CheckAndIncrementRate(
	ctx context.Context,
	userID string,
	endpoint string,
) (bool, int64) {
	key := rateLimitKey(userID, endpoint)

	count, err := s.client.Incr(ctx, key).Result()
	if err != nil {
		log.Warnf("rate limit check failed, allowing request: %v", err)
		return true, 0
	}

	if count == 1 {
		if err := s.client.Expire(ctx, key, rateLimitWindow).Err(); err != nil {
			log.Warnf("failed to set rate limit window on %q: %v", key, err)
		}
	}

	return count <= s.limit, count
}

func (s *RedisStore) Close() error {
	return s.client.Close()
}
