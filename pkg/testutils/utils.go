package testutils

import (
	"math/rand"

	"github.com/embedviz/embedviz/config"
)

const charset = "abcdefghijklmnopqrstuvwxyz" +
	"ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// GenerateRandomString returns a random alphanumeric string of the given
// length. Not cryptographically secure; test fixtures only.
func GenerateRandomString(length int) string {
	b := make([]byte, length)
	for i := range b {
		b[i] = charset[rand.Intn(len(charset))]
	}
	return string(b)
}

// NewTestConfig returns a config suitable for tests: auth enabled with a
// fixed secret, cache and rate limiting disabled, analytics off.
func NewTestConfig() *config.Config {
	return &config.Config{
		Server: config.ServerConfig{
			Port:      8000,
			APIPrefix: "/api",
		},
		Log: config.LogConfig{Level: "warn"},
		Auth: config.AuthConfig{
			Secret:   "test-secret",
			Required: true,
		},
		Cache: config.CacheConfig{
			Host:       "localhost",
			Port:       6379,
			TTLSeconds: 3600,
		},
		RateLimit: config.RateLimitConfig{
			RequestsPerMinute: 5,
		},
		Embeddings: config.EmbeddingsConfig{
			Service:      "openai",
			Model:        "text-embedding-3-small",
			Dimensions:   1536,
			OpenAIAPIKey: "test-key",
		},
	}
}
