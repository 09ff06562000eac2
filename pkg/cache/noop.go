package cache

import (
	"context"

	"github.com/embedviz/embedviz/pkg/models"
)

var _ models.CacheStore = &NoopStore{}

// NoopStore caches nothing and never rate limits. Used when caching is
// disabled.
type NoopStore struct{}

func (s *NoopStore) GetEmbeddings(_ context.Context, _ []string) map[string][]float32 {
	return map[string][]float32{}
}

func (s *NoopStore) PutEmbeddings(_ context.Context, _ map[string][]float32) bool {
	return true
}

func (s *NoopStore) CheckAndIncrementRate(_ context.Context, _, _ string) (bool, int64) {
	return true, 0
}

func (s *NoopStore) Close() error {
	return nil
}
