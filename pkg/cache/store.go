package cache

import (
	"github.com/embedviz/embedviz/config"
	"github.com/embedviz/embedviz/internal"
	"github.com/embedviz/embedviz/pkg/models"
)

var log = internal.GetLogger()

// NewStore returns the cache store configured for the app. When caching is
// disabled, a no-op store is returned and every request recomputes
// embeddings.
func NewStore(cfg *config.Config) models.CacheStore {
	if !cfg.Cache.Enabled {
		log.Info("cache disabled")
		return &NoopStore{}
	}
	return NewRedisStore(cfg)
}
