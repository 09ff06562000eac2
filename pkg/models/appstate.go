package models

import (
	"github.com/embedviz/embedviz/config"
)

// AppState is a struct that holds the state of the application.
// Use cmd.NewAppState to create a new instance. All fields are initialized
// once at startup and read-only afterwards; request handlers share them
// across concurrent requests.
type AppState struct {
	Config     *config.Config
	Cache      CacheStore
	Embedder   EmbeddingsClient
	Visualizer Visualizer
	Analytics  AnalyticsService
}
