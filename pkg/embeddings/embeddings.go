package embeddings

import (
	"fmt"

	"github.com/embedviz/embedviz/config"
	"github.com/embedviz/embedviz/pkg/models"
)

// NewClient returns the embeddings client configured for the service named
// in cfg.Embeddings.Service.
func NewClient(cfg *config.Config) (models.EmbeddingsClient, error) {
	switch cfg.Embeddings.Service {
	case "openai":
		return NewOpenAIClient(cfg)
	default:
		return nil, fmt.Errorf("unknown embeddings service %q", cfg.Embeddings.Service)
	}
}
