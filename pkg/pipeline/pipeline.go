package pipeline

import (
	"context"
	"fmt"

	"github.com/embedviz/embedviz/internal"
	"github.com/embedviz/embedviz/pkg/models"
)

var log = internal.GetLogger()

var _ models.Visualizer = &Pipeline{}

// Pipeline orchestrates a visualization request: resolve embeddings through
// the cache, generate the missing ones, project the full set, and assemble
// per-text results in request order.
type Pipeline struct {
	cache    models.CacheStore
	embedder models.EmbeddingsClient
	engine   models.Projector
}

func NewPipeline(
	cache models.CacheStore,
	embedder models.EmbeddingsClient,
	engine models.Projector,
) *Pipeline {
	return &Pipeline{
		cache:    cache,
		embedder: embedder,
		engine:   engine,
	}
}

func (p *Pipeline) Visualize(
	ctx context.Context,
	req *models.VisualizationRequest,
) (*models.VisualizationResponse, error) {
	texts := make([]string, len(req.Texts))
	for i, input := range req.Texts {
		texts[i] = input.Text
	}

	// duplicates resolve to a single embedding and a single projected point
	distinct := distinctTexts(texts)

	embeddings := p.cache.GetEmbeddings(ctx, distinct)

	missing := make([]string, 0, len(distinct))
	for _, text := range distinct {
		if _, ok := embeddings[text]; !ok {
			missing = append(missing, text)
		}
	}

	if len(missing) > 0 {
		log.Debugf("embedding %d of %d texts (%d cached)",
			len(missing), len(distinct), len(distinct)-len(missing))

		generated, err := p.embedder.EmbedTexts(ctx, missing)
		if err != nil {
			return nil, fmt.Errorf("failed to generate embeddings: %w", err)
		}
		if !p.cache.PutEmbeddings(ctx, generated) {
			log.Warn("failed to cache generated embeddings")
		}
		for text, embedding := range generated {
			embeddings[text] = embedding
		}
	}

	for _, text := range distinct {
		if _, ok := embeddings[text]; !ok {
			return nil, fmt.Errorf("no embedding produced for %q", text)
		}
	}

	reductions, err := p.engine.Project(embeddings)
	if err != nil {
		return nil, err
	}

	results := make([]models.ItemResult, len(texts))
	for i, text := range texts {
		results[i] = models.ItemResult{
			Label:      text,
			Embedding:  embeddings[text],
			Reductions: reductions[text],
		}
	}

	return &models.VisualizationResponse{Results: results}, nil
}

// distinctTexts returns the unique texts in first-seen order.
func distinctTexts(texts []string) []string {
	seen := make(map[string]bool, len(texts))
	distinct := make([]string, 0, len(texts))
	for _, text := range texts {
		if seen[text] {
			continue
		}
		seen[text] = true
		distinct = append(distinct, text)
	}
	return distinct
}
