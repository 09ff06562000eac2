package embeddings

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sashabaranov/go-openai"

	"github.com/embedviz/embedviz/config"
	"github.com/embedviz/embedviz/pkg/models"
)

const OpenAIAPIKeyNotSetError = "EMBEDVIZ_OPENAI_API_KEY is not set" //nolint:gosec

const openAIAPITimeout = 60 * time.Second

var _ models.EmbeddingsClient = &OpenAIClient{}

type OpenAIClient struct {
	client     *openai.Client
	model      openai.EmbeddingModel
	dimensions int
}

func NewOpenAIClient(cfg *config.Config) (*OpenAIClient, error) {
	if cfg.Embeddings.OpenAIAPIKey == "" {
		return nil, errors.New(OpenAIAPIKeyNotSetError)
	}

	clientCfg := openai.DefaultConfig(cfg.Embeddings.OpenAIAPIKey)
	if cfg.Embeddings.OpenAIEndpoint != "" {
		clientCfg.BaseURL = cfg.Embeddings.OpenAIEndpoint
	}

	return &OpenAIClient{
		client:     openai.NewClientWithConfig(clientCfg),
		model:      openai.EmbeddingModel(cfg.Embeddings.Model),
		dimensions: cfg.Embeddings.Dimensions,
	}, nil
}

// EmbedTexts embeds all texts in a single API call and returns the vectors
// keyed by input text. Vectors are L2-normalized before being returned.
func (c *OpenAIClient) EmbedTexts(
	ctx context.Context,
	texts []string,
) (map[string][]float32, error) {
	if len(texts) == 0 {
		return map[string][]float32{}, nil
	}

	thisCtx, cancel := context.WithTimeout(ctx, openAIAPITimeout)
	defer cancel()

	resp, err := c.client.CreateEmbeddings(thisCtx, openai.EmbeddingRequest{
		Input: texts,
		Model: c.model,
	})
	if err != nil {
		return nil, fmt.Errorf("error embedding texts: %w", err)
	}

	if len(resp.Data) != len(texts) {
		return nil, fmt.Errorf(
			"expected %d embeddings, got %d",
			len(texts),
			len(resp.Data),
		)
	}

	embeddings := make(map[string][]float32, len(texts))
	for _, d := range resp.Data {
		if d.Index < 0 || d.Index >= len(texts) {
			return nil, fmt.Errorf("embedding index %d out of range", d.Index)
		}
		embeddings[texts[d.Index]] = NormalizeL2(d.Embedding)
	}

	return embeddings, nil
}

func (c *OpenAIClient) Model() models.EmbeddingModel {
	return models.EmbeddingModel{
		Name:         string(c.model),
		Dimensions:   c.dimensions,
		IsNormalized: true,
	}
}
