package models

import "context"

type EmbeddingModel struct {
	Name         string `json:"name"`
	Dimensions   int    `json:"dimensions"`
	IsNormalized bool   `json:"normalized"`
}

// EmbeddingsClient converts batches of texts into fixed-length vectors.
type EmbeddingsClient interface {
	// EmbedTexts embeds the given texts in a single model call, returning an
	// L2-normalized vector per distinct text. An empty input returns an
	// empty map without invoking the model.
	EmbedTexts(ctx context.Context, texts []string) (map[string][]float32, error)
	// Model describes the configured embedding model.
	Model() EmbeddingModel
}
