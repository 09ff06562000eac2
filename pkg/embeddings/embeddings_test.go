package embeddings

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/embedviz/embedviz/config"
)

func TestNewClient(t *testing.T) {
	t.Run("openai", func(t *testing.T) {
		cfg := &config.Config{
			Embeddings: config.EmbeddingsConfig{
				Service:      "openai",
				Model:        "text-embedding-3-small",
				Dimensions:   1536,
				OpenAIAPIKey: "test-key",
			},
		}
		client, err := NewClient(cfg)
		require.NoError(t, err)
		assert.Equal(t, "text-embedding-3-small", client.Model().Name)
		assert.Equal(t, 1536, client.Model().Dimensions)
	})

	t.Run("unknown service", func(t *testing.T) {
		cfg := &config.Config{
			Embeddings: config.EmbeddingsConfig{Service: "sentencepiece"},
		}
		_, err := NewClient(cfg)
		require.Error(t, err)
	})

	t.Run("missing API key", func(t *testing.T) {
		cfg := &config.Config{
			Embeddings: config.EmbeddingsConfig{Service: "openai"},
		}
		_, err := NewClient(cfg)
		require.ErrorContains(t, err, "EMBEDVIZ_OPENAI_API_KEY")
	})
}

func TestEmbedTexts_Empty(t *testing.T) {
	client := &OpenAIClient{}

	embeddings, err := client.EmbedTexts(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, embeddings)
}

func TestNormalizeL2(t *testing.T) {
	v := NormalizeL2([]float32{3, 4})
	assert.InDelta(t, 0.6, v[0], 1e-6)
	assert.InDelta(t, 0.8, v[1], 1e-6)

	var norm float64
	for _, x := range v {
		norm += float64(x) * float64(x)
	}
	assert.InDelta(t, 1.0, math.Sqrt(norm), 1e-6)
}

func TestNormalizeL2_ZeroVector(t *testing.T) {
	v := NormalizeL2([]float32{0, 0, 0})
	assert.Equal(t, []float32{0, 0, 0}, v)
}
