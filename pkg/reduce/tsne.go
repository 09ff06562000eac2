package reduce

import (
	"fmt"

	"github.com/danaugrs/go-tsne/tsne"
	"gonum.org/v1/gonum/mat"

	"github.com/embedviz/embedviz/pkg/models"
)

var _ Reducer = &TSNEReducer{}

// TSNEReducer embeds samples with exact t-SNE. Perplexity is clamped to
// n-1 for small batches.
type TSNEReducer struct {
	Perplexity   float64
	LearningRate float64
	MaxIter      int
}

func NewTSNEReducer() *TSNEReducer {
	return &TSNEReducer{
		Perplexity:   30.0,
		LearningRate: 100.0,
		MaxIter:      1000,
	}
}

func (r *TSNEReducer) Name() models.Algorithm {
	return models.AlgorithmTSNE
}

func (r *TSNEReducer) Reduce(X *mat.Dense, dims int) (*mat.Dense, error) {
	n, _ := X.Dims()
	if n < MinSamples {
		return nil, fmt.Errorf("t-SNE requires at least %d samples, got %d", MinSamples, n)
	}

	perplexity := r.Perplexity
	if max := float64(n - 1); perplexity > max {
		perplexity = max
	}

	t := tsne.NewTSNE(dims, perplexity, r.LearningRate, r.MaxIter, false)

	// EmbedData returns mat.Matrix but the embedding is always a *mat.Dense
	Y, ok := t.EmbedData(X, nil).(*mat.Dense)
	if !ok {
		return nil, fmt.Errorf("t-SNE returned unexpected matrix type")
	}

	return Y, nil
}
