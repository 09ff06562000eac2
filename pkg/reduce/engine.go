package reduce

import (
	"fmt"
	"sort"
	"sync"

	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/mat"

	"github.com/embedviz/embedviz/pkg/models"
)

var _ models.Projector = &Engine{}

// Engine runs every configured reducer over one embedding set and collates
// 2D and 3D layouts per input text. Reducers run concurrently; each is
// independent of the others.
type Engine struct {
	reducers []Reducer
}

// NewEngine returns an engine running PCA, t-SNE and UMAP with their
// default parameters.
func NewEngine() *Engine {
	return &Engine{
		reducers: []Reducer{
			NewPCAReducer(),
			NewTSNEReducer(),
			NewUMAPReducer(),
		},
	}
}

// NewEngineWithReducers returns an engine running the given reducers in
// the given order.
func NewEngineWithReducers(reducers ...Reducer) *Engine {
	return &Engine{reducers: reducers}
}

// Project reduces the embeddings to 2D and 3D with every reducer. Results
// are keyed by text, each carrying one ReductionResult per reducer in
// engine order.
func (e *Engine) Project(
	embeddings map[string][]float32,
) (map[string][]models.ReductionResult, error) {
	n := len(embeddings)
	if n < MinSamples {
		return nil, models.NewValidationError(
			fmt.Sprintf("projection requires at least %d texts, got %d", MinSamples, n),
		)
	}

	// fixed row order so every reducer sees the same matrix
	labels := make([]string, 0, n)
	for label := range embeddings {
		labels = append(labels, label)
	}
	sort.Strings(labels)

	d := len(embeddings[labels[0]])
	for _, label := range labels {
		if len(embeddings[label]) != d {
			return nil, fmt.Errorf(
				"embedding for %q has %d dimensions, expected %d",
				label, len(embeddings[label]), d,
			)
		}
	}

	log.Debugf("projecting %d embeddings of dimension %d", n, d)

	X := mat.NewDense(n, d, nil)
	for i, label := range labels {
		row := embeddings[label]
		for j, v := range row {
			X.Set(i, j, float64(v))
		}
	}

	var mu sync.Mutex
	layouts := make(map[models.Algorithm][2]*mat.Dense, len(e.reducers))

	var g errgroup.Group
	for _, reducer := range e.reducers {
		reducer := reducer
		g.Go(func() error {
			y2, err := reducer.Reduce(X, 2)
			if err != nil {
				return fmt.Errorf("%s 2D projection failed: %w", reducer.Name(), err)
			}
			y3, err := reducer.Reduce(X, 3)
			if err != nil {
				return fmt.Errorf("%s 3D projection failed: %w", reducer.Name(), err)
			}
			if err := checkRows(y2, n, 2); err != nil {
				return fmt.Errorf("%s: %w", reducer.Name(), err)
			}
			if err := checkRows(y3, n, 3); err != nil {
				return fmt.Errorf("%s: %w", reducer.Name(), err)
			}

			mu.Lock()
			layouts[reducer.Name()] = [2]*mat.Dense{y2, y3}
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	results := make(map[string][]models.ReductionResult, n)
	for i, label := range labels {
		reductions := make([]models.ReductionResult, 0, len(e.reducers))
		for _, reducer := range e.reducers {
			layout := layouts[reducer.Name()]
			y2, y3 := layout[0], layout[1]
			reductions = append(reductions, models.ReductionResult{
				Algorithm: reducer.Name(),
				Coordinates2D: models.Coordinates2D{
					X: y2.At(i, 0),
					Y: y2.At(i, 1),
				},
				Coordinates3D: models.Coordinates3D{
					X: y3.At(i, 0),
					Y: y3.At(i, 1),
					Z: y3.At(i, 2),
				},
			})
		}
		results[label] = reductions
	}

	return results, nil
}

func checkRows(Y *mat.Dense, n, dims int) error {
	rows, cols := Y.Dims()
	if rows != n || cols != dims {
		return fmt.Errorf(
			"reducer returned %dx%d layout, expected %dx%d", rows, cols, n, dims,
		)
	}
	return nil
}
