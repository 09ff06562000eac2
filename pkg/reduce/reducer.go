package reduce

import (
	"gonum.org/v1/gonum/mat"

	"github.com/embedviz/embedviz/internal"
	"github.com/embedviz/embedviz/pkg/models"
)

var log = internal.GetLogger()

// MinSamples is the smallest row count any projection accepts. t-SNE's
// perplexity and UMAP's neighborhood graph both degenerate below this.
const MinSamples = 3

// A Reducer projects the rows of X down to dims columns. Implementations
// must be safe to reuse across calls but need not be safe for concurrent
// use of a single call's output.
type Reducer interface {
	Name() models.Algorithm
	Reduce(X *mat.Dense, dims int) (*mat.Dense, error)
}
