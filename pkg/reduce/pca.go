package reduce

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"

	"github.com/embedviz/embedviz/pkg/models"
)

var _ Reducer = &PCAReducer{}

// PCAReducer projects onto the top principal components of the centered
// data, computed with a thin SVD.
type PCAReducer struct{}

func NewPCAReducer() *PCAReducer {
	return &PCAReducer{}
}

func (r *PCAReducer) Name() models.Algorithm {
	return models.AlgorithmPCA
}

func (r *PCAReducer) Reduce(X *mat.Dense, dims int) (*mat.Dense, error) {
	n, d := X.Dims()
	if dims > n || dims > d {
		return nil, fmt.Errorf(
			"cannot project %dx%d matrix to %d components", n, d, dims,
		)
	}

	centered := center(X)

	var svd mat.SVD
	if ok := svd.Factorize(centered, mat.SVDThin); !ok {
		return nil, fmt.Errorf("SVD failed to converge on %dx%d matrix", n, d)
	}

	var v mat.Dense
	svd.VTo(&v)

	components := v.Slice(0, d, 0, dims)

	Y := mat.NewDense(n, dims, nil)
	Y.Mul(centered, components)

	return Y, nil
}

// center returns a copy of X with the column means subtracted.
func center(X *mat.Dense) *mat.Dense {
	n, d := X.Dims()
	centered := mat.DenseCopyOf(X)
	col := make([]float64, n)
	for j := 0; j < d; j++ {
		mat.Col(col, j, X)
		mean := stat.Mean(col, nil)
		for i := 0; i < n; i++ {
			centered.Set(i, j, X.At(i, j)-mean)
		}
	}
	return centered
}
