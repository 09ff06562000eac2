package reduce

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func TestPCAReducer_Reduce(t *testing.T) {
	// points spread along one axis with small noise on the second
	X := mat.NewDense(4, 3, []float64{
		0.0, 0.1, 0.0,
		1.0, -0.1, 0.0,
		2.0, 0.1, 0.0,
		3.0, -0.1, 0.0,
	})

	r := NewPCAReducer()
	Y, err := r.Reduce(X, 2)
	require.NoError(t, err)

	rows, cols := Y.Dims()
	assert.Equal(t, 4, rows)
	assert.Equal(t, 2, cols)

	// first component carries nearly all variance
	var var0, var1 float64
	for i := 0; i < rows; i++ {
		var0 += Y.At(i, 0) * Y.At(i, 0)
		var1 += Y.At(i, 1) * Y.At(i, 1)
	}
	assert.Greater(t, var0, var1)

	// projected data is centered
	var sum0 float64
	for i := 0; i < rows; i++ {
		sum0 += Y.At(i, 0)
	}
	assert.InDelta(t, 0.0, sum0, 1e-9)
}

func TestPCAReducer_Deterministic(t *testing.T) {
	X := mat.NewDense(5, 4, []float64{
		1, 2, 3, 4,
		4, 3, 2, 1,
		1, 1, 1, 1,
		0, 2, 0, 2,
		3, 0, 3, 0,
	})

	r := NewPCAReducer()
	Y1, err := r.Reduce(X, 3)
	require.NoError(t, err)
	Y2, err := r.Reduce(X, 3)
	require.NoError(t, err)

	assert.True(t, mat.EqualApprox(Y1, Y2, 1e-12))
}

func TestPCAReducer_TooFewSamples(t *testing.T) {
	X := mat.NewDense(2, 5, nil)

	r := NewPCAReducer()
	_, err := r.Reduce(X, 3)
	require.Error(t, err)
}
