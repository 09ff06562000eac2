package embeddings

import "math"

// NormalizeL2 scales vector to unit length, in place, and returns it.
// A zero vector is returned unchanged.
func NormalizeL2(vector []float32) []float32 {
	var sumSquares float64
	for _, v := range vector {
		sumSquares += float64(v) * float64(v)
	}
	if sumSquares == 0 {
		return vector
	}

	magnitude := math.Sqrt(sumSquares)
	for i := range vector {
		vector[i] = float32(float64(vector[i]) / magnitude)
	}

	return vector
}
