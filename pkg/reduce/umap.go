package reduce

import (
	"fmt"
	"math"
	"math/rand"
	"sort"

	"gonum.org/v1/gonum/mat"

	"github.com/embedviz/embedviz/pkg/models"
)

var _ Reducer = &UMAPReducer{}

// UMAPReducer is a compact UMAP: a fuzzy simplicial set over the k-nearest
// neighbor graph, optimized by SGD with negative sampling. Layouts are
// deterministic for a given seed because the optimizer draws from its own
// seeded source.
type UMAPReducer struct {
	Neighbors int
	MinDist   float64
	Epochs    int
	Seed      int64
}

func NewUMAPReducer() *UMAPReducer {
	return &UMAPReducer{
		Neighbors: 15,
		MinDist:   0.1,
		Epochs:    200,
		Seed:      42,
	}
}

func (r *UMAPReducer) Name() models.Algorithm {
	return models.AlgorithmUMAP
}

func (r *UMAPReducer) Reduce(X *mat.Dense, dims int) (*mat.Dense, error) {
	n, _ := X.Dims()
	if n < MinSamples {
		return nil, fmt.Errorf("UMAP requires at least %d samples, got %d", MinSamples, n)
	}

	k := r.Neighbors
	if k > n-1 {
		k = n - 1
	}

	graph := fuzzyGraph(X, k)
	a, b := fitCurveParams(r.MinDist)

	rng := rand.New(rand.NewSource(r.Seed))
	Y := optimizeLayout(graph, n, dims, r.Epochs, a, b, rng)

	return Y, nil
}

// edge is one directed entry of the weighted kNN graph.
type edge struct {
	from, to int
	weight   float64
}

type neighbor struct {
	index int
	dist  float64
}

// fuzzyGraph builds the symmetrized fuzzy simplicial set over the k-nearest
// neighbors of each row.
func fuzzyGraph(X *mat.Dense, k int) []edge {
	n, _ := X.Dims()

	// exact kNN; fine at the sample counts this service handles
	neighbors := make([][]neighbor, n)
	for i := 0; i < n; i++ {
		dists := make([]neighbor, 0, n-1)
		for j := 0; j < n; j++ {
			if i == j {
				continue
			}
			dists = append(dists, neighbor{j, euclidean(X.RawRowView(i), X.RawRowView(j))})
		}
		sort.Slice(dists, func(a, b int) bool { return dists[a].dist < dists[b].dist })
		neighbors[i] = dists[:k]
	}

	// Per-point rho and sigma so each point's nearest neighborhood carries
	// roughly log2(k) total membership.
	weights := make(map[[2]int]float64, n*k)
	for i := 0; i < n; i++ {
		rho := neighbors[i][0].dist
		sigma := smoothKNNDist(neighbors[i], rho, k)
		for _, nb := range neighbors[i] {
			d := nb.dist - rho
			if d < 0 {
				d = 0
			}
			var w float64
			if sigma > 0 {
				w = math.Exp(-d / sigma)
			} else {
				w = 1.0
			}
			weights[[2]int{i, nb.index}] = w
		}
	}

	// symmetrize: w = w + wT - w*wT, one edge per unordered pair with the
	// lower index first so layouts do not depend on map iteration order
	edges := make([]edge, 0, len(weights))
	seen := make(map[[2]int]bool, len(weights))
	for key, w := range weights {
		i, j := key[0], key[1]
		lo, hi := i, j
		if lo > hi {
			lo, hi = hi, lo
		}
		if seen[[2]int{lo, hi}] {
			continue
		}
		seen[[2]int{lo, hi}] = true
		wt := weights[[2]int{j, i}]
		combined := w + wt - w*wt
		if combined > 0 {
			edges = append(edges, edge{lo, hi, combined})
		}
	}

	sort.Slice(edges, func(a, b int) bool {
		if edges[a].from != edges[b].from {
			return edges[a].from < edges[b].from
		}
		return edges[a].to < edges[b].to
	})

	return edges
}

// smoothKNNDist binary searches for the sigma that makes the neighborhood
// memberships sum to log2(k).
func smoothKNNDist(nbs []neighbor, rho float64, k int) float64 {
	target := math.Log2(float64(k))
	lo, hi, mid := 0.0, math.Inf(1), 1.0

	for iter := 0; iter < 64; iter++ {
		var sum float64
		for _, nb := range nbs {
			d := nb.dist - rho
			if d <= 0 {
				sum += 1.0
			} else {
				sum += math.Exp(-d / mid)
			}
		}

		if math.Abs(sum-target) < 1e-5 {
			break
		}
		if sum > target {
			hi = mid
			mid = (lo + hi) / 2
		} else {
			lo = mid
			if math.IsInf(hi, 1) {
				mid *= 2
			} else {
				mid = (lo + hi) / 2
			}
		}
	}

	return mid
}

// fitCurveParams approximates the a, b parameters of the low-dimensional
// similarity curve 1/(1+a*d^(2b)) for the given min_dist. Values for the
// default min_dist 0.1 match the reference implementation's least-squares
// fit; other spreads fall back to a coarse interpolation.
func fitCurveParams(minDist float64) (float64, float64) {
	if math.Abs(minDist-0.1) < 1e-9 {
		return 1.576943, 0.895060
	}
	// crude fit, adequate for the narrow min_dist range in practice
	a := 1.93 / (1.0 + 3.5*minDist)
	b := 0.79 + 0.2*minDist
	return a, b
}

// optimizeLayout runs SGD over the graph edges with negative sampling,
// starting from a seeded uniform layout in [-10, 10].
func optimizeLayout(
	edges []edge,
	n, dims, epochs int,
	a, b float64,
	rng *rand.Rand,
) *mat.Dense {
	Y := mat.NewDense(n, dims, nil)
	for i := 0; i < n; i++ {
		for j := 0; j < dims; j++ {
			Y.Set(i, j, rng.Float64()*20.0-10.0)
		}
	}

	var maxWeight float64
	for _, e := range edges {
		if e.weight > maxWeight {
			maxWeight = e.weight
		}
	}
	if maxWeight == 0 {
		return Y
	}

	const initialAlpha = 1.0
	const negativeSamples = 5

	for epoch := 0; epoch < epochs; epoch++ {
		alpha := initialAlpha * (1.0 - float64(epoch)/float64(epochs))

		for _, e := range edges {
			// sample edges proportionally to weight
			if rng.Float64() > e.weight/maxWeight {
				continue
			}

			yi := Y.RawRowView(e.from)
			yj := Y.RawRowView(e.to)

			// attractive update along the edge
			d2 := sqDist(yi, yj)
			if d2 > 0 {
				grad := (-2.0 * a * b * math.Pow(d2, b-1.0)) /
					(1.0 + a*math.Pow(d2, b))
				for dim := 0; dim < dims; dim++ {
					g := clip(grad * (yi[dim] - yj[dim]))
					yi[dim] += alpha * g
					yj[dim] -= alpha * g
				}
			}

			// repulsive updates against random vertices
			for s := 0; s < negativeSamples; s++ {
				j := rng.Intn(n)
				if j == e.from {
					continue
				}
				yk := Y.RawRowView(j)
				d2 := sqDist(yi, yk)
				if d2 <= 0 {
					continue
				}
				grad := (2.0 * b) /
					((0.001 + d2) * (1.0 + a*math.Pow(d2, b)))
				for dim := 0; dim < dims; dim++ {
					g := clip(grad * (yi[dim] - yk[dim]))
					yi[dim] += alpha * g
				}
			}
		}
	}

	return Y
}

func clip(g float64) float64 {
	if g > 4.0 {
		return 4.0
	}
	if g < -4.0 {
		return -4.0
	}
	return g
}

func euclidean(a, b []float64) float64 {
	return math.Sqrt(sqDist(a, b))
}

func sqDist(a, b []float64) float64 {
	var sum float64
	for i := range a {
		d := a[i] - b[i]
		sum += d * d
	}
	return sum
}
