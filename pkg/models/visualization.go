package models

import "context"

type Algorithm string

const (
	AlgorithmPCA  Algorithm = "pca"
	AlgorithmTSNE Algorithm = "tsne"
	AlgorithmUMAP Algorithm = "umap"
)

// Algorithms lists the reduction algorithms in the order they appear in
// every ItemResult.
var Algorithms = []Algorithm{AlgorithmPCA, AlgorithmTSNE, AlgorithmUMAP}

type TextInput struct {
	Text string `json:"text" validate:"required,min=1,max=100"`
}

// VisualizationRequest carries the ordered batch of texts to visualize.
// The lower bound of 3 exists because the neighbor-based reduction
// algorithms are numerically unstable below a minimum sample size.
type VisualizationRequest struct {
	Texts []TextInput `json:"texts" validate:"required,min=3,max=100,dive"`
}

type Coordinates2D struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

type Coordinates3D struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// ReductionResult holds one algorithm's 2D and 3D placement of a single item.
// Coordinates are on the algorithm's own scale; there is no cross-algorithm
// normalization.
type ReductionResult struct {
	Algorithm     Algorithm     `json:"algorithm"`
	Coordinates2D Coordinates2D `json:"coordinates_2d"`
	Coordinates3D Coordinates3D `json:"coordinates_3d"`
}

type ItemResult struct {
	Label      string            `json:"label"`
	Embedding  []float32         `json:"embedding"`
	Reductions []ReductionResult `json:"reductions"`
}

// VisualizationResponse carries one ItemResult per request text, in
// request order.
type VisualizationResponse struct {
	Results []ItemResult `json:"results"`
}

type HealthCheckResponse struct {
	Status string `json:"status"`
}

// Visualizer runs the embedding-and-projection pipeline for one request.
type Visualizer interface {
	Visualize(ctx context.Context, req *VisualizationRequest) (*VisualizationResponse, error)
}

// Projector computes all reduction results for a complete embedding set.
// Results are keyed by text so callers never depend on any array ordering.
type Projector interface {
	Project(embeddings map[string][]float32) (map[string][]ReductionResult, error)
}
