package models

import "context"

// CacheStore is the embedding cache and rate counter boundary. All methods
// are fail-open: an unavailable or erroring store reports misses, failed
// writes, or allowed requests rather than returning errors.
type CacheStore interface {
	// GetEmbeddings returns cached vectors for the given texts. Only hits
	// appear in the returned map.
	GetEmbeddings(ctx context.Context, texts []string) map[string][]float32
	// PutEmbeddings stores the given vectors with the configured TTL.
	// Returns false if any entry was not stored.
	PutEmbeddings(ctx context.Context, embeddings map[string][]float32) bool
	// CheckAndIncrementRate increments the fixed 60-second window counter
	// for the given user and endpoint and reports whether the request is
	// within budget, together with the current count.
	CheckAndIncrementRate(ctx context.Context, userID, endpoint string) (bool, int64)
	Close() error
}
