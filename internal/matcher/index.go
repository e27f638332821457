package matcher

import (
	"context"

	"edubot/pkg/embedding"
)

// PatternIndex finds the stored vector most similar to a query vector.
type PatternIndex interface {
	// Nearest returns the row index and cosine similarity of the best match.
	Nearest(ctx context.Context, vec []float32) (int, float64, error)
}

// MemoryIndex scans every vector in process. Ties resolve to the lowest index.
type MemoryIndex struct {
	vectors [][]float32
}

var _ PatternIndex = (*MemoryIndex)(nil)

// NewMemoryIndex indexes vectors without copying them.
func NewMemoryIndex(vectors [][]float32) *MemoryIndex {
	return &MemoryIndex{vectors: vectors}
}

func (ix *MemoryIndex) Nearest(_ context.Context, vec []float32) (int, float64, error) {
	if len(ix.vectors) == 0 {
		return NoPattern, 0, ErrEmptyIndex
	}

	best, bestScore := 0, embedding.Cosine(vec, ix.vectors[0])
	for i := 1; i < len(ix.vectors); i++ {
		if s := embedding.Cosine(vec, ix.vectors[i]); s > bestScore {
			best, bestScore = i, s
		}
	}
	return best, bestScore, nil
}
