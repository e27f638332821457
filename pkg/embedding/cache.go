package embedding

import (
	"context"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

type cachedEmbedder struct {
	next  Embedder
	cache *expirable.LRU[string, []float32]
}

// NewCached memoises vectors per text for ttl, keeping at most size entries.
// Only misses reach next, batched in a single call.
func NewCached(next Embedder, size int, ttl time.Duration) Embedder {
	return &cachedEmbedder{
		next:  next,
		cache: expirable.NewLRU[string, []float32](size, nil, ttl),
	}
}

func (e *cachedEmbedder) Embed(ctx context.Context, texts []string) ([][]float32, error) {
	out := make([][]float32, len(texts))
	var missTexts []string
	var missIdx []int

	for i, t := range texts {
		if v, ok := e.cache.Get(t); ok {
			out[i] = v
			continue
		}
		missTexts = append(missTexts, t)
		missIdx = append(missIdx, i)
	}
	if len(missTexts) == 0 {
		return out, nil
	}

	vecs, err := e.next.Embed(ctx, missTexts)
	if err != nil {
		return nil, err
	}
	if len(vecs) != len(missTexts) {
		return nil, ErrEmptyResult
	}
	for j, v := range vecs {
		out[missIdx[j]] = v
		e.cache.Add(missTexts[j], v)
	}
	return out, nil
}

func (e *cachedEmbedder) Name() string {
	return e.next.Name()
}
