// Package embedding turns text into dense vectors through a pluggable provider.
package embedding

import "context"

// Embedder generates embeddings. Implementations are safe for concurrent use.
type Embedder interface {
	// Embed returns one vector per text, in input order.
	Embed(ctx context.Context, texts []string) ([][]float32, error)

	// Name identifies provider and model, e.g. "voyage:voyage-3". Vectors are
	// only comparable between embedders with the same name.
	Name() string
}

// EmbedOne embeds a single text.
func EmbedOne(ctx context.Context, e Embedder, text string) ([]float32, error) {
	vecs, err := e.Embed(ctx, []string{text})
	if err != nil {
		return nil, err
	}
	if len(vecs) != 1 {
		return nil, ErrEmptyResult
	}
	return vecs[0], nil
}
