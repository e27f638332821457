package embedding

import (
	"context"

	"edubot/pkg/voyage"
)

type voyageEmbedder struct {
	client voyage.ModelClient
}

// NewVoyage adapts a Voyage client.
func NewVoyage(client voyage.ModelClient) Embedder {
	return &voyageEmbedder{client: client}
}

func (e *voyageEmbedder) Embed(ctx context.Context, texts []string) ([][]float32, error) {
	return e.client.Embed(ctx, texts)
}

func (e *voyageEmbedder) Name() string {
	return "voyage:" + e.client.Model()
}
