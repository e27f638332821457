package voyage

import "context"

// ModelClient embeds batches of text and names the model that produced them.
// Implementations are safe for concurrent use.
type ModelClient interface {
	Embed(ctx context.Context, texts []string) ([][]float32, error)
	Model() string
}

var _ ModelClient = (*Client)(nil)
