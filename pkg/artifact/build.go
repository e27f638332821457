package artifact

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"edubot/pkg/embedding"
)

const (
	DefaultBatchSize   = 64
	DefaultConcurrency = 4
)

// Row is one pattern to embed together with its tag and paired response.
type Row struct {
	Tag      string
	Pattern  string
	Response string
}

// BuildOptions tunes Build. Zero values fall back to the defaults.
type BuildOptions struct {
	BatchSize   int
	Concurrency int
}

// Build embeds every row's pattern and assembles an artifact in row order.
// Batches are sent concurrently; the first failure cancels the rest.
func Build(ctx context.Context, e embedding.Embedder, rows []Row, opts BuildOptions) (*Artifact, error) {
	if len(rows) == 0 {
		return nil, ErrEmpty
	}
	if opts.BatchSize <= 0 {
		opts.BatchSize = DefaultBatchSize
	}
	if opts.Concurrency <= 0 {
		opts.Concurrency = DefaultConcurrency
	}

	a := &Artifact{
		Model:      e.Name(),
		Tags:       make([]string, len(rows)),
		Patterns:   make([]string, len(rows)),
		Responses:  make([]string, len(rows)),
		Embeddings: make([][]float32, len(rows)),
	}
	for i, r := range rows {
		a.Tags[i] = r.Tag
		a.Patterns[i] = r.Pattern
		a.Responses[i] = r.Response
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(opts.Concurrency)

	for start := 0; start < len(rows); start += opts.BatchSize {
		end := min(start+opts.BatchSize, len(rows))
		g.Go(func() error {
			vecs, err := e.Embed(gctx, a.Patterns[start:end])
			if err != nil {
				return fmt.Errorf("embed rows %d-%d: %w", start, end-1, err)
			}
			if len(vecs) != end-start {
				return fmt.Errorf("embed rows %d-%d: got %d vectors", start, end-1, len(vecs))
			}
			copy(a.Embeddings[start:end], vecs)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	a.Dimension = len(a.Embeddings[0])
	if err := a.Validate(); err != nil {
		return nil, err
	}
	return a, nil
}
