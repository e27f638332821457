package matcher

import (
	"context"
	"fmt"

	"edubot/pkg/artifact"
	"edubot/pkg/log"
	"edubot/pkg/qdrant"
)

// QdrantIndex delegates nearest-pattern search to a Qdrant collection whose
// point IDs are artifact row indices.
type QdrantIndex struct {
	client     *qdrant.Client
	collection string
}

var _ PatternIndex = (*QdrantIndex)(nil)

// NewQdrantIndex recreates collection from the artifact and returns an index
// over it.
func NewQdrantIndex(ctx context.Context, client *qdrant.Client, collection string, art *artifact.Artifact, l log.Logger) (*QdrantIndex, error) {
	if err := client.DeleteCollection(ctx, collection); err != nil {
		return nil, fmt.Errorf("drop collection %s: %w", collection, err)
	}
	if err := client.CreateCollection(ctx, qdrant.CreateCollectionRequest{
		Name: collection,
		Vectors: qdrant.VectorConfig{
			Size:     art.Dimension,
			Distance: qdrant.DistanceCosine,
		},
	}); err != nil {
		return nil, fmt.Errorf("create collection %s: %w", collection, err)
	}

	for start := 0; start < art.Len(); start += qdrantUpsertBatch {
		end := min(start+qdrantUpsertBatch, art.Len())
		points := make([]qdrant.Point, 0, end-start)
		for i := start; i < end; i++ {
			points = append(points, qdrant.Point{
				ID:     uint64(i),
				Vector: art.Embeddings[i],
				Payload: map[string]interface{}{
					"tag":     art.Tags[i],
					"pattern": art.Patterns[i],
				},
			})
		}
		if err := client.UpsertPoints(ctx, collection, qdrant.UpsertPointsRequest{Points: points}); err != nil {
			return nil, fmt.Errorf("upsert rows %d-%d: %w", start, end-1, err)
		}
	}

	l.Infof(ctx, "%s: synced %d patterns into %s", LogPrefixQdrantSync, art.Len(), collection)
	return &QdrantIndex{client: client, collection: collection}, nil
}

func (ix *QdrantIndex) Nearest(ctx context.Context, vec []float32) (int, float64, error) {
	resp, err := ix.client.SearchPoints(ctx, ix.collection, qdrant.SearchRequest{
		Vector: vec,
		Limit:  1,
	})
	if err != nil {
		return NoPattern, 0, err
	}
	if len(resp.Result) == 0 {
		return NoPattern, 0, ErrEmptyIndex
	}

	hit := resp.Result[0]
	id, ok := hit.ID.(float64)
	if !ok || id < 0 || id != float64(int(id)) {
		return NoPattern, 0, fmt.Errorf("unexpected point id %v", hit.ID)
	}
	return int(id), hit.Score, nil
}
