package matcher

import (
	"context"
	"fmt"

	"edubot/pkg/artifact"
	"edubot/pkg/classifier"
	"edubot/pkg/embedding"
	"edubot/pkg/log"
)

// Matcher maps a free-text query to the closest known tag. Classify never
// fails: blank queries and runtime errors yield a zero-confidence result.
type Matcher interface {
	Classify(ctx context.Context, query string) MatchResult
}

// ClassifierMatcher runs a trained TF-IDF + logistic regression model.
type ClassifierMatcher struct {
	model *classifier.Model
	l     log.Logger
}

var _ Matcher = (*ClassifierMatcher)(nil)

// NewClassifier creates a ClassifierMatcher.
func NewClassifier(model *classifier.Model, l log.Logger) *ClassifierMatcher {
	return &ClassifierMatcher{model: model, l: l}
}

// EmbeddingMatcher compares query embeddings with precomputed pattern
// embeddings.
type EmbeddingMatcher struct {
	art      *artifact.Artifact
	embedder embedding.Embedder
	index    PatternIndex
	l        log.Logger
}

var _ Matcher = (*EmbeddingMatcher)(nil)

// NewEmbedding creates an EmbeddingMatcher. The embedder must be the one the
// artifact was built with; when index is nil an in-memory index is used.
func NewEmbedding(art *artifact.Artifact, embedder embedding.Embedder, index PatternIndex, l log.Logger) (*EmbeddingMatcher, error) {
	if art.Model != embedder.Name() {
		return nil, fmt.Errorf("%w: artifact %q, embedder %q", ErrModelMismatch, art.Model, embedder.Name())
	}
	if index == nil {
		index = NewMemoryIndex(art.Embeddings)
	}
	return &EmbeddingMatcher{
		art:      art,
		embedder: embedder,
		index:    index,
		l:        l,
	}, nil
}
