package matcher

import (
	"context"
	"fmt"
	"strings"

	"edubot/pkg/embedding"
)

// Classify embeds the query and returns the tag of the most similar pattern.
// Confidence is the cosine similarity of that pattern.
func (m *EmbeddingMatcher) Classify(ctx context.Context, query string) MatchResult {
	if strings.TrimSpace(query) == "" {
		return zeroResult()
	}

	res, err := m.classify(ctx, query)
	if err != nil {
		m.l.Errorf(ctx, "%s: %v", LogPrefixEmbedding, err)
		return zeroResult()
	}

	m.l.Debugf(ctx, "%s: %q -> %s (%.3f, pattern %d)", LogPrefixEmbedding, query, res.Tag, res.Confidence, res.PatternIndex)
	return res
}

func (m *EmbeddingMatcher) classify(ctx context.Context, query string) (MatchResult, error) {
	vec, err := embedding.EmbedOne(ctx, m.embedder, query)
	if err != nil {
		return MatchResult{}, fmt.Errorf("embed query: %w", err)
	}
	if len(vec) != m.art.Dimension {
		return MatchResult{}, fmt.Errorf("%w: got %d, want %d", ErrDimensionMismatch, len(vec), m.art.Dimension)
	}

	idx, score, err := m.index.Nearest(ctx, vec)
	if err != nil {
		return MatchResult{}, fmt.Errorf("nearest pattern: %w", err)
	}
	if idx < 0 || idx >= m.art.Len() {
		return MatchResult{}, fmt.Errorf("nearest pattern: index %d out of range", idx)
	}

	return MatchResult{
		Tag:          m.art.Tags[idx],
		Confidence:   score,
		PatternIndex: idx,
	}, nil
}

// Response returns the reply stored for an artifact row.
func (m *EmbeddingMatcher) Response(idx int) (string, bool) {
	if idx < 0 || idx >= m.art.Len() {
		return "", false
	}
	return m.art.Responses[idx], true
}
