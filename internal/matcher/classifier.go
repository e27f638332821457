package matcher

import (
	"context"
	"strings"
)

// Classify returns the most probable class and its probability.
func (m *ClassifierMatcher) Classify(ctx context.Context, query string) MatchResult {
	if strings.TrimSpace(query) == "" {
		return zeroResult()
	}

	p := m.model.Predict(query)
	m.l.Debugf(ctx, "%s: %q -> %s (%.3f)", LogPrefixClassifier, query, p.Label, p.Probability)

	return MatchResult{
		Tag:          p.Label,
		Confidence:   p.Probability,
		PatternIndex: NoPattern,
	}
}
