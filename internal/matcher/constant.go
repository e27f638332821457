package matcher

// Log prefixes
const (
	LogPrefixClassifier = "internal.matcher.ClassifierMatcher.Classify"
	LogPrefixEmbedding  = "internal.matcher.EmbeddingMatcher.Classify"
	LogPrefixQdrantSync = "internal.matcher.NewQdrantIndex"
)

// NoPattern is the PatternIndex of a result that did not come from a
// stored pattern.
const NoPattern = -1

// Index kinds
const (
	IndexMemory = "memory"
	IndexQdrant = "qdrant"
)

const qdrantUpsertBatch = 256
