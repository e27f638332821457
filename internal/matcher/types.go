package matcher

// MatchResult is the best tag for a query and how confident the matcher is.
// PatternIndex is the artifact row of the nearest pattern for the embedding
// matcher and NoPattern otherwise.
type MatchResult struct {
	Tag          string
	Confidence   float64
	PatternIndex int
}

func zeroResult() MatchResult {
	return MatchResult{PatternIndex: NoPattern}
}
