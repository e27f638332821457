package chat

// Strategy names the matcher a deployment runs.
type Strategy string

const (
	StrategyClassifier Strategy = "classifier"
	StrategyEmbedding  Strategy = "embedding"
)

// Fallback labels
const (
	LabelUncertain = "uncertain"
	LabelFallback  = "fallback"
)

// Default replies
const (
	DefaultLowConfidenceMessage = "I’m not fully sure what you mean. Try asking about admissions, courses, or placements."
	DefaultNoAnswerMessage      = "Sorry, I don’t have an answer for that yet."
	DefaultContactMessage       = "Sorry, I couldn't understand that. Please contact the admissions office at +91-98765-43210 or email info@college.edu."
)

// Default thresholds
const (
	DefaultClassifierThreshold = 0.25
	DefaultEmbeddingThreshold  = 0.55
)

// QueryInput is one user message.
type QueryInput struct {
	Query string
}

// QueryOutput is the outcome of one query. Label is a tag or a fallback label.
type QueryOutput struct {
	Label      string
	Confidence float64
	Reply      string
}

// IntentSummary describes one loaded intent.
type IntentSummary struct {
	Tag       string
	Patterns  int
	Responses int
}

// ListIntentsOutput lists the loaded intents in store order.
type ListIntentsOutput struct {
	Strategy Strategy
	Intents  []IntentSummary
}
