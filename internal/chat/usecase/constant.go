package usecase

// Log prefixes
const (
	LogPrefixHandleQuery = "internal.chat.usecase.HandleQuery"
	LogPrefixRespond     = "internal.chat.usecase.Respond"
	LogPrefixBootstrap   = "internal.chat.usecase.Bootstrap"
)

// Load sources named in LoadErrors that do not come from a file path.
const (
	SourceEmbedder = "embedder"
	SourceQdrant   = "qdrant"
	SourceIndex    = "pattern index"
	SourceStrategy = "strategy"
)
