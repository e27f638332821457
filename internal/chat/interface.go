package chat

import "context"

// UseCase defines the business logic interface for the chat domain.
type UseCase interface {
	// HandleQuery classifies a user message and picks the reply.
	// Blank queries are answered with the fallback, not an error.
	HandleQuery(ctx context.Context, input QueryInput) (QueryOutput, error)

	// ListIntents describes the loaded intent store.
	ListIntents(ctx context.Context) (ListIntentsOutput, error)

	// Ready returns nil when the store and model/artifact loaded, otherwise
	// the load error.
	Ready() error
}
