package chat

import "errors"

// Domain-specific errors for the chat package.
var (
	ErrNotReady   = errors.New("chatbot is not ready")
	ErrEmptyQuery = errors.New("query is empty")
)
