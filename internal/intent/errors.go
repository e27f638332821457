package intent

import "errors"

var (
	ErrNoIntents         = errors.New("no intents defined")
	ErrInvalidIntents    = errors.New("invalid intents")
	ErrUnsupportedFormat = errors.New("unsupported intents format")
)
