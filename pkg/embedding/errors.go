package embedding

import "errors"

var (
	ErrUnknownProvider = errors.New("unknown embedding provider")
	ErrMissingAPIKey   = errors.New("embedding provider API key is required")
	ErrEmptyResult     = errors.New("embedding provider returned no vectors")
)
