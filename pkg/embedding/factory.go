package embedding

import (
	"context"
	"fmt"
	"time"

	"edubot/pkg/voyage"
)

const (
	ProviderVoyage = "voyage"
	ProviderGenAI  = "genai"
)

// Config selects and configures an embedding provider.
type Config struct {
	Provider string
	APIKey   string
	Model    string
	BaseURL  string
	// InputType is the Voyage input_type hint; TaskType the GenAI task type.
	InputType string
	TaskType  string

	CacheSize int
	CacheTTL  time.Duration
}

// New builds the configured embedder, wrapped in a cache when CacheSize > 0.
func New(ctx context.Context, cfg Config) (Embedder, error) {
	var (
		e   Embedder
		err error
	)

	switch cfg.Provider {
	case ProviderVoyage:
		var client *voyage.Client
		client, err = voyage.New(cfg.APIKey)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMissingAPIKey, err)
		}
		if cfg.Model != "" {
			client.WithModel(cfg.Model)
		}
		if cfg.BaseURL != "" {
			client.WithBaseURL(cfg.BaseURL)
		}
		if cfg.InputType != "" {
			client.WithInputType(cfg.InputType)
		}
		e = NewVoyage(client)
	case ProviderGenAI:
		e, err = NewGenAI(ctx, cfg.APIKey, cfg.Model, cfg.TaskType)
		if err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("%w: %q (use %q or %q)", ErrUnknownProvider, cfg.Provider, ProviderVoyage, ProviderGenAI)
	}

	if cfg.CacheSize > 0 {
		e = NewCached(e, cfg.CacheSize, cfg.CacheTTL)
	}
	return e, nil
}
