package main

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"edubot/config"
	"edubot/internal/intent"
	"edubot/pkg/artifact"
	"edubot/pkg/embedding"
)

type embeddingsOptions struct {
	IntentsPath string
	OutPath     string
	Provider    string
	Model       string
	InputType   string
	BatchSize   int
	Concurrency int
}

var embeddingsOpts embeddingsOptions

var embeddingsCmd = &cobra.Command{
	Use:   "embeddings",
	Short: "Embed every pattern and write the retrieval artifact",
	Long: `Embeds each (tag, pattern, response) row of the intents file with the
configured provider and writes the artifact the embedding strategy loads.

Provider settings and API keys come from config.yaml / the environment;
flags override them.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		ecfg := cfg.EmbedderConfig()
		if embeddingsOpts.IntentsPath == "" {
			embeddingsOpts.IntentsPath = cfg.Chatbot.IntentsPath
		}
		if embeddingsOpts.OutPath == "" {
			embeddingsOpts.OutPath = cfg.Chatbot.ArtifactPath
		}
		if embeddingsOpts.BatchSize == 0 {
			embeddingsOpts.BatchSize = cfg.Embedding.BatchSize
		}
		if embeddingsOpts.Concurrency == 0 {
			embeddingsOpts.Concurrency = cfg.Embedding.Concurrency
		}
		if embeddingsOpts.Provider != "" && embeddingsOpts.Provider != ecfg.Provider {
			cfg.Embedding.Provider = embeddingsOpts.Provider
			ecfg.Provider = embeddingsOpts.Provider
			ecfg.APIKey = cfg.EmbeddingAPIKey()
		}
		if embeddingsOpts.Model != "" {
			ecfg.Model = embeddingsOpts.Model
		}
		if embeddingsOpts.InputType != "" {
			ecfg.InputType = embeddingsOpts.InputType
		}
		// Every pattern is embedded once.
		ecfg.CacheSize = 0

		emb, err := embedding.New(cmd.Context(), ecfg)
		if err != nil {
			return err
		}
		return runEmbeddings(cmd.Context(), cmd.OutOrStdout(), emb, embeddingsOpts)
	},
}

func init() {
	embeddingsCmd.Flags().StringVar(&embeddingsOpts.IntentsPath, "intents", "", "Intents file (default chatbot.intents_path)")
	embeddingsCmd.Flags().StringVar(&embeddingsOpts.OutPath, "out", "", "Output artifact path (default chatbot.artifact_path)")
	embeddingsCmd.Flags().StringVar(&embeddingsOpts.Provider, "provider", "", "Embedding provider (voyage, genai)")
	embeddingsCmd.Flags().StringVar(&embeddingsOpts.Model, "model", "", "Embedding model name")
	embeddingsCmd.Flags().StringVar(&embeddingsOpts.InputType, "input-type", "", "Voyage input_type hint")
	embeddingsCmd.Flags().IntVar(&embeddingsOpts.BatchSize, "batch-size", 0, "Patterns per request")
	embeddingsCmd.Flags().IntVar(&embeddingsOpts.Concurrency, "concurrency", 0, "Concurrent requests")
}

func runEmbeddings(ctx context.Context, w io.Writer, emb embedding.Embedder, opts embeddingsOptions) error {
	store, err := intent.Load(opts.IntentsPath)
	if err != nil {
		return err
	}

	samples := store.Samples()
	rows := make([]artifact.Row, len(samples))
	for i, s := range samples {
		rows[i] = artifact.Row{Tag: s.Tag, Pattern: s.Pattern, Response: s.Response}
	}
	logger.Infof(ctx, "Embedding %d patterns with %s", len(rows), emb.Name())

	art, err := artifact.Build(ctx, emb, rows, artifact.BuildOptions{
		BatchSize:   opts.BatchSize,
		Concurrency: opts.Concurrency,
	})
	if err != nil {
		return fmt.Errorf("build artifact: %w", err)
	}

	if err := writeFile(opts.OutPath, art.Save); err != nil {
		return err
	}
	fmt.Fprintf(w, "Saved %d embeddings (dim %d, model %s) to %s\n", art.Len(), art.Dimension, art.Model, opts.OutPath)
	return nil
}
