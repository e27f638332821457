package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"edubot/pkg/log"
)

var (
	// Global flags
	logLevel string
	logger   log.Logger = log.NewNop()
)

var rootCmd = &cobra.Command{
	Use:   "edubot-train",
	Short: "Offline tooling for EduBot: train, embed, validate and convert intents",
	Long: `edubot-train builds the artifacts the EduBot API loads at startup.

  classifier   train the TF-IDF + logistic regression model
  embeddings   embed every pattern into the retrieval artifact
  validate     check an intents file for structural problems
  convert      turn a query/response dataset into tagged intents`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger = log.Init(log.ZapConfig{
			Level:        logLevel,
			Mode:         log.ModeDevelopment,
			Encoding:     log.EncodingConsole,
			ColorEnabled: true,
		})
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error)")

	rootCmd.AddCommand(classifierCmd)
	rootCmd.AddCommand(embeddingsCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(convertCmd)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}
