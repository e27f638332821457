package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"edubot/internal/chat"
	"edubot/internal/intent"
	"edubot/pkg/classifier"
)

type classifierOptions struct {
	IntentsPath string
	OutPath     string
	TestSize    float64
	Seed        uint64
	C           float64
	Threshold   float64
}

var classifierOpts classifierOptions

var classifierCmd = &cobra.Command{
	Use:   "classifier",
	Short: "Train the intent classifier and write the model JSON",
	Long: `Trains a TF-IDF (unigrams and bigrams, English stop words) + logistic
regression model on every pattern of the intents file.

With --test-size > 0 a seeded hold-out split is scored first and the
validation accuracy printed; the saved model is then refit on all patterns.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runClassifier(cmd.Context(), cmd.OutOrStdout(), classifierOpts)
	},
}

func init() {
	classifierCmd.Flags().StringVar(&classifierOpts.IntentsPath, "intents", "data/intents.json", "Intents file (JSON or YAML)")
	classifierCmd.Flags().StringVar(&classifierOpts.OutPath, "out", "model/intent_model.json", "Output model path")
	classifierCmd.Flags().Float64Var(&classifierOpts.TestSize, "test-size", 0.2, "Hold-out share for validation (0 disables)")
	classifierCmd.Flags().Uint64Var(&classifierOpts.Seed, "seed", 42, "Split seed")
	classifierCmd.Flags().Float64Var(&classifierOpts.C, "c", classifier.DefaultC, "Inverse L2 regularisation strength")
	classifierCmd.Flags().Float64Var(&classifierOpts.Threshold, "threshold", chat.DefaultClassifierThreshold, "Confidence gate every training pattern is checked against")
}

func runClassifier(ctx context.Context, w io.Writer, opts classifierOptions) error {
	store, err := intent.Load(opts.IntentsPath)
	if err != nil {
		return err
	}

	samples := store.Samples()
	texts := make([]string, len(samples))
	labels := make([]string, len(samples))
	for i, s := range samples {
		texts[i] = s.Pattern
		labels[i] = s.Tag
	}
	logger.Infof(ctx, "Loaded %d patterns across %d tags", len(samples), len(store.Tags()))

	cfg := classifier.DefaultConfig()
	if opts.C > 0 {
		cfg.Train.C = opts.C
	}

	if opts.TestSize > 0 {
		trainIdx, testIdx := classifier.Split(len(texts), opts.TestSize, opts.Seed)
		holdout, err := classifier.Train(pick(texts, trainIdx), pick(labels, trainIdx), cfg)
		if err != nil {
			logger.Warnf(ctx, "Skipping validation: %v", err)
		} else {
			acc := holdout.Accuracy(pick(texts, testIdx), pick(labels, testIdx))
			fmt.Fprintf(w, "Validation accuracy: %.3f (%d train / %d test)\n", acc, len(trainIdx), len(testIdx))
		}
	}

	model, err := classifier.Train(texts, labels, cfg)
	if err != nil {
		return fmt.Errorf("train: %w", err)
	}

	missed := recallMisses(model, texts, labels, opts.Threshold)
	for _, m := range missed {
		fmt.Fprintf(w, "Weak pattern: %q (%s) -> %s %.3f\n", m.Text, m.Want, m.Got.Label, m.Got.Probability)
	}
	fmt.Fprintf(w, "Training recall: %d/%d patterns at or above %.2f\n", len(texts)-len(missed), len(texts), opts.Threshold)

	if err := writeFile(opts.OutPath, model.Save); err != nil {
		return err
	}
	fmt.Fprintf(w, "Saved model with %d classes to %s\n", len(model.Classes()), opts.OutPath)
	return nil
}

type recallMiss struct {
	Text string
	Want string
	Got  classifier.Prediction
}

// recallMisses lists training patterns that do not come back as their own
// tag with at least threshold confidence.
func recallMisses(model *classifier.Model, texts, labels []string, threshold float64) []recallMiss {
	var out []recallMiss
	for i, text := range texts {
		p := model.Predict(text)
		if p.Label != labels[i] || p.Probability < threshold {
			out = append(out, recallMiss{Text: text, Want: labels[i], Got: p})
		}
	}
	return out
}

func pick(items []string, idx []int) []string {
	out := make([]string, len(idx))
	for i, j := range idx {
		out[i] = items[j]
	}
	return out
}

// writeFile creates path and its parent directories and hands it to save.
func writeFile(path string, save func(io.Writer) error) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := save(f); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	return f.Close()
}
