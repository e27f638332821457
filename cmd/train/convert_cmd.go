package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"edubot/internal/intent"
)

var (
	convertInPath  string
	convertOutPath string
)

var convertCmd = &cobra.Command{
	Use:   "convert",
	Short: "Convert a {query, response} dataset into tagged intents",
	Long: `Reads {"intents": [{"query": ..., "response": ...}]} and writes one intent
per pair tagged intent_<n>. Pairs missing a query or response are skipped.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runConvert(cmd.OutOrStdout(), convertInPath, convertOutPath)
	},
}

func init() {
	convertCmd.Flags().StringVar(&convertInPath, "in", "data/intents.json", "Input query/response dataset")
	convertCmd.Flags().StringVar(&convertOutPath, "out", "data/intents_converted.json", "Output intents file")
}

func runConvert(w io.Writer, in, out string) error {
	data, err := os.ReadFile(in)
	if err != nil {
		return err
	}

	var qa intent.QAFile
	if err := json.Unmarshal(data, &qa); err != nil {
		return fmt.Errorf("decode %s: %w", in, err)
	}

	converted, skipped := intent.Convert(qa)
	for _, i := range skipped {
		fmt.Fprintf(w, "Skipping item %d (missing query/response)\n", i)
	}

	err = writeFile(out, func(dst io.Writer) error {
		enc := json.NewEncoder(dst)
		enc.SetIndent("", "  ")
		enc.SetEscapeHTML(false)
		return enc.Encode(converted)
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "Converted %d intents\n", len(converted.Intents))
	fmt.Fprintf(w, "Saved to %s\n", out)
	return nil
}
