package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"edubot/internal/intent"
	"edubot/pkg/classifier"
)

var errValidationFailed = errors.New("intents file has structural issues")

var validateIntentsPath string

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check an intents file for missing tags, patterns or responses",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runValidate(cmd.OutOrStdout(), validateIntentsPath)
	},
}

func init() {
	validateCmd.Flags().StringVar(&validateIntentsPath, "intents", "data/intents.json", "Intents file (JSON or YAML)")
}

// termlessPatterns lists patterns the classifier's analyzer reduces to nothing.
func termlessPatterns(entries []intent.Entry) []string {
	cfg := classifier.DefaultVectorizerConfig()
	var out []string
	for _, e := range entries {
		for _, p := range e.Patterns {
			if strings.TrimSpace(p) != "" && len(cfg.Analyze(p)) == 0 {
				out = append(out, fmt.Sprintf("[%s] %q", strings.TrimSpace(e.Tag), p))
			}
		}
	}
	return out
}

// runValidate prints the report and returns errValidationFailed when any
// structural error was found. Duplicate tags and term-less patterns are only
// reported.
func runValidate(w io.Writer, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	f, err := intent.Decode(data, intent.FormatFromPath(path))
	if err != nil {
		return err
	}

	report := intent.Validate(f.Intents)
	fmt.Fprintf(w, "Total intents: %d\n", report.Total)

	if len(report.DuplicateTags) > 0 {
		fmt.Fprintln(w, "\nDuplicate tags found:")
		for _, tc := range report.Distribution {
			if n, dup := report.DuplicateTags[tc.Tag]; dup {
				fmt.Fprintf(w, " - %s (%d times)\n", tc.Tag, n)
			}
		}
	}

	if empty := termlessPatterns(f.Intents); len(empty) > 0 {
		fmt.Fprintln(w, "\nPatterns with no terms after stop-word removal (the classifier cannot tell them from unknown input):")
		for _, e := range empty {
			fmt.Fprintln(w, " -", e)
		}
	}

	if !report.OK() {
		fmt.Fprintln(w, "\nIssues found:")
		for _, e := range report.Errors {
			fmt.Fprintln(w, " -", e)
		}
	} else {
		fmt.Fprintln(w, "\nNo structural issues found.")
	}

	fmt.Fprintln(w, "\nTag distribution:")
	for _, tc := range report.Distribution {
		fmt.Fprintf(w, " - %s: %d intent(s)\n", tc.Tag, tc.Count)
	}

	if !report.OK() {
		return errValidationFailed
	}
	return nil
}
