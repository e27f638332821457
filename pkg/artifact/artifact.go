// Package artifact reads, writes and builds the precomputed per-pattern
// embedding table used by the embedding matcher.
package artifact

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
)

// Artifact holds one row per pattern as parallel arrays.
type Artifact struct {
	Model      string      `json:"model"`
	Dimension  int         `json:"dimension"`
	Tags       []string    `json:"tags"`
	Patterns   []string    `json:"patterns"`
	Responses  []string    `json:"responses"`
	Embeddings [][]float32 `json:"embeddings"`
}

// Len is the number of rows.
func (a *Artifact) Len() int {
	return len(a.Embeddings)
}

// Validate checks that the artifact is non-empty, that every array has the
// same length and that every vector has Dimension entries.
func (a *Artifact) Validate() error {
	n := len(a.Embeddings)
	switch {
	case n == 0:
		return ErrEmpty
	case len(a.Tags) != n, len(a.Patterns) != n, len(a.Responses) != n:
		return fmt.Errorf("%w: %d tags, %d patterns, %d responses, %d embeddings",
			ErrLengthMismatch, len(a.Tags), len(a.Patterns), len(a.Responses), n)
	case a.Dimension <= 0:
		return fmt.Errorf("%w: dimension %d", ErrDimensionMismatch, a.Dimension)
	case strings.TrimSpace(a.Model) == "":
		return ErrMissingModel
	}
	for i, v := range a.Embeddings {
		if len(v) != a.Dimension {
			return fmt.Errorf("%w: row %d has %d values, want %d", ErrDimensionMismatch, i, len(v), a.Dimension)
		}
	}
	return nil
}

// Load decodes and validates an artifact.
func Load(r io.Reader) (*Artifact, error) {
	var a Artifact
	if err := json.NewDecoder(r).Decode(&a); err != nil {
		return nil, fmt.Errorf("decode artifact: %w", err)
	}
	if err := a.Validate(); err != nil {
		return nil, err
	}
	return &a, nil
}

// LoadFile opens path and calls Load.
func LoadFile(path string) (*Artifact, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Load(f)
}

// Save writes the artifact as JSON.
func (a *Artifact) Save(w io.Writer) error {
	return json.NewEncoder(w).Encode(a)
}

// SaveFile writes the artifact to path, replacing any existing file.
func (a *Artifact) SaveFile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := a.Save(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
