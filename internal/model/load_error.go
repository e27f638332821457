package model

import "fmt"

// LoadError reports that a startup artifact (intents file, classifier model,
// embedding table) is missing or structurally invalid. A service that hits a
// LoadError stays not-ready until the artifact is fixed and the process restarted.
type LoadError struct {
	Source string
	Err    error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("load %s: %v", e.Source, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// NewLoadError wraps err as a LoadError for source.
func NewLoadError(source string, err error) *LoadError {
	return &LoadError{Source: source, Err: err}
}
