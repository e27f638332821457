package intent

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"edubot/internal/model"
)

// Load reads and validates an intents file. The format follows the file
// extension (.yaml/.yml for YAML, anything else JSON). Any problem yields a
// *model.LoadError and no Store.
func Load(path string) (*Store, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, model.NewLoadError(path, err)
	}

	store, err := Parse(data, FormatFromPath(path))
	if err != nil {
		return nil, model.NewLoadError(path, err)
	}
	return store, nil
}

// FormatFromPath picks the format from a file extension.
func FormatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// Decode unmarshals an intents file without validating it.
func Decode(data []byte, format Format) (File, error) {
	var f File
	switch format {
	case FormatJSON:
		if err := json.Unmarshal(data, &f); err != nil {
			return File{}, fmt.Errorf("decode json: %w", err)
		}
	case FormatYAML:
		if err := yaml.Unmarshal(data, &f); err != nil {
			return File{}, fmt.Errorf("decode yaml: %w", err)
		}
	default:
		return File{}, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
	return f, nil
}

// Parse decodes and validates intents. Structural errors are fatal;
// duplicate tags are not (Find returns the first entry).
func Parse(data []byte, format Format) (*Store, error) {
	f, err := Decode(data, format)
	if err != nil {
		return nil, err
	}
	if len(f.Intents) == 0 {
		return nil, ErrNoIntents
	}

	report := Validate(f.Intents)
	if !report.OK() {
		return nil, fmt.Errorf("%w: %s", ErrInvalidIntents, strings.Join(report.Errors, "; "))
	}

	for i := range f.Intents {
		f.Intents[i].Tag = strings.TrimSpace(f.Intents[i].Tag)
	}
	return NewStore(f.Intents), nil
}
