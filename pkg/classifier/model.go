package classifier

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
)

// FormatVersion is written into every saved model.
const FormatVersion = 1

// Config bundles vectorizer and training settings.
type Config struct {
	Vectorizer VectorizerConfig
	Train      TrainConfig
}

// DefaultConfig is the TF-IDF (1,2)-gram + logistic regression pipeline.
func DefaultConfig() Config {
	return Config{Vectorizer: DefaultVectorizerConfig(), Train: DefaultTrainConfig()}
}

// Model is a trained text classifier. Predict is a pure function of the
// input text and safe for concurrent use.
type Model struct {
	vec *Vectorizer
	lr  *logistic
}

// Prediction is the most probable class and its probability.
type Prediction struct {
	Label       string
	Probability float64
}

// Train fits a model on parallel texts and labels.
func Train(texts, labels []string, cfg Config) (*Model, error) {
	if len(texts) == 0 {
		return nil, ErrNoSamples
	}
	if len(texts) != len(labels) {
		return nil, ErrLabelMismatch
	}

	classes := uniqueSorted(labels)
	if len(classes) < 2 {
		return nil, ErrSingleClass
	}
	classIdx := make(map[string]int, len(classes))
	for i, c := range classes {
		classIdx[c] = i
	}

	vec, err := FitVectorizer(cfg.Vectorizer, texts)
	if err != nil {
		return nil, err
	}

	x := make([]SparseVector, len(texts))
	y := make([]int, len(texts))
	for i, t := range texts {
		x[i] = vec.Transform(t)
		y[i] = classIdx[labels[i]]
	}

	return &Model{vec: vec, lr: fitLogistic(x, y, classes, vec.Size(), cfg.Train)}, nil
}

// Classes returns the class labels in sorted order.
func (m *Model) Classes() []string {
	out := make([]string, len(m.lr.classes))
	copy(out, m.lr.classes)
	return out
}

// PredictProba returns one probability per class, aligned with Classes.
func (m *Model) PredictProba(text string) []float64 {
	probs := make([]float64, len(m.lr.classes))
	m.lr.probaInto(m.vec.Transform(text), probs)
	return probs
}

// Predict returns the most probable class. Ties resolve to the first class.
func (m *Model) Predict(text string) Prediction {
	probs := m.PredictProba(text)
	best := 0
	for c := 1; c < len(probs); c++ {
		if probs[c] > probs[best] {
			best = c
		}
	}
	return Prediction{Label: m.lr.classes[best], Probability: probs[best]}
}

// Accuracy is the share of texts whose predicted label matches.
func (m *Model) Accuracy(texts, labels []string) float64 {
	if len(texts) == 0 {
		return 0
	}
	hits := 0
	for i, t := range texts {
		if m.Predict(t).Label == labels[i] {
			hits++
		}
	}
	return float64(hits) / float64(len(texts))
}

type modelFile struct {
	Version    int              `json:"version"`
	Vectorizer VectorizerConfig `json:"vectorizer"`
	Vocabulary []string         `json:"vocabulary"`
	IDF        []float64        `json:"idf"`
	Classes    []string         `json:"classes"`
	Coef       [][]float64      `json:"coef"`
	Intercept  []float64        `json:"intercept"`
}

// Save writes the model as JSON.
func (m *Model) Save(w io.Writer) error {
	enc := json.NewEncoder(w)
	return enc.Encode(modelFile{
		Version:    FormatVersion,
		Vectorizer: m.vec.cfg,
		Vocabulary: m.vec.terms,
		IDF:        m.vec.idf,
		Classes:    m.lr.classes,
		Coef:       m.lr.weights,
		Intercept:  m.lr.intercepts,
	})
}

// Load reads a model written by Save and checks that every shape agrees.
func Load(r io.Reader) (*Model, error) {
	var f modelFile
	if err := json.NewDecoder(r).Decode(&f); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidModel, err)
	}
	if err := f.check(); err != nil {
		return nil, err
	}

	return &Model{
		vec: newVectorizer(f.Vectorizer, f.Vocabulary, f.IDF),
		lr: &logistic{
			classes:    f.Classes,
			weights:    f.Coef,
			intercepts: f.Intercept,
		},
	}, nil
}

func (f modelFile) check() error {
	switch {
	case f.Version != FormatVersion:
		return fmt.Errorf("%w: unsupported version %d", ErrInvalidModel, f.Version)
	case len(f.Vocabulary) == 0:
		return fmt.Errorf("%w: empty vocabulary", ErrInvalidModel)
	case len(f.IDF) != len(f.Vocabulary):
		return fmt.Errorf("%w: %d idf weights for %d terms", ErrInvalidModel, len(f.IDF), len(f.Vocabulary))
	case len(f.Classes) < 2:
		return fmt.Errorf("%w: need at least two classes, got %d", ErrInvalidModel, len(f.Classes))
	case len(f.Coef) != len(f.Classes):
		return fmt.Errorf("%w: %d coefficient rows for %d classes", ErrInvalidModel, len(f.Coef), len(f.Classes))
	case len(f.Intercept) != len(f.Classes):
		return fmt.Errorf("%w: %d intercepts for %d classes", ErrInvalidModel, len(f.Intercept), len(f.Classes))
	}
	for i, row := range f.Coef {
		if len(row) != len(f.Vocabulary) {
			return fmt.Errorf("%w: coefficient row %d has %d entries, want %d", ErrInvalidModel, i, len(row), len(f.Vocabulary))
		}
	}
	seen := make(map[string]struct{}, len(f.Vocabulary))
	for _, t := range f.Vocabulary {
		if _, dup := seen[t]; dup {
			return fmt.Errorf("%w: duplicate term %q", ErrInvalidModel, t)
		}
		seen[t] = struct{}{}
	}
	return nil
}

func uniqueSorted(labels []string) []string {
	set := map[string]struct{}{}
	for _, l := range labels {
		set[l] = struct{}{}
	}
	out := make([]string, 0, len(set))
	for l := range set {
		out = append(out, l)
	}
	sort.Strings(out)
	return out
}
