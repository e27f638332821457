package classifier

import (
	"math"
	"regexp"
	"sort"
	"strings"
)

// tokenPattern keeps runs of two or more word characters.
var tokenPattern = regexp.MustCompile(`[\p{L}\p{N}_]{2,}`)

// VectorizerConfig controls text analysis.
type VectorizerConfig struct {
	Lowercase bool `json:"lowercase"`
	StopWords bool `json:"stop_words"`
	MinN      int  `json:"min_n"`
	MaxN      int  `json:"max_n"`
}

// DefaultVectorizerConfig is lowercase, English stop words, unigrams + bigrams.
func DefaultVectorizerConfig() VectorizerConfig {
	return VectorizerConfig{Lowercase: true, StopWords: true, MinN: 1, MaxN: 2}
}

// Analyze returns the terms doc yields under c. An empty result means doc
// maps to the zero vector and cannot be told apart from unknown input.
func (c VectorizerConfig) Analyze(doc string) []string {
	return analyze(c, doc)
}

// SparseVector holds the non-zero entries of a feature vector, indices ascending.
type SparseVector struct {
	Indices []int
	Values  []float64
}

// Vectorizer is a fitted TF-IDF transformer. It is read-only after fitting.
type Vectorizer struct {
	cfg   VectorizerConfig
	terms []string
	vocab map[string]int
	idf   []float64
}

// FitVectorizer learns the vocabulary and smoothed idf weights from docs.
func FitVectorizer(cfg VectorizerConfig, docs []string) (*Vectorizer, error) {
	df := map[string]int{}
	for _, d := range docs {
		seen := map[string]struct{}{}
		for _, term := range analyze(cfg, d) {
			if _, ok := seen[term]; ok {
				continue
			}
			seen[term] = struct{}{}
			df[term]++
		}
	}
	if len(df) == 0 {
		return nil, ErrEmptyVocabulary
	}

	terms := make([]string, 0, len(df))
	for term := range df {
		terms = append(terms, term)
	}
	sort.Strings(terms)

	n := float64(len(docs))
	idf := make([]float64, len(terms))
	for i, term := range terms {
		idf[i] = math.Log((1+n)/(1+float64(df[term]))) + 1
	}

	return newVectorizer(cfg, terms, idf), nil
}

func newVectorizer(cfg VectorizerConfig, terms []string, idf []float64) *Vectorizer {
	vocab := make(map[string]int, len(terms))
	for i, t := range terms {
		vocab[t] = i
	}
	return &Vectorizer{cfg: cfg, terms: terms, vocab: vocab, idf: idf}
}

// Size is the number of features.
func (v *Vectorizer) Size() int {
	return len(v.terms)
}

// Analyze splits doc into the terms the vectorizer counts.
func (v *Vectorizer) Analyze(doc string) []string {
	return analyze(v.cfg, doc)
}

// Transform returns the l2-normalised tf-idf vector of doc.
// Terms outside the vocabulary are ignored.
func (v *Vectorizer) Transform(doc string) SparseVector {
	counts := map[int]float64{}
	for _, term := range v.Analyze(doc) {
		if idx, ok := v.vocab[term]; ok {
			counts[idx]++
		}
	}

	vec := SparseVector{
		Indices: make([]int, 0, len(counts)),
		Values:  make([]float64, 0, len(counts)),
	}
	for idx := range counts {
		vec.Indices = append(vec.Indices, idx)
	}
	sort.Ints(vec.Indices)

	var norm float64
	for _, idx := range vec.Indices {
		w := counts[idx] * v.idf[idx]
		vec.Values = append(vec.Values, w)
		norm += w * w
	}
	if norm > 0 {
		norm = math.Sqrt(norm)
		for i := range vec.Values {
			vec.Values[i] /= norm
		}
	}
	return vec
}

func analyze(cfg VectorizerConfig, doc string) []string {
	if cfg.Lowercase {
		doc = strings.ToLower(doc)
	}

	raw := tokenPattern.FindAllString(doc, -1)
	tokens := raw[:0]
	for _, t := range raw {
		if cfg.StopWords {
			if _, stop := englishStopWords[t]; stop {
				continue
			}
		}
		tokens = append(tokens, t)
	}

	minN, maxN := cfg.MinN, cfg.MaxN
	if minN < 1 {
		minN = 1
	}
	if maxN < minN {
		maxN = minN
	}

	var terms []string
	for n := minN; n <= maxN; n++ {
		for i := 0; i+n <= len(tokens); i++ {
			terms = append(terms, strings.Join(tokens[i:i+n], " "))
		}
	}
	return terms
}
