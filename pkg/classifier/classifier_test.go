package classifier_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"edubot/pkg/classifier"
)

var (
	trainTexts = []string{
		"What is the admission process?",
		"How do I apply for admission?",
		"Admission requirements and eligibility",
		"Which courses do you offer?",
		"List of courses available",
		"Tell me about the computer science course",
		"What is the placement record?",
		"Which companies visit for placements?",
		"Average placement salary package",
	}
	trainLabels = []string{
		"admissions", "admissions", "admissions",
		"courses", "courses", "courses",
		"placements", "placements", "placements",
	}
)

func TestVectorizerAnalyze(t *testing.T) {
	vec, err := classifier.FitVectorizer(classifier.DefaultVectorizerConfig(), []string{"x"})
	require.ErrorIs(t, err, classifier.ErrEmptyVocabulary)
	assert.Nil(t, vec)

	vec, err = classifier.FitVectorizer(classifier.DefaultVectorizerConfig(), []string{"The Admission PROCESS, explained!"})
	require.NoError(t, err)

	// "the" is a stop word; bigrams are built after stop-word removal.
	assert.Equal(t,
		[]string{"admission", "process", "explained", "admission process", "process explained"},
		vec.Analyze("The Admission PROCESS, explained!"),
	)
	assert.Equal(t, 5, vec.Size())
}

func TestVectorizerConfigAnalyzeStopWordsOnly(t *testing.T) {
	cfg := classifier.DefaultVectorizerConfig()
	assert.Empty(t, cfg.Analyze("Is anyone there?"))
	assert.Equal(t, []string{"help"}, cfg.Analyze("Is anyone there to help?"))
}

func TestTrainedPatternsClearConfidenceGate(t *testing.T) {
	require.Equal(t, classifier.DefaultC, classifier.DefaultTrainConfig().C)

	m, err := classifier.Train(trainTexts, trainLabels, classifier.DefaultConfig())
	require.NoError(t, err)
	for i, text := range trainTexts {
		p := m.Predict(text)
		assert.Equal(t, trainLabels[i], p.Label, text)
		assert.GreaterOrEqual(t, p.Probability, 0.25, text)
	}
}

func TestVectorizerTransformIsUnitLength(t *testing.T) {
	vec, err := classifier.FitVectorizer(classifier.DefaultVectorizerConfig(), trainTexts)
	require.NoError(t, err)

	x := vec.Transform("admission process for courses")
	require.NotEmpty(t, x.Indices)

	var sq float64
	for _, v := range x.Values {
		sq += v * v
	}
	assert.InDelta(t, 1.0, sq, 1e-9)

	empty := vec.Transform("zzz qqq")
	assert.Empty(t, empty.Indices)
}

func TestTrainAndPredict(t *testing.T) {
	model, err := classifier.Train(trainTexts, trainLabels, classifier.DefaultConfig())
	require.NoError(t, err)
	assert.Equal(t, []string{"admissions", "courses", "placements"}, model.Classes())

	for i, text := range trainTexts {
		p := model.Predict(text)
		assert.Equal(t, trainLabels[i], p.Label, "training pattern %q must match its own tag", text)
		assert.GreaterOrEqual(t, p.Probability, 0.25)
	}

	probs := model.PredictProba("admission process")
	var sum float64
	for _, p := range probs {
		sum += p
	}
	assert.InDelta(t, 1.0, sum, 1e-9)

	first := model.Predict("placement companies")
	second := model.Predict("placement companies")
	assert.Equal(t, first, second)
	assert.Equal(t, "placements", first.Label)

	assert.Equal(t, 1.0, model.Accuracy(trainTexts, trainLabels))
}

func TestTrainErrors(t *testing.T) {
	_, err := classifier.Train(nil, nil, classifier.DefaultConfig())
	assert.ErrorIs(t, err, classifier.ErrNoSamples)

	_, err = classifier.Train([]string{"a b"}, []string{"x", "y"}, classifier.DefaultConfig())
	assert.ErrorIs(t, err, classifier.ErrLabelMismatch)

	_, err = classifier.Train([]string{"hello world", "hello there"}, []string{"x", "x"}, classifier.DefaultConfig())
	assert.ErrorIs(t, err, classifier.ErrSingleClass)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	model, err := classifier.Train(trainTexts, trainLabels, classifier.DefaultConfig())
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, model.Save(&buf))

	loaded, err := classifier.Load(&buf)
	require.NoError(t, err)

	for _, text := range append(trainTexts, "random unseen words") {
		assert.Equal(t, model.Predict(text), loaded.Predict(text))
	}
}

func TestLoadRejectsInconsistentModel(t *testing.T) {
	cases := map[string]string{
		"Malformed":       `{"version": 1,`,
		"Wrong Version":   `{"version": 9}`,
		"Empty Vocab":     `{"version": 1, "vocabulary": []}`,
		"IDF Mismatch":    `{"version": 1, "vocabulary": ["a"], "idf": [], "classes": ["x","y"], "coef": [[1],[1]], "intercept": [0,0]}`,
		"Coef Rows":       `{"version": 1, "vocabulary": ["a"], "idf": [1], "classes": ["x","y"], "coef": [[1]], "intercept": [0,0]}`,
		"Coef Width":      `{"version": 1, "vocabulary": ["a"], "idf": [1], "classes": ["x","y"], "coef": [[1],[1,2]], "intercept": [0,0]}`,
		"Intercepts":      `{"version": 1, "vocabulary": ["a"], "idf": [1], "classes": ["x","y"], "coef": [[1],[1]], "intercept": [0]}`,
		"Duplicate Terms": `{"version": 1, "vocabulary": ["a","a"], "idf": [1,1], "classes": ["x","y"], "coef": [[1,1],[1,1]], "intercept": [0,0]}`,
	}
	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := classifier.Load(strings.NewReader(doc))
			assert.ErrorIs(t, err, classifier.ErrInvalidModel)
		})
	}
}

func TestSplit(t *testing.T) {
	train, test := classifier.Split(10, 0.2, 42)
	assert.Len(t, train, 8)
	assert.Len(t, test, 2)

	again, againTest := classifier.Split(10, 0.2, 42)
	assert.Equal(t, train, again)
	assert.Equal(t, test, againTest)

	all, none := classifier.Split(5, 0, 42)
	assert.Equal(t, []int{0, 1, 2, 3, 4}, all)
	assert.Empty(t, none)
}
