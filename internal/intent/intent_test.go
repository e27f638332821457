package intent_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"edubot/internal/intent"
	"edubot/internal/model"
)

const validJSON = `{
  "intents": [
    {"tag": "greeting", "patterns": ["hello", "hi there"], "responses": ["Hello!", "Hi, how can I help?"]},
    {"tag": "admissions", "patterns": ["What is the admission process?"], "responses": ["Apply online."]},
    {"tag": "greeting", "patterns": ["hey"], "responses": ["Hey!"]}
  ]
}`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad(t *testing.T) {
	t.Run("Valid JSON", func(t *testing.T) {
		store, err := intent.Load(writeFile(t, "intents.json", validJSON))
		require.NoError(t, err)
		assert.Equal(t, 3, store.Len())

		e, ok := store.Find("greeting")
		require.True(t, ok)
		assert.Equal(t, []string{"hello", "hi there"}, e.Patterns, "Find returns the first entry for a duplicated tag")

		_, ok = store.Find("missing")
		assert.False(t, ok)
	})

	t.Run("Valid YAML", func(t *testing.T) {
		yamlDoc := "intents:\n  - tag: courses\n    patterns: [\"which courses\"]\n    responses: [\"CS and EE\"]\n"
		store, err := intent.Load(writeFile(t, "intents.yaml", yamlDoc))
		require.NoError(t, err)
		e, ok := store.Find("courses")
		require.True(t, ok)
		assert.Equal(t, []string{"CS and EE"}, e.Responses)
	})

	t.Run("Missing File", func(t *testing.T) {
		_, err := intent.Load(filepath.Join(t.TempDir(), "nope.json"))
		var loadErr *model.LoadError
		require.ErrorAs(t, err, &loadErr)
	})

	t.Run("Malformed JSON", func(t *testing.T) {
		_, err := intent.Load(writeFile(t, "bad.json", `{"intents": [`))
		var loadErr *model.LoadError
		require.ErrorAs(t, err, &loadErr)
	})

	t.Run("Empty Intents", func(t *testing.T) {
		_, err := intent.Load(writeFile(t, "empty.json", `{"intents": []}`))
		require.Error(t, err)
		assert.True(t, errors.Is(err, intent.ErrNoIntents))
	})

	t.Run("Structural Errors Are All Or Nothing", func(t *testing.T) {
		doc := `{"intents": [
			{"tag": "ok", "patterns": ["a"], "responses": ["b"]},
			{"tag": "broken", "patterns": [], "responses": ["b"]}
		]}`
		store, err := intent.Load(writeFile(t, "partial.json", doc))
		assert.Nil(t, store)
		require.Error(t, err)
		assert.True(t, errors.Is(err, intent.ErrInvalidIntents))
		assert.Contains(t, err.Error(), "[broken] No patterns.")
	})
}

func TestValidate(t *testing.T) {
	entries := []intent.Entry{
		{Tag: "  ", Patterns: []string{"x"}, Responses: []string{"y"}},
		{Tag: "no_patterns", Responses: []string{"y"}},
		{Tag: "no_responses", Patterns: []string{"x"}, Responses: []string{}},
		{Tag: "blank_responses", Patterns: []string{"x"}, Responses: []string{" ", ""}},
		{Tag: "dup", Patterns: []string{"x"}, Responses: []string{"y"}},
		{Tag: "dup", Patterns: []string{"z"}, Responses: []string{"w"}},
	}

	report := intent.Validate(entries)

	assert.False(t, report.OK())
	assert.Equal(t, 6, report.Total)
	assert.ElementsMatch(t, []string{
		"[Intent 0] Missing tag.",
		"[no_patterns] No patterns.",
		"[no_responses] No responses.",
		"[blank_responses] Responses are empty strings.",
	}, report.Errors)
	assert.Equal(t, map[string]int{"dup": 2}, report.DuplicateTags)
	require.Len(t, report.Distribution, 5)
	assert.Equal(t, intent.TagCount{Tag: "dup", Count: 2}, report.Distribution[4])
}

func TestSamples(t *testing.T) {
	store, err := intent.Parse([]byte(validJSON), intent.FormatJSON)
	require.NoError(t, err)

	samples := store.Samples()
	require.Len(t, samples, 4)
	assert.Equal(t, intent.Sample{Tag: "greeting", Pattern: "hello", Response: "Hello!"}, samples[0])
	assert.Equal(t, intent.Sample{Tag: "greeting", Pattern: "hi there", Response: "Hi, how can I help?"}, samples[1])
	assert.Equal(t, intent.Sample{Tag: "admissions", Pattern: "What is the admission process?", Response: "Apply online."}, samples[2])
	assert.Equal(t, intent.Sample{Tag: "greeting", Pattern: "hey", Response: "Hey!"}, samples[3])
}

func TestStoreFindFirstAndTags(t *testing.T) {
	store := intent.NewStore([]intent.Entry{
		{Tag: "a", Patterns: []string{"p1"}, Responses: []string{"first"}},
		{Tag: "b", Patterns: []string{"p2"}, Responses: []string{"b"}},
		{Tag: "a", Patterns: []string{"p3"}, Responses: []string{"second"}},
	})

	e, ok := store.Find("a")
	require.True(t, ok)
	assert.Equal(t, []string{"first"}, e.Responses)

	_, ok = store.Find("missing")
	assert.False(t, ok)

	assert.Equal(t, []string{"a", "b"}, store.Tags())
	assert.Equal(t, 3, store.Len())
}

func TestParseUnsupportedFormat(t *testing.T) {
	_, err := intent.Parse([]byte(validJSON), intent.Format("toml"))
	assert.ErrorIs(t, err, intent.ErrUnsupportedFormat)
}

func TestConvert(t *testing.T) {
	qa := intent.QAFile{Intents: []intent.QAItem{
		{Query: "Where is the campus?", Response: "Downtown."},
		{Query: "", Response: "orphan"},
		{Query: "Fees?", Response: ""},
		{Query: "Hostel?", Response: "Yes."},
	}}

	out, skipped := intent.Convert(qa)

	assert.Equal(t, []int{1, 2}, skipped)
	require.Len(t, out.Intents, 2)
	assert.Equal(t, "intent_1", out.Intents[0].Tag)
	assert.Equal(t, "intent_4", out.Intents[1].Tag)
	assert.Equal(t, []string{"Hostel?"}, out.Intents[1].Patterns)
	assert.True(t, intent.Validate(out.Intents).OK())
}
