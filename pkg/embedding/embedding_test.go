package embedding_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"edubot/pkg/embedding"
)

// countingEmbedder maps each text to a vector derived from its length and
// records every batch it receives.
type countingEmbedder struct {
	mu      sync.Mutex
	batches [][]string
	err     error
}

func (e *countingEmbedder) Embed(_ context.Context, texts []string) ([][]float32, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.err != nil {
		return nil, e.err
	}
	e.batches = append(e.batches, append([]string(nil), texts...))
	out := make([][]float32, len(texts))
	for i, t := range texts {
		out[i] = []float32{float32(len(t)), 1}
	}
	return out, nil
}

func (e *countingEmbedder) Name() string { return "fake:test" }

func TestCosine(t *testing.T) {
	assert.InDelta(t, 1.0, embedding.Cosine([]float32{1, 2, 3}, []float32{2, 4, 6}), 1e-9)
	assert.InDelta(t, 0.0, embedding.Cosine([]float32{1, 0}, []float32{0, 1}), 1e-9)
	assert.InDelta(t, -1.0, embedding.Cosine([]float32{1, 0}, []float32{-1, 0}), 1e-9)

	assert.Zero(t, embedding.Cosine([]float32{1}, []float32{1, 2}))
	assert.Zero(t, embedding.Cosine(nil, nil))
	assert.Zero(t, embedding.Cosine([]float32{0, 0}, []float32{1, 1}))
}

func TestCachedEmbedder(t *testing.T) {
	inner := &countingEmbedder{}
	cached := embedding.NewCached(inner, 16, time.Minute)
	ctx := context.Background()

	first, err := cached.Embed(ctx, []string{"hello", "hi"})
	require.NoError(t, err)
	assert.Equal(t, [][]float32{{5, 1}, {2, 1}}, first)

	second, err := cached.Embed(ctx, []string{"hi", "admissions", "hello"})
	require.NoError(t, err)
	assert.Equal(t, [][]float32{{2, 1}, {10, 1}, {5, 1}}, second)

	// Only the miss reached the inner embedder on the second call.
	require.Len(t, inner.batches, 2)
	assert.Equal(t, []string{"admissions"}, inner.batches[1])

	_, err = cached.Embed(ctx, []string{"hello"})
	require.NoError(t, err)
	assert.Len(t, inner.batches, 2)

	assert.Equal(t, "fake:test", cached.Name())
}

func TestCachedEmbedderPropagatesErrors(t *testing.T) {
	boom := errors.New("boom")
	cached := embedding.NewCached(&countingEmbedder{err: boom}, 4, time.Minute)

	_, err := cached.Embed(context.Background(), []string{"x"})
	assert.ErrorIs(t, err, boom)
}

func TestEmbedOne(t *testing.T) {
	vec, err := embedding.EmbedOne(context.Background(), &countingEmbedder{}, "abc")
	require.NoError(t, err)
	assert.Equal(t, []float32{3, 1}, vec)
}

func TestNewFromConfig(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasSuffix(r.URL.Path, "/embeddings") {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"object":"list","data":[{"object":"embedding","embedding":[0.5,0.5],"index":0}],"model":"voyage-3-lite"}`))
	}))
	defer ts.Close()

	t.Run("Voyage", func(t *testing.T) {
		e, err := embedding.New(context.Background(), embedding.Config{
			Provider:  embedding.ProviderVoyage,
			APIKey:    "key",
			Model:     "voyage-3-lite",
			BaseURL:   ts.URL,
			CacheSize: 8,
			CacheTTL:  time.Minute,
		})
		require.NoError(t, err)
		assert.Equal(t, "voyage:voyage-3-lite", e.Name())

		vec, err := embedding.EmbedOne(context.Background(), e, "admissions")
		require.NoError(t, err)
		assert.Equal(t, []float32{0.5, 0.5}, vec)
	})

	t.Run("Voyage Missing Key", func(t *testing.T) {
		_, err := embedding.New(context.Background(), embedding.Config{Provider: embedding.ProviderVoyage})
		assert.ErrorIs(t, err, embedding.ErrMissingAPIKey)
	})

	t.Run("GenAI Missing Key", func(t *testing.T) {
		_, err := embedding.New(context.Background(), embedding.Config{Provider: embedding.ProviderGenAI})
		assert.ErrorIs(t, err, embedding.ErrMissingAPIKey)
	})

	t.Run("Unknown Provider", func(t *testing.T) {
		_, err := embedding.New(context.Background(), embedding.Config{Provider: "openai"})
		assert.ErrorIs(t, err, embedding.ErrUnknownProvider)
	})
}
