package embedding

import (
	"context"
	"fmt"

	"google.golang.org/genai"
)

const (
	DefaultGenAIModel    = "gemini-embedding-001"
	DefaultGenAITaskType = "SEMANTIC_SIMILARITY"
)

type genaiEmbedder struct {
	client   *genai.Client
	model    string
	taskType string
}

// NewGenAI creates an embedder backed by the Gemini API.
func NewGenAI(ctx context.Context, apiKey, model, taskType string) (Embedder, error) {
	if apiKey == "" {
		return nil, ErrMissingAPIKey
	}
	if model == "" {
		model = DefaultGenAIModel
	}
	if taskType == "" {
		taskType = DefaultGenAITaskType
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create GenAI client: %w", err)
	}

	return &genaiEmbedder{client: client, model: model, taskType: taskType}, nil
}

func (e *genaiEmbedder) Embed(ctx context.Context, texts []string) ([][]float32, error) {
	if len(texts) == 0 {
		return nil, ErrEmptyResult
	}

	contents := make([]*genai.Content, len(texts))
	for i, text := range texts {
		contents[i] = genai.NewContentFromText(text, genai.RoleUser)
	}

	result, err := e.client.Models.EmbedContent(ctx, e.model, contents, &genai.EmbedContentConfig{
		TaskType: e.taskType,
	})
	if err != nil {
		return nil, fmt.Errorf("GenAI embed failed: %w", err)
	}
	if len(result.Embeddings) != len(texts) {
		return nil, fmt.Errorf("GenAI returned %d embeddings for %d texts", len(result.Embeddings), len(texts))
	}

	out := make([][]float32, len(result.Embeddings))
	for i, emb := range result.Embeddings {
		out[i] = emb.Values
	}
	return out, nil
}

func (e *genaiEmbedder) Name() string {
	return "genai:" + e.model
}
