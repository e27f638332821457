package usecase

import (
	"context"

	"edubot/internal/chat"
	"edubot/internal/intent"
	"edubot/internal/matcher"
	pkgLog "edubot/pkg/log"
)

// Responder turns a match into the reply sent to the user.
type Responder interface {
	Respond(ctx context.Context, res matcher.MatchResult) chat.QueryOutput
}

// PatternResponses gives the reply stored for one artifact row.
type PatternResponses interface {
	Response(idx int) (string, bool)
}

// ResponderOptions holds the threshold and fixed replies of a responder.
// Empty messages fall back to the package defaults.
type ResponderOptions struct {
	Threshold       float64
	FallbackMessage string
	NoAnswerMessage string
}

type classifierResponder struct {
	l      pkgLog.Logger
	store  *intent.Store
	picker Picker
	opts   ResponderOptions
}

// NewClassifierResponder answers with a random response of the matched tag.
func NewClassifierResponder(l pkgLog.Logger, store *intent.Store, picker Picker, opts ResponderOptions) Responder {
	if opts.FallbackMessage == "" {
		opts.FallbackMessage = chat.DefaultLowConfidenceMessage
	}
	if opts.NoAnswerMessage == "" {
		opts.NoAnswerMessage = chat.DefaultNoAnswerMessage
	}
	return &classifierResponder{l: l, store: store, picker: picker, opts: opts}
}

func (r *classifierResponder) Respond(ctx context.Context, res matcher.MatchResult) chat.QueryOutput {
	if res.Confidence < r.opts.Threshold {
		return chat.QueryOutput{Label: chat.LabelUncertain, Confidence: res.Confidence, Reply: r.opts.FallbackMessage}
	}

	entry, ok := r.store.Find(res.Tag)
	if !ok || len(entry.Responses) == 0 {
		r.l.Warnf(ctx, "%s: model predicted %q but the store has no responses for it", LogPrefixRespond, res.Tag)
		return chat.QueryOutput{Label: chat.LabelUncertain, Confidence: res.Confidence, Reply: r.opts.NoAnswerMessage}
	}

	return chat.QueryOutput{
		Label:      res.Tag,
		Confidence: res.Confidence,
		Reply:      entry.Responses[r.picker.Intn(len(entry.Responses))],
	}
}

type embeddingResponder struct {
	l         pkgLog.Logger
	responses PatternResponses
	opts      ResponderOptions
}

// NewEmbeddingResponder answers with the response stored for the matched
// pattern.
func NewEmbeddingResponder(l pkgLog.Logger, responses PatternResponses, opts ResponderOptions) Responder {
	if opts.FallbackMessage == "" {
		opts.FallbackMessage = chat.DefaultContactMessage
	}
	return &embeddingResponder{l: l, responses: responses, opts: opts}
}

func (r *embeddingResponder) Respond(ctx context.Context, res matcher.MatchResult) chat.QueryOutput {
	fallback := chat.QueryOutput{Label: chat.LabelFallback, Confidence: res.Confidence, Reply: r.opts.FallbackMessage}
	if res.Confidence < r.opts.Threshold {
		return fallback
	}

	reply, ok := r.responses.Response(res.PatternIndex)
	if !ok {
		r.l.Warnf(ctx, "%s: no stored response for pattern %d", LogPrefixRespond, res.PatternIndex)
		return fallback
	}
	return chat.QueryOutput{Label: res.Tag, Confidence: res.Confidence, Reply: reply}
}
