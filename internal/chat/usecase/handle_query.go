package usecase

import (
	"context"

	"edubot/internal/chat"
)

// HandleQuery runs Respond(Classify(query)).
func (uc *implUseCase) HandleQuery(ctx context.Context, input chat.QueryInput) (chat.QueryOutput, error) {
	res := uc.matcher.Classify(ctx, input.Query)
	out := uc.responder.Respond(ctx, res)

	uc.l.Infof(ctx, "%s: label=%s confidence=%.3f", LogPrefixHandleQuery, out.Label, out.Confidence)
	return out, nil
}

// ListIntents summarises the store in file order.
func (uc *implUseCase) ListIntents(ctx context.Context) (chat.ListIntentsOutput, error) {
	entries := uc.store.Entries()
	out := chat.ListIntentsOutput{
		Strategy: uc.strategy,
		Intents:  make([]chat.IntentSummary, 0, len(entries)),
	}
	for _, e := range entries {
		out.Intents = append(out.Intents, chat.IntentSummary{
			Tag:       e.Tag,
			Patterns:  len(e.Patterns),
			Responses: len(e.Responses),
		})
	}
	return out, nil
}

func (uc *implUseCase) Ready() error {
	return nil
}
