package usecase

import (
	"context"
	"fmt"

	"edubot/internal/chat"
)

type notReadyUseCase struct {
	cause error
}

// NewNotReady returns a UseCase that refuses every call with
// chat.ErrNotReady wrapping cause.
func NewNotReady(cause error) chat.UseCase {
	return &notReadyUseCase{cause: cause}
}

func (uc *notReadyUseCase) HandleQuery(context.Context, chat.QueryInput) (chat.QueryOutput, error) {
	return chat.QueryOutput{}, uc.Ready()
}

func (uc *notReadyUseCase) ListIntents(context.Context) (chat.ListIntentsOutput, error) {
	return chat.ListIntentsOutput{}, uc.Ready()
}

func (uc *notReadyUseCase) Ready() error {
	return fmt.Errorf("%w: %w", chat.ErrNotReady, uc.cause)
}
