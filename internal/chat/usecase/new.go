package usecase

import (
	"edubot/internal/chat"
	"edubot/internal/intent"
	"edubot/internal/matcher"
	pkgLog "edubot/pkg/log"
)

type implUseCase struct {
	l         pkgLog.Logger
	strategy  chat.Strategy
	store     *intent.Store
	matcher   matcher.Matcher
	responder Responder
}

var _ chat.UseCase = (*implUseCase)(nil)

// New creates a chat UseCase from an already loaded store, matcher and responder.
func New(
	l pkgLog.Logger,
	strategy chat.Strategy,
	store *intent.Store,
	m matcher.Matcher,
	r Responder,
) *implUseCase {
	return &implUseCase{
		l:         l,
		strategy:  strategy,
		store:     store,
		matcher:   m,
		responder: r,
	}
}
