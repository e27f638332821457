package http

import (
	"github.com/gin-gonic/gin"

	"edubot/internal/chat"
	"edubot/pkg/log"
)

// Handler is the public interface for the chat HTTP delivery layer.
type Handler interface {
	Home(c *gin.Context)
	Chat(c *gin.Context)
	LegacyChat(c *gin.Context)
	ListIntents(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc chat.UseCase
}

// New creates a new HTTP handler for the chat domain.
func New(l log.Logger, uc chat.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
