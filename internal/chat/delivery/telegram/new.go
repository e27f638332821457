package telegram

import (
	"github.com/gin-gonic/gin"

	"edubot/internal/chat"
	pkgLog "edubot/pkg/log"
	pkgTelegram "edubot/pkg/telegram"
)

// Handler is the Telegram webhook delivery for the chat domain.
type Handler interface {
	HandleWebhook(c *gin.Context)
}

// New creates a webhook handler. A non-empty secretToken must match the
// X-Telegram-Bot-Api-Secret-Token header of every update.
func New(l pkgLog.Logger, uc chat.UseCase, bot *pkgTelegram.Bot, secretToken string) Handler {
	return &handler{
		l:           l,
		uc:          uc,
		bot:         bot,
		secretToken: secretToken,
	}
}
