package telegram

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"edubot/internal/chat"
	pkgErrors "edubot/pkg/errors"
	pkgLog "edubot/pkg/log"
	pkgResponse "edubot/pkg/response"
	pkgTelegram "edubot/pkg/telegram"
)

type handler struct {
	l           pkgLog.Logger
	uc          chat.UseCase
	bot         *pkgTelegram.Bot
	secretToken string
}

// HandleWebhook acknowledges the update with 200 right away and answers the
// message in a background goroutine.
func (h *handler) HandleWebhook(c *gin.Context) {
	ctx := c.Request.Context()

	if h.secretToken != "" && c.GetHeader(pkgTelegram.SecretTokenHeader) != h.secretToken {
		h.l.Warnf(ctx, "telegram handler: rejected update with bad secret token")
		pkgResponse.Error(c, pkgErrors.NewHTTPError(http.StatusUnauthorized, "Unauthorized"), nil)
		return
	}

	var update pkgTelegram.Update
	if err := c.ShouldBindJSON(&update); err != nil {
		h.l.Errorf(ctx, "telegram handler: failed to parse update: %v", err)
		pkgResponse.Error(c, err, nil)
		return
	}

	// Edited messages, channel posts and the like carry no Message.
	if update.Message == nil || update.Message.Chat == nil {
		pkgResponse.OK(c, map[string]string{"status": "ignored"})
		return
	}

	msg := update.Message
	requestID := pkgLog.RequestIDFrom(ctx)

	go func() {
		bgCtx, cancel := context.WithTimeout(pkgLog.WithRequestID(context.Background(), requestID), replyTimeout)
		defer cancel()

		if err := h.processMessage(bgCtx, msg); err != nil {
			h.l.Errorf(bgCtx, "telegram handler: background processMessage failed: %v", err)
		}
	}()

	pkgResponse.OK(c, map[string]string{"status": "accepted"})
}

// processMessage answers a single Telegram message.
func (h *handler) processMessage(ctx context.Context, msg *pkgTelegram.Message) error {
	text := strings.TrimSpace(msg.Text)
	if text == "" {
		return nil
	}

	switch strings.Fields(text)[0] {
	case "/start":
		return h.bot.SendMessageWithMode(ctx, msg.Chat.ID, MsgStart, "Markdown")
	case "/help":
		return h.bot.SendMessageWithMode(ctx, msg.Chat.ID, MsgHelp, "Markdown")
	}

	output, err := h.uc.HandleQuery(ctx, chat.QueryInput{Query: text})
	if err != nil {
		h.l.Errorf(ctx, "telegram handler: HandleQuery failed: %v", err)
		if errors.Is(err, chat.ErrNotReady) {
			return h.bot.SendMessage(ctx, msg.Chat.ID, MsgNotReady)
		}
		return h.bot.SendMessage(ctx, msg.Chat.ID, MsgError)
	}

	h.l.Debugf(ctx, "telegram handler: chat %d -> %s (%.3f)", msg.Chat.ID, output.Label, output.Confidence)
	return h.bot.SendMessage(ctx, msg.Chat.ID, output.Reply)
}
