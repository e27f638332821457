package http

import (
	"strings"

	"github.com/gin-gonic/gin"

	"edubot/internal/chat"
	pkgErrors "edubot/pkg/errors"
)

// processChatReq binds the chat body and rejects blank messages.
func (h *handler) processChatReq(c *gin.Context) (chatReq, error) {
	var req chatReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Warnf(c.Request.Context(), "chat.delivery.http.processChatReq: %v", err)
		return req, pkgErrors.ErrBadRequest
	}

	req.Message = strings.TrimSpace(req.Message)
	if req.Message == "" {
		return req, chat.ErrEmptyQuery
	}
	return req, nil
}
