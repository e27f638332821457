package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"edubot/internal/chat"
	pkgErrors "edubot/pkg/errors"
	"edubot/pkg/response"
)

const HomeBanner = "EduBot API is running"

// Home godoc
// @Summary     Service banner
// @Description Plain-text banner confirming the API is up.
// @Tags        Chat
// @Produce     plain
// @Success     200 {string} string "EduBot API is running"
// @Router      / [GET]
func (h *handler) Home(c *gin.Context) {
	c.String(http.StatusOK, HomeBanner+". Use POST /chat to talk to the bot.")
}

// Chat godoc
// @Summary     Ask the bot
// @Description Classifies the message and returns the matched intent, its confidence (3 decimals) and the reply.
// @Tags        Chat
// @Accept      json
// @Produce     json
// @Param       body body chatReq true "User message"
// @Success     200 {object} response.Resp{data=chatResp}
// @Failure     400 {object} response.Resp "Blank or malformed message"
// @Failure     429 {object} response.Resp "Too Many Requests"
// @Failure     503 {object} response.Resp "Intents or model failed to load"
// @Router      /api/v1/chat [POST]
func (h *handler) Chat(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processChatReq(c)
	if err != nil {
		response.Error(c, h.mapError(err), nil)
		return
	}

	output, err := h.uc.HandleQuery(ctx, req.toInput())
	if err != nil {
		h.respondError(c, "uc.HandleQuery", err)
		return
	}

	response.OK(c, h.newChatResp(output))
}

// LegacyChat godoc
// @Summary     Ask the bot (flat body)
// @Description Same matching as /api/v1/chat without the envelope. Errors carry only the reply text.
// @Tags        Chat
// @Accept      json
// @Produce     json
// @Param       body body chatReq true "User message"
// @Success     200 {object} chatResp
// @Failure     400 {object} legacyErrorResp "Blank or malformed message"
// @Failure     429 {object} response.Resp "Too Many Requests"
// @Failure     503 {object} legacyErrorResp "Intents or model failed to load"
// @Router      /chat [POST]
func (h *handler) LegacyChat(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processChatReq(c)
	if err != nil {
		h.respondLegacyError(c, "processChatReq", err)
		return
	}

	output, err := h.uc.HandleQuery(ctx, req.toInput())
	if err != nil {
		h.respondLegacyError(c, "uc.HandleQuery", err)
		return
	}

	c.JSON(http.StatusOK, h.newChatResp(output))
}

// ListIntents godoc
// @Summary     List intents
// @Description Returns every loaded intent tag with its pattern and response counts.
// @Tags        Chat
// @Produce     json
// @Success     200 {object} response.Resp{data=listIntentsResp}
// @Failure     503 {object} response.Resp "Intents or model failed to load"
// @Router      /api/v1/intents [GET]
func (h *handler) ListIntents(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.ListIntents(ctx)
	if err != nil {
		h.respondError(c, "uc.ListIntents", err)
		return
	}

	response.OK(c, h.newListIntentsResp(output))
}

func (h *handler) respondError(c *gin.Context, op string, err error) {
	ctx := c.Request.Context()
	if errors.Is(err, chat.ErrNotReady) {
		h.l.Warnf(ctx, "%s: %v", op, err)
		response.ServiceUnavailable(c, err.Error())
		return
	}

	mapped := h.mapError(err)
	var httpErr *pkgErrors.HTTPError
	if errors.As(mapped, &httpErr) && httpErr.StatusCode < http.StatusInternalServerError {
		h.l.Warnf(ctx, "%s: %v", op, err)
		response.Error(c, mapped, nil)
		return
	}

	h.l.Errorf(ctx, "%s: %v", op, err)
	response.InternalError(c, err)
}

func (h *handler) respondLegacyError(c *gin.Context, op string, err error) {
	ctx := c.Request.Context()
	status, reply := http.StatusInternalServerError, response.DefaultErrorMessage

	var httpErr *pkgErrors.HTTPError
	if errors.As(h.mapError(err), &httpErr) {
		status, reply = httpErr.StatusCode, httpErr.Message
	}
	if errors.Is(err, chat.ErrNotReady) {
		reply = err.Error()
	}

	if status >= http.StatusInternalServerError && !errors.Is(err, chat.ErrNotReady) {
		h.l.Errorf(ctx, "%s: %v", op, err)
	} else {
		h.l.Warnf(ctx, "%s: %v", op, err)
	}
	c.JSON(status, legacyErrorResp{Reply: reply})
}
