package http

import (
	"github.com/gin-gonic/gin"

	"edubot/internal/middleware"
)

// RegisterRoutes maps the chat endpoints. POST /chat at the root answers with
// the flat body the bundled web client reads; the rest live under the
// versioned group and use the response envelope.
func RegisterRoutes(root gin.IRouter, v1 *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	root.GET("/", h.Home)
	root.POST("/chat", mw.RateLimit(), h.LegacyChat)

	v1.POST("/chat", mw.RateLimit(), h.Chat)
	v1.GET("/intents", h.ListIntents)
}
