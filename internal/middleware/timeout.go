package middleware

import (
	"context"

	"github.com/gin-gonic/gin"
)

// Timeout puts a deadline on the request context. Handlers and the calls
// they make observe it through ctx; a zero timeout disables it.
func (m Middleware) Timeout() gin.HandlerFunc {
	return func(c *gin.Context) {
		if m.cfg.RequestTimeout <= 0 {
			c.Next()
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), m.cfg.RequestTimeout)
		defer cancel()

		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}
