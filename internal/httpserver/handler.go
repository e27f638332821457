package httpserver

import (
	"context"
	"fmt"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	chatHTTP "edubot/internal/chat/delivery/http"
	"edubot/internal/model"
	"edubot/pkg/response"
)

func (srv *HTTPServer) mapHandlers() {
	srv.registerMiddlewares()
	srv.registerSystemRoutes()
	srv.registerDomainRoutes()
}

func (srv *HTTPServer) registerMiddlewares() {
	mw := srv.middleware
	srv.gin.Use(
		gin.CustomRecovery(srv.recoverPanic),
		mw.RequestID(),
		mw.AccessLog(),
		mw.CORS(),
		mw.Timeout(),
	)

	if srv.environment == string(model.EnvironmentProduction) && len(srv.corsOrigins) == 0 {
		srv.l.Warnf(context.Background(), "CORS allows every origin in production; set cors.allowed_origins")
	}
}

// recoverPanic answers a panicking handler with the 500 envelope.
func (srv *HTTPServer) recoverPanic(c *gin.Context, recovered any) {
	srv.l.Errorf(c.Request.Context(), "httpserver.recoverPanic: %s %s: %v", c.Request.Method, c.Request.URL.Path, recovered)
	response.InternalError(c, fmt.Errorf("panic: %v", recovered))
}

func (srv *HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)

	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))
}

// registerDomainRoutes registers all domain routes.
func (srv *HTTPServer) registerDomainRoutes() {
	ctx := context.Background()

	h := chatHTTP.New(srv.l, srv.chatUC)
	chatHTTP.RegisterRoutes(srv.gin, srv.gin.Group("/api/v1"), h, srv.middleware)

	if srv.telegramHandler != nil {
		srv.gin.POST("/webhook/telegram", srv.telegramHandler.HandleWebhook)
		srv.l.Infof(ctx, "Telegram webhook route registered at POST /webhook/telegram")
	} else {
		srv.l.Infof(ctx, "Telegram handler not configured, skipping webhook route")
	}
}
