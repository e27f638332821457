package httpserver

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"

	"edubot/internal/chat"
	chatTelegram "edubot/internal/chat/delivery/telegram"
	"edubot/internal/middleware"
	"edubot/pkg/log"
)

const defaultShutdownTimeout = 10 * time.Second

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin             *gin.Engine
	l               log.Logger
	port            int
	mode            string
	environment     string
	shutdownTimeout time.Duration
	corsOrigins     []string
	middleware      middleware.Middleware

	// Chat domain
	chatUC          chat.UseCase
	telegramHandler chatTelegram.Handler
}

// Config is the dependency bag passed to New().
type Config struct {
	Port            int
	Mode            string
	Environment     string
	ShutdownTimeout time.Duration
	Middleware      middleware.Config

	// Chat domain. ChatUseCase is required; it may be a not-ready use case.
	ChatUseCase     chat.UseCase
	TelegramHandler chatTelegram.Handler
}

// New creates a new HTTPServer instance with every route registered.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:               logger,
		gin:             gin.New(),
		port:            cfg.Port,
		mode:            cfg.Mode,
		environment:     cfg.Environment,
		shutdownTimeout: cfg.ShutdownTimeout,
		corsOrigins:     cfg.Middleware.CORSAllowedOrigins,
		middleware:      middleware.New(logger, cfg.Middleware),
		chatUC:          cfg.ChatUseCase,
		telegramHandler: cfg.TelegramHandler,
	}
	if srv.shutdownTimeout <= 0 {
		srv.shutdownTimeout = defaultShutdownTimeout
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	srv.mapHandlers()
	return srv, nil
}

// Handler exposes the router, mainly for tests.
func (srv *HTTPServer) Handler() *gin.Engine {
	return srv.gin
}

func (srv *HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.chatUC == nil {
		return errors.New("chat use case is required")
	}
	return nil
}
