package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"edubot/config"
	_ "edubot/docs" // Swagger docs
	"edubot/internal/chat"
	tgDelivery "edubot/internal/chat/delivery/telegram"
	"edubot/internal/chat/usecase"
	"edubot/internal/httpserver"
	"edubot/internal/middleware"
	"edubot/pkg/log"
	"edubot/pkg/telegram"
)

// @title       EduBot API
// @description College enquiry chatbot: intent classification or embedding retrieval over a curated intents dataset.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		os.Exit(1)
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
		FilePath:     cfg.Logger.FilePath,
		MaxSizeMB:    cfg.Logger.MaxSizeMB,
		MaxBackups:   cfg.Logger.MaxBackups,
		MaxAgeDays:   cfg.Logger.MaxAgeDays,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting EduBot...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)
	logger.Infof(ctx, "Strategy: %s, intents: %s", cfg.Chatbot.Strategy, cfg.Chatbot.IntentsPath)

	// 3. Chat domain. A failed load keeps the server up in a not-ready state.
	chatUC, err := usecase.Bootstrap(ctx, logger, usecase.BootstrapConfig{
		Strategy:     chat.Strategy(cfg.Chatbot.Strategy),
		IntentsPath:  cfg.Chatbot.IntentsPath,
		ModelPath:    cfg.Chatbot.ModelPath,
		ArtifactPath: cfg.Chatbot.ArtifactPath,
		Responder: usecase.ResponderOptions{
			Threshold:       cfg.Chatbot.Threshold(),
			FallbackMessage: cfg.Chatbot.FallbackText(),
			NoAnswerMessage: cfg.Chatbot.NoAnswerMessage,
		},
		Seed:             cfg.Chatbot.Seed,
		Embedding:        cfg.EmbedderConfig(),
		Index:            cfg.Embedding.Index,
		QdrantURL:        cfg.Qdrant.URL,
		QdrantAPIKey:     cfg.Qdrant.APIKey,
		QdrantCollection: cfg.Qdrant.CollectionName,
	})
	if err != nil {
		logger.Errorf(ctx, "Chatbot not ready: %v", err)
		chatUC = usecase.NewNotReady(err)
	}

	// 4. Telegram (optional)
	var telegramHandler tgDelivery.Handler
	if cfg.Telegram.BotToken != "" {
		telegramBot := telegram.NewBot(cfg.Telegram.BotToken)
		telegramHandler = tgDelivery.New(logger, chatUC, telegramBot, cfg.Telegram.SecretToken)
		registerWebhook(ctx, logger, telegramBot, cfg.Telegram)
	} else {
		logger.Warn(ctx, "Telegram skipped: TELEGRAM_BOT_TOKEN is missing")
	}

	// 5. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		Environment:     cfg.Environment.Name,
		ShutdownTimeout: cfg.HTTPServer.ShutdownTimeout,
		Middleware: middleware.Config{
			RequestTimeout:     cfg.HTTPServer.RequestTimeout,
			RateLimitPerMin:    cfg.RateLimit.PerMinute,
			RateLimitBurst:     cfg.RateLimit.Burst,
			CORSAllowedOrigins: cfg.CORS.AllowedOrigins,
		},
		ChatUseCase:     chatUC,
		TelegramHandler: telegramHandler,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		os.Exit(1)
	}

	// 6. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		os.Exit(1)
	}

	logger.Info(ctx, "Server stopped gracefully")
}

// registerWebhook points Telegram at this server: the configured URL, or
// the ngrok tunnel when one is running.
func registerWebhook(ctx context.Context, logger log.Logger, bot *telegram.Bot, cfg config.TelegramConfig) {
	webhookURL := cfg.WebhookURL
	if webhookURL == "" && cfg.NgrokAPIURL != "" {
		ngrokURL, err := detectNgrokURL(ctx, cfg.NgrokAPIURL, ngrokInterval)
		if err != nil {
			logger.Warnf(ctx, "Could not detect ngrok URL: %v", err)
		} else {
			webhookURL = ngrokURL + "/webhook/telegram"
			logger.Infof(ctx, "Auto-detected ngrok URL: %s", webhookURL)
		}
	}

	if webhookURL == "" {
		logger.Warn(ctx, "Telegram webhook URL not set; updates will not be delivered")
		return
	}
	if err := bot.SetWebhook(ctx, webhookURL, cfg.SecretToken); err != nil {
		logger.Warnf(ctx, "Failed to set Telegram webhook: %v", err)
		return
	}
	logger.Infof(ctx, "Telegram webhook registered at %s", webhookURL)
}
