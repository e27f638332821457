package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"edubot/pkg/embedding"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig
	CORS       CORSConfig
	RateLimit  RateLimitConfig

	// EduBot specifics
	Chatbot   ChatbotConfig
	Embedding EmbeddingConfig
	Voyage    VoyageConfig
	GenAI     GenAIConfig
	Qdrant    QdrantConfig
	Telegram  TelegramConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port            int
	Mode            string
	RequestTimeout  time.Duration
	ShutdownTimeout time.Duration
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool

	// Optional rotating file output; empty FilePath disables it.
	FilePath   string
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
}

type CORSConfig struct {
	AllowedOrigins []string
}

type RateLimitConfig struct {
	PerMinute int
	Burst     int
}

// ChatbotConfig selects the matching strategy and its artifacts.
type ChatbotConfig struct {
	Strategy     string
	IntentsPath  string
	ModelPath    string
	ArtifactPath string

	ClassifierThreshold float64
	EmbeddingThreshold  float64

	LowConfidenceMessage string
	NoAnswerMessage      string
	FallbackMessage      string

	// Seed for response selection; 0 picks a random seed at startup.
	Seed uint64
}

// Threshold returns the confidence threshold of the configured strategy.
func (c ChatbotConfig) Threshold() float64 {
	if c.Strategy == StrategyEmbedding {
		return c.EmbeddingThreshold
	}
	return c.ClassifierThreshold
}

// FallbackText returns the below-threshold reply of the configured strategy.
func (c ChatbotConfig) FallbackText() string {
	if c.Strategy == StrategyEmbedding {
		return c.FallbackMessage
	}
	return c.LowConfidenceMessage
}

type EmbeddingConfig struct {
	Provider  string
	Model     string
	BaseURL   string
	InputType string
	TaskType  string
	Index     string

	CacheSize int
	CacheTTL  time.Duration

	BatchSize   int
	Concurrency int
}

type VoyageConfig struct {
	APIKey string
}

type GenAIConfig struct {
	APIKey string
}

type QdrantConfig struct {
	URL            string
	APIKey         string
	CollectionName string
}

type TelegramConfig struct {
	BotToken    string
	WebhookURL  string
	SecretToken string
	// NgrokAPIURL enables webhook URL auto-detection when WebhookURL is empty.
	NgrokAPIURL string
}

// Strategies
const (
	StrategyClassifier = "classifier"
	StrategyEmbedding  = "embedding"
)

// Load loads configuration using Viper.
// A .env file in the working directory is loaded first when present.
// Config file name: config.yaml, searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("error reading .env file: %w", err)
	}

	viper.Reset()
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	if port := viper.GetInt("port"); port != 0 {
		cfg.HTTPServer.Port = port
	}
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.HTTPServer.RequestTimeout = viper.GetDuration("http_server.request_timeout")
	cfg.HTTPServer.ShutdownTimeout = viper.GetDuration("http_server.shutdown_timeout")

	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")
	cfg.Logger.FilePath = viper.GetString("logger.file_path")
	cfg.Logger.MaxSizeMB = viper.GetInt("logger.max_size_mb")
	cfg.Logger.MaxBackups = viper.GetInt("logger.max_backups")
	cfg.Logger.MaxAgeDays = viper.GetInt("logger.max_age_days")

	cfg.CORS.AllowedOrigins = splitList(viper.GetStringSlice("cors.allowed_origins"))
	cfg.RateLimit.PerMinute = viper.GetInt("rate_limit.per_minute")
	cfg.RateLimit.Burst = viper.GetInt("rate_limit.burst")

	// Chatbot
	cfg.Chatbot.Strategy = strings.ToLower(viper.GetString("chatbot.strategy"))
	cfg.Chatbot.IntentsPath = viper.GetString("chatbot.intents_path")
	cfg.Chatbot.ModelPath = viper.GetString("chatbot.model_path")
	cfg.Chatbot.ArtifactPath = viper.GetString("chatbot.artifact_path")
	cfg.Chatbot.ClassifierThreshold = viper.GetFloat64("chatbot.classifier_threshold")
	cfg.Chatbot.EmbeddingThreshold = viper.GetFloat64("chatbot.embedding_threshold")
	cfg.Chatbot.LowConfidenceMessage = viper.GetString("chatbot.low_confidence_message")
	cfg.Chatbot.NoAnswerMessage = viper.GetString("chatbot.no_answer_message")
	cfg.Chatbot.FallbackMessage = viper.GetString("chatbot.fallback_message")
	cfg.Chatbot.Seed = viper.GetUint64("chatbot.seed")

	// Embeddings
	cfg.Embedding.Provider = strings.ToLower(viper.GetString("embedding.provider"))
	cfg.Embedding.Model = viper.GetString("embedding.model")
	cfg.Embedding.BaseURL = viper.GetString("embedding.base_url")
	cfg.Embedding.InputType = viper.GetString("embedding.input_type")
	cfg.Embedding.TaskType = viper.GetString("embedding.task_type")
	cfg.Embedding.Index = strings.ToLower(viper.GetString("embedding.index"))
	cfg.Embedding.CacheSize = viper.GetInt("embedding.cache_size")
	cfg.Embedding.CacheTTL = viper.GetDuration("embedding.cache_ttl")
	cfg.Embedding.BatchSize = viper.GetInt("embedding.batch_size")
	cfg.Embedding.Concurrency = viper.GetInt("embedding.concurrency")

	cfg.Voyage.APIKey = expandEnvVar(viper.GetString("voyage.api_key"))
	if voyageKey := viper.GetString("voyage_api_key"); voyageKey != "" {
		cfg.Voyage.APIKey = voyageKey
	}

	cfg.GenAI.APIKey = expandEnvVar(viper.GetString("genai.api_key"))
	if geminiKey := viper.GetString("gemini_api_key"); geminiKey != "" {
		cfg.GenAI.APIKey = geminiKey
	}

	cfg.Qdrant.URL = viper.GetString("qdrant.url")
	cfg.Qdrant.APIKey = expandEnvVar(viper.GetString("qdrant.api_key"))
	cfg.Qdrant.CollectionName = viper.GetString("qdrant.collection_name")
	if qdrantURL := viper.GetString("qdrant_url"); qdrantURL != "" {
		cfg.Qdrant.URL = qdrantURL
	}

	cfg.Telegram.BotToken = expandEnvVar(viper.GetString("telegram.bot_token"))
	cfg.Telegram.WebhookURL = viper.GetString("telegram.webhook_url")
	cfg.Telegram.SecretToken = expandEnvVar(viper.GetString("telegram.secret_token"))
	cfg.Telegram.NgrokAPIURL = viper.GetString("telegram.ngrok_api_url")
	if tgToken := viper.GetString("telegram_bot_token"); tgToken != "" {
		cfg.Telegram.BotToken = tgToken
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// EmbeddingAPIKey returns the API key of the configured embedding provider.
func (c *Config) EmbeddingAPIKey() string {
	if c.Embedding.Provider == embedding.ProviderGenAI {
		return c.GenAI.APIKey
	}
	return c.Voyage.APIKey
}

// EmbedderConfig maps the embedding section onto the embedder factory.
func (c *Config) EmbedderConfig() embedding.Config {
	return embedding.Config{
		Provider:  c.Embedding.Provider,
		APIKey:    c.EmbeddingAPIKey(),
		Model:     c.Embedding.Model,
		BaseURL:   c.Embedding.BaseURL,
		InputType: c.Embedding.InputType,
		TaskType:  c.Embedding.TaskType,
		CacheSize: c.Embedding.CacheSize,
		CacheTTL:  c.Embedding.CacheTTL,
	}
}

func (c *Config) validate() error {
	switch c.Chatbot.Strategy {
	case StrategyClassifier, StrategyEmbedding:
	default:
		return fmt.Errorf("chatbot.strategy must be %q or %q, got %q", StrategyClassifier, StrategyEmbedding, c.Chatbot.Strategy)
	}
	if c.Chatbot.IntentsPath == "" {
		return fmt.Errorf("chatbot.intents_path is required")
	}
	if c.RateLimit.PerMinute < 0 {
		return fmt.Errorf("rate_limit.per_minute must not be negative")
	}
	return nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("http_server.request_timeout", "15s")
	viper.SetDefault("http_server.shutdown_timeout", "10s")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "development")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)
	viper.SetDefault("logger.max_size_mb", 100)
	viper.SetDefault("logger.max_backups", 5)
	viper.SetDefault("logger.max_age_days", 28)

	viper.SetDefault("rate_limit.per_minute", 120)
	viper.SetDefault("rate_limit.burst", 20)

	// Chatbot defaults
	viper.SetDefault("chatbot.strategy", StrategyClassifier)
	viper.SetDefault("chatbot.intents_path", "data/intents.json")
	viper.SetDefault("chatbot.model_path", "model/intent_model.json")
	viper.SetDefault("chatbot.artifact_path", "model/embeddings.json")
	viper.SetDefault("chatbot.classifier_threshold", 0.25)
	viper.SetDefault("chatbot.embedding_threshold", 0.55)

	// Embedding defaults
	viper.SetDefault("embedding.provider", embedding.ProviderVoyage)
	viper.SetDefault("embedding.index", "memory")
	viper.SetDefault("embedding.cache_size", 1024)
	viper.SetDefault("embedding.cache_ttl", "1h")
	viper.SetDefault("embedding.batch_size", 64)
	viper.SetDefault("embedding.concurrency", 4)

	viper.SetDefault("qdrant.url", "http://localhost:6333")
	viper.SetDefault("qdrant.collection_name", "edubot_patterns")
}

// expandEnvVar expands environment variables in the format ${VAR_NAME}
func expandEnvVar(value string) string {
	if value == "" {
		return value
	}

	if strings.HasPrefix(value, "${") && strings.HasSuffix(value, "}") {
		envVar := value[2 : len(value)-1]
		if envValue := viper.GetString(envVar); envValue != "" {
			return envValue
		}
		if envValue := viper.GetString(strings.ToLower(envVar)); envValue != "" {
			return envValue
		}
		if envValue := os.Getenv(envVar); envValue != "" {
			return envValue
		}
	}

	return value
}

// splitList flattens comma-separated entries, since lists set from env
// arrive as a single string.
func splitList(raw []string) []string {
	var out []string
	for _, item := range raw {
		for _, part := range strings.Split(item, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}
