package middleware

import (
	"time"

	"edubot/pkg/log"
)

// Config holds the tunables of the HTTP middlewares.
type Config struct {
	RequestTimeout time.Duration

	RateLimitPerMin int
	RateLimitBurst  int

	CORSAllowedOrigins []string
}

type Middleware struct {
	l       log.Logger
	cfg     Config
	limiter *rateLimiter
}

func New(l log.Logger, cfg Config) Middleware {
	return Middleware{
		l:       l,
		cfg:     cfg,
		limiter: newRateLimiter(cfg.RateLimitPerMin, cfg.RateLimitBurst),
	}
}
