package middleware

import (
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/time/rate"

	"edubot/pkg/response"
)

const (
	rateLimitMaxClients = 10000
	rateLimitClientTTL  = 5 * time.Minute
)

// RateLimit throttles each client IP. A non-positive per-minute rate disables it.
func (m Middleware) RateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		if m.limiter == nil {
			c.Next()
			return
		}

		ip := c.ClientIP()
		if !m.limiter.Allow(ip) {
			m.l.Warnf(c.Request.Context(), "rate limit exceeded for %s", ip)
			response.TooManyRequests(c)
			return
		}
		c.Next()
	}
}

// rateLimiter keeps one token bucket per key; idle keys expire.
type rateLimiter struct {
	mu       sync.Mutex
	limiters *expirable.LRU[string, *rate.Limiter]
	rate     rate.Limit
	burst    int
}

func newRateLimiter(requestsPerMin, burst int) *rateLimiter {
	if requestsPerMin <= 0 {
		return nil
	}
	if burst <= 0 {
		burst = max(1, requestsPerMin/10)
	}
	return &rateLimiter{
		limiters: expirable.NewLRU[string, *rate.Limiter](rateLimitMaxClients, nil, rateLimitClientTTL),
		rate:     rate.Limit(float64(requestsPerMin) / 60.0),
		burst:    burst,
	}
}

func (rl *rateLimiter) Allow(key string) bool {
	rl.mu.Lock()
	limiter, ok := rl.limiters.Get(key)
	if !ok {
		limiter = rate.NewLimiter(rl.rate, rl.burst)
		rl.limiters.Add(key, limiter)
	}
	rl.mu.Unlock()

	return limiter.Allow()
}
