// Package middleware provides HTTP middleware for the API endpoints.
package middleware

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	domainerror "github.com/lifesync/backend/internal/domain/error"
	"github.com/lifesync/backend/internal/integration/entrypoint/dto"
)

const (
	// defaultMaxAttempts is the default number of allowed attempts per window.
	defaultMaxAttempts = 5
	// defaultWindowDuration is the default time window for rate limiting.
	defaultWindowDuration = 15 * time.Minute

	rateLimitKeyPrefix = "ratelimit:"
)

// RateLimiter provides Redis-backed, IP-based rate limiting with a fixed window.
// When Redis is unreachable requests are allowed through; sign-in availability
// wins over strict limiting.
type RateLimiter struct {
	client         *redis.Client
	scope          string
	maxAttempts    int
	windowDuration time.Duration
}

// NewRateLimiter creates a rate limiter with default settings for the given
// scope (e.g. "sign-in"). The scope keeps counters separate per endpoint.
func NewRateLimiter(client *redis.Client, scope string) *RateLimiter {
	return &RateLimiter{
		client:         client,
		scope:          scope,
		maxAttempts:    defaultMaxAttempts,
		windowDuration: defaultWindowDuration,
	}
}

// NewRateLimiterWithConfig creates a rate limiter with custom settings.
func NewRateLimiterWithConfig(client *redis.Client, scope string, maxAttempts int, windowDuration time.Duration) *RateLimiter {
	return &RateLimiter{
		client:         client,
		scope:          scope,
		maxAttempts:    maxAttempts,
		windowDuration: windowDuration,
	}
}

// Middleware returns a Gin middleware handler that enforces rate limiting.
// Rejected requests get a 429 with a Retry-After header in seconds.
func (rl *RateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		// Skip rate limiting in E2E mode or test environment
		if os.Getenv("E2E_MODE") == "true" || os.Getenv("ENV") == "test" {
			c.Next()
			return
		}

		clientIP := c.ClientIP()
		if clientIP == "" {
			clientIP = c.Request.RemoteAddr
		}

		allowed, retryAfter := rl.allow(c.Request.Context(), clientIP)
		if !allowed {
			c.Header("Retry-After", strconv.Itoa(int(retryAfter.Seconds())))
			c.JSON(http.StatusTooManyRequests, dto.ErrorResponse{
				Error: "Too many requests. Please try again later.",
				Code:  string(domainerror.ErrCodeRateLimited),
			})
			c.Abort()
			return
		}

		c.Next()
	}
}

// allow increments the counter for the key and reports whether the request
// fits in the current window. retryAfter is only meaningful when not allowed.
func (rl *RateLimiter) allow(ctx context.Context, key string) (bool, time.Duration) {
	if rl.client == nil {
		return true, 0
	}

	redisKey := fmt.Sprintf("%s%s:%s", rateLimitKeyPrefix, rl.scope, key)

	count, err := rl.client.Incr(ctx, redisKey).Result()
	if err != nil {
		slog.Warn("Rate limiter unavailable, allowing request", "error", err)
		return true, 0
	}

	// First hit in the window starts the expiry clock
	if count == 1 {
		if err := rl.client.Expire(ctx, redisKey, rl.windowDuration).Err(); err != nil {
			slog.Warn("Failed to set rate limit expiry", "key", redisKey, "error", err)
		}
	}

	if count <= int64(rl.maxAttempts) {
		return true, 0
	}

	ttl, err := rl.client.TTL(ctx, redisKey).Result()
	if err != nil || ttl < 0 {
		ttl = rl.windowDuration
	}
	return false, ttl
}

// Reset clears all rate limit counters for this scope (useful for testing).
func (rl *RateLimiter) Reset(ctx context.Context) error {
	pattern := fmt.Sprintf("%s%s:*", rateLimitKeyPrefix, rl.scope)

	iter := rl.client.Scan(ctx, 0, pattern, 0).Iterator()
	for iter.Next(ctx) {
		if err := rl.client.Del(ctx, iter.Val()).Err(); err != nil {
			return err
		}
	}
	return iter.Err()
}
