package middleware

import (
	"context"
	"fmt"
	"time"

	"github.com/ariebrainware/voicenotes-api/util"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

const (
	// Rate limiting defaults
	defaultRateLimit  = 100         // 100 requests
	defaultRateWindow = time.Minute // per minute
)

// RateLimitConfig holds configuration for rate limiting. The Redis client is
// injected rather than pulled from a package singleton so tests and multiple
// router setups can carry their own counter store.
type RateLimitConfig struct {
	Limit  int
	Window time.Duration
	Client *redis.Client
}

// RateLimiter creates a rate limiting middleware. Requests are counted per
// API key (falling back to client IP for unauthenticated callers) within a
// fixed window; counters expire with the window.
func RateLimiter(config RateLimitConfig) gin.HandlerFunc {
	if config.Limit == 0 {
		config.Limit = defaultRateLimit
	}
	if config.Window == 0 {
		config.Window = defaultRateWindow
	}

	return func(c *gin.Context) {
		clientKey := c.GetHeader("X-API-Key")
		if clientKey == "" {
			clientKey = c.ClientIP()
		}

		// Create rate limit key
		key := fmt.Sprintf("ratelimit:%s", clientKey)

		// Check rate limit
		allowed, err := checkRateLimit(config.Client, key, config.Limit, config.Window)
		if err != nil {
			// If rate limiting fails, log the error but allow the request
			// to prevent denial of service due to Redis unavailability
			util.LogSecurityEvent(util.SecurityEvent{
				EventType: util.EventSuspiciousActivity,
				IP:        c.ClientIP(),
				Message:   fmt.Sprintf("Rate limit check failed: %v", err),
			})
			c.Next()
			return
		}

		if !allowed {
			// Log rate limit exceeded
			util.LogRateLimitExceeded(clientKey, c.ClientIP(), c.Request.URL.Path)

			util.CallTooManyRequests(c, util.APIErrorParams{
				Msg: "Too many requests",
				Err: fmt.Errorf("rate limit exceeded"),
			})
			c.Abort()
			return
		}

		c.Next()
	}
}

// checkRateLimit checks if a request is within rate limits
// Returns true if allowed, false if rate limit exceeded
func checkRateLimit(rdb *redis.Client, key string, limit int, window time.Duration) (bool, error) {
	if rdb == nil {
		// No counter store configured; allow the request.
		return true, nil
	}

	ctx := context.Background()

	// Use Redis pipeline for atomic operations
	pipe := rdb.Pipeline()

	// Increment counter
	incrCmd := pipe.Incr(ctx, key)

	// Set expiration on first request
	pipe.Expire(ctx, key, window)

	// Execute pipeline
	_, err := pipe.Exec(ctx)
	if err != nil && err != redis.Nil {
		return false, fmt.Errorf("failed to check rate limit: %w", err)
	}

	// Get the counter value
	count := incrCmd.Val()

	return count <= int64(limit), nil
}

// ResetRateLimit resets the rate limit counter for a client key (useful for
// testing or admin operations).
func ResetRateLimit(rdb *redis.Client, clientKey string) error {
	if rdb == nil {
		return fmt.Errorf("redis not available")
	}

	key := fmt.Sprintf("ratelimit:%s", clientKey)
	ctx := context.Background()

	return rdb.Del(ctx, key).Err()
}
