package middleware

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis_rate/v10"
	"go.uber.org/zap"

	"github.com/feral-file/ff-ledger-indexer/internal/adapter"
	apierrors "github.com/feral-file/ff-ledger-indexer/internal/api/shared/errors"
	"github.com/feral-file/ff-ledger-indexer/internal/logger"
)

// RateLimitConfig holds the per client rate limit
type RateLimitConfig struct {
	KeyPrefix         string
	RequestsPerMinute int
}

// RateLimit returns a gin middleware limiting requests per client IP.
// Requests pass when the limiter errors so that a redis outage never takes the API down.
func RateLimit(limiter adapter.RedisRateLimiter, cfg RateLimitConfig) gin.HandlerFunc {
	limit := redis_rate.PerMinute(cfg.RequestsPerMinute)

	return func(c *gin.Context) {
		key := cfg.KeyPrefix + ":" + c.ClientIP()

		res, err := limiter.Allow(c.Request.Context(), key, limit)
		if err != nil {
			logger.WarnCtx(c.Request.Context(), "Rate limiter unavailable, allowing request",
				zap.Error(err),
				zap.String("key", key),
			)
			c.Next()
			return
		}

		c.Header("X-RateLimit-Limit", strconv.Itoa(cfg.RequestsPerMinute))
		c.Header("X-RateLimit-Remaining", strconv.Itoa(res.Remaining))

		if res.Allowed == 0 {
			c.Header("Retry-After", strconv.Itoa(int(res.RetryAfter.Seconds()+0.5)))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error": apierrors.NewRateLimitedError("Too many requests"),
			})
			return
		}

		c.Next()
	}
}
