package middleware

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"vidstream/pkg/logger"
	"vidstream/pkg/metrics"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	gobreaker "github.com/sony/gobreaker/v2"
)

const rateLimitBreakerName = "rate-limit-redis"

func newRateLimitBreaker(log *logger.Logger) *gobreaker.CircuitBreaker[int64] {
	metrics.CircuitBreakerState.WithLabelValues(rateLimitBreakerName).Set(0)

	return gobreaker.NewCircuitBreaker[int64](gobreaker.Settings{
		Name:        rateLimitBreakerName,
		MaxRequests: 1,
		Interval:    time.Minute,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			log.Warn("[CIRCUIT BREAKER] %s: %s -> %s", name, from.String(), to.String())
			metrics.CircuitBreakerState.WithLabelValues(name).Set(float64(to))
		},
	})
}

// RateLimitMiddleware allows limit requests per window per user (or client IP)
// and path, counted in redis. While redis keeps failing the breaker opens and
// requests pass through unlimited.
func RateLimitMiddleware(redisClient *redis.Client, limit int, window time.Duration, log *logger.Logger) gin.HandlerFunc {
	breaker := newRateLimitBreaker(log)

	return func(c *gin.Context) {
		if redisClient == nil {
			c.Next()
			return
		}

		userID, exists := c.Get(ContextUserID)
		if !exists {
			userID = c.ClientIP()
		}

		key := fmt.Sprintf("rate_limit:%s:%s", c.Request.URL.Path, userID)
		ctx := c.Request.Context()

		count, err := breaker.Execute(func() (int64, error) {
			n, err := redisClient.Incr(ctx, key).Result()
			if err != nil {
				return 0, err
			}
			if n == 1 {
				redisClient.Expire(ctx, key, window)
			}
			return n, nil
		})
		if err != nil {
			if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
				c.Next()
				return
			}
			log.Error("Rate limit check failed: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Rate limit check failed"})
			c.Abort()
			return
		}

		if count > int64(limit) {
			c.JSON(http.StatusTooManyRequests, gin.H{"error": "Rate limit exceeded"})
			c.Abort()
			return
		}

		c.Next()
	}
}
