package v1

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shenikar/geo_checkin/internal/config"
	"github.com/shenikar/geo_checkin/internal/metrics"
	"github.com/sirupsen/logrus"
)

const rateLimitWindow = time.Minute

// RateCounter - счетчик запросов с фиксированным окном
type RateCounter interface {
	IncrWithExpire(ctx context.Context, key string, ttl time.Duration) (int64, error)
}

// RateLimitMiddleware ограничивает число запросов вызывающего за минуту.
// При недоступности счетчика запрос пропускается.
func RateLimitMiddleware(counter RateCounter, cfg *config.Config, log *logrus.Logger) gin.HandlerFunc {
	limit := cfg.RateLimitPerMinute
	return func(c *gin.Context) {
		windowStart := time.Now().Truncate(rateLimitWindow)
		key := fmt.Sprintf("ratelimit:%s:%d", clientID(c), windowStart.Unix())

		count, err := counter.IncrWithExpire(c.Request.Context(), key, rateLimitWindow)
		if err != nil {
			log.WithError(err).Warn("Rate limiter unavailable, allowing request")
			c.Next()
			return
		}

		remaining := max(limit-int(count), 0)
		resetAt := windowStart.Add(rateLimitWindow)
		c.Header("X-RateLimit-Limit", strconv.Itoa(limit))
		c.Header("X-RateLimit-Remaining", strconv.Itoa(remaining))
		c.Header("X-RateLimit-Reset", strconv.FormatInt(resetAt.Unix(), 10))

		if int(count) > limit+cfg.RateLimitBurst {
			metrics.RateLimitedTotal.Inc()
			c.Header("Retry-After", retryAfterSeconds(resetAt, time.Now()))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, ErrorResponse{Code: codeRateLimited, Error: "rate limit exceeded"})
			return
		}
		c.Next()
	}
}

// clientID - аутентифицированный пользователь, иначе IP клиента
func clientID(c *gin.Context) string {
	if userID := userIDFromContext(c); userID != "" {
		return "user:" + userID
	}
	return "ip:" + c.ClientIP()
}
