package api

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"github.com/sitecrew/estimator/internal/logging"
)

const rateLimiterBurst = 10

// LoggerMiddleware logs method, path, status, duration and client IP for
// every request.
func LoggerMiddleware(log logging.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		method := c.Request.Method

		c.Next()

		fields := []logging.Field{
			logging.String("method", method),
			logging.String("path", path),
			logging.Int("status", c.Writer.Status()),
			logging.Any("duration", time.Since(start)),
			logging.String("client_ip", c.ClientIP()),
		}
		if query := c.Request.URL.RawQuery; query != "" {
			fields = append(fields, logging.String("query", query))
		}

		if len(c.Errors) > 0 {
			fields = append(fields, logging.String("errors", c.Errors.String()))
			log.Error("http request with errors", fields...)
			return
		}
		// Health probes are noise at info level.
		if strings.HasPrefix(path, "/health") || strings.HasPrefix(path, "/ready") {
			log.Debug("http request", fields...)
			return
		}
		log.Info("http request", fields...)
	}
}

// RecoveryMiddleware converts panics into 500 responses with a logged
// stack-free summary.
func RecoveryMiddleware(log logging.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				log.Error("panic recovered",
					logging.Any("panic", r),
					logging.String("path", c.Request.URL.Path))
				c.AbortWithStatusJSON(http.StatusInternalServerError,
					gin.H{"error": "internal server error"})
			}
		}()
		c.Next()
	}
}

// RateLimitMiddleware applies a global token-bucket limit. rps <= 0
// disables limiting.
func RateLimitMiddleware(rps float64) gin.HandlerFunc {
	if rps <= 0 {
		return func(c *gin.Context) { c.Next() }
	}

	limiter := rate.NewLimiter(rate.Limit(rps), rateLimiterBurst)
	return func(c *gin.Context) {
		if !limiter.Allow() {
			c.AbortWithStatusJSON(http.StatusTooManyRequests,
				gin.H{"error": "rate limit exceeded"})
			return
		}
		c.Next()
	}
}
