package middleware

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/buyer-leads/internal/httperr"
	"github.com/BruksfildServices01/buyer-leads/internal/ratelimit"
)

// RateLimit limits a route per authenticated user. When the limiter
// backend fails the request is let through.
func RateLimit(l ratelimit.Limiter, scope string) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := scope + ":" + GetUserID(c).String()

		ok, err := l.Allow(c.Request.Context(), key)
		if err != nil {
			Logger(c).Warn("rate limiter unavailable", zap.String("scope", scope), zap.Error(err))
			c.Next()
			return
		}
		if !ok {
			httperr.TooManyRequests(c, "rate_limited", "Too many requests. Please wait a minute and try again.")
			c.Abort()
			return
		}

		c.Next()
	}
}
