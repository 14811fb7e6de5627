package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/BruksfildServices01/buyer-leads/internal/auth"
	"github.com/BruksfildServices01/buyer-leads/internal/config"
	"github.com/BruksfildServices01/buyer-leads/internal/httperr"
)

const (
	ContextUserID    = "userID"
	ContextUserEmail = "userEmail"

	SessionCookie = "session"
)

// AuthMiddleware accepts the session token from a Bearer header or the
// session cookie.
func AuthMiddleware(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := bearerToken(c.GetHeader("Authorization"))
		if tokenString == "" {
			if cookie, err := c.Cookie(SessionCookie); err == nil {
				tokenString = cookie
			}
		}
		if tokenString == "" {
			httperr.Unauthorized(c, "missing_session", "Please log in.")
			c.Abort()
			return
		}

		claims, err := auth.ParseToken(tokenString, cfg.JWTSecret)
		if err != nil {
			httperr.Unauthorized(c, "invalid_session", "Your session has expired. Please log in again.")
			c.Abort()
			return
		}

		c.Set(ContextUserID, claims.UserID)
		c.Set(ContextUserEmail, claims.Email)

		c.Next()
	}
}

func bearerToken(header string) string {
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

// GetUserID returns the authenticated user. Only valid behind
// AuthMiddleware.
func GetUserID(c *gin.Context) uuid.UUID {
	return c.MustGet(ContextUserID).(uuid.UUID)
}
