package middleware

import (
	"net/http"
	"strings"

	"pos-service/internal/auth"
	"pos-service/pkg/errors"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AuthMiddleware accepts the session cookie or an "Authorization: Bearer"
// token and rejects everything else with 401 {"error": "Not authenticated"}.
func AuthMiddleware(jwtManager *auth.JWTManager, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c.GetHeader("Authorization"))
		if token == "" {
			if cookie, err := c.Cookie(auth.SessionCookie); err == nil {
				token = cookie
			}
		}

		if token == "" {
			logger.Debug("Missing session",
				zap.String("path", c.Request.URL.Path),
				zap.String("method", c.Request.Method),
			)
			c.AbortWithStatusJSON(http.StatusUnauthorized, errors.NewNotAuthenticated())
			return
		}

		claims, err := jwtManager.ValidateToken(token)
		if err != nil {
			logger.Warn("Rejected session token",
				zap.String("path", c.Request.URL.Path),
				zap.String("method", c.Request.Method),
				zap.Error(err),
			)
			c.AbortWithStatusJSON(http.StatusUnauthorized, errors.NewNotAuthenticated())
			return
		}

		c.Set("username", claims.Username)
		c.Set("user_id", claims.Subject)

		c.Next()
	}
}

// GetUsername returns the authenticated operator
func GetUsername(c *gin.Context) string {
	return c.GetString("username")
}

func bearerToken(header string) string {
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
