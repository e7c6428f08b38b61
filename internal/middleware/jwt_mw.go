package middleware

import (
	"net/http"
	"strings"

	"minimal_api/internal/metrics"
	"minimal_api/internal/utils"

	"github.com/gin-gonic/gin"
)

const (
	AuthEmailKey   = "authEmail"
	AuthProfileKey = "authProfile"
	AuthRoleKey    = "authRole"
)

// TokenValidator is implemented by *utils.JWTUtil
type TokenValidator interface {
	ValidateToken(tokenString string) (*utils.JWTClaims, error)
}

// JWTAuthMiddleware creates a middleware for JWT authentication.
// m may be nil.
func JWTAuthMiddleware(validator TokenValidator, m *metrics.HTTPMetrics) gin.HandlerFunc {
	reject := func(c *gin.Context, reason, msg string) {
		if m != nil {
			m.AuthFailures.WithLabelValues(reason).Inc()
		}
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": msg})
	}

	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			reject(c, "missing_token", "Authorization header required")
			return
		}

		parts := strings.Fields(authHeader)
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			reject(c, "malformed_header", "Invalid authorization header format")
			return
		}

		claims, err := validator.ValidateToken(parts[1])
		if err != nil {
			reject(c, "invalid_token", "Invalid or expired token")
			return
		}

		c.Set(AuthEmailKey, claims.Email)
		c.Set(AuthProfileKey, claims.Profile)
		c.Set(AuthRoleKey, claims.Role)

		c.Next()
	}
}
