package middleware

import (
	"net/http"

	"minimal_api/internal/metrics"
	"minimal_api/internal/model"

	"github.com/gin-gonic/gin"
)

// RoleMiddleware creates a middleware that only lets the given roles through.
// It must run after JWTAuthMiddleware. m may be nil.
func RoleMiddleware(m *metrics.HTTPMetrics, allowedRoles ...model.Role) gin.HandlerFunc {
	allowed := make(map[model.Role]struct{}, len(allowedRoles))
	for _, r := range allowedRoles {
		allowed[r] = struct{}{}
	}

	return func(c *gin.Context) {
		roleVal, exists := c.Get(AuthRoleKey)
		if !exists {
			if m != nil {
				m.AuthFailures.WithLabelValues("missing_role").Inc()
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
			return
		}

		// Compared verbatim: a token claiming "adm" is not an administrator
		role, _ := roleVal.(string)
		if _, ok := allowed[model.Role(role)]; !ok {
			if m != nil {
				m.AuthFailures.WithLabelValues("forbidden_role").Inc()
			}
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "You do not have permission to access this resource"})
			return
		}

		c.Next()
	}
}

// AdminMiddleware lets only administrators through
func AdminMiddleware(m *metrics.HTTPMetrics) gin.HandlerFunc {
	return RoleMiddleware(m, model.RoleAdmin)
}

// EditorMiddleware lets administrators and editors through
func EditorMiddleware(m *metrics.HTTPMetrics) gin.HandlerFunc {
	return RoleMiddleware(m, model.RoleAdmin, model.RoleEditor)
}
