package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RequireRole gates a route group to accounts carrying the given role. It
// must run after JWTAuthMiddleware has set "role" in the context.
func RequireRole(role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		actual, exists := c.Get("role")
		if !exists {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
			return
		}
		if actual != role {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"error": "This operation requires the '" + role + "' role",
			})
			return
		}
		c.Next()
	}
}
