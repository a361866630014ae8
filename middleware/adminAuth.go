package middleware

import (
	"net/http"

	"mindcare/models"

	"github.com/gin-gonic/gin"
)

// RequireAdmin gates a route on the role claim set by JWTAuthMiddleware.
// It must run after JWTAuthMiddleware in the chain.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		role, _ := c.Get(CtxUserRole)
		if role != models.RoleAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Access denied. Admin privileges required."})
			return
		}
		c.Next()
	}
}
