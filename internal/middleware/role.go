package middleware

import (
	"net/http"

	"github.com/bloghub/bloghub/internal/guard"
	"github.com/gin-gonic/gin"
)

// Gates an endpoint on a role predicate. This only decides which role
// may call the endpoint; resource-level ownership checks happen in the
// services.
func RequireRole(allowed guard.Predicate) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := UserFrom(c)
		if !allowed(user) {
			c.JSON(http.StatusForbidden, gin.H{
				"error": "You do not have permission to perform this action",
			})
			c.Abort()
			return
		}

		c.Next()
	}
}
