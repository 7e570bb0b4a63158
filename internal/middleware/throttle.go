package middleware

import (
	"errors"
	"net/http"

	"github.com/bloghub/bloghub/internal/apperr"
	"github.com/bloghub/bloghub/internal/throttle"
	"github.com/gin-gonic/gin"
)

// Applies the rolling-window access throttle to public read endpoints.
// The subject is the authenticated user when present, otherwise the
// client IP.
func Throttle(t *throttle.Throttle) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := UserFrom(c)

		c.Header("X-RateLimit-Tier", string(throttle.Classify(user)))

		err := t.Check(c.Request.Context(), user, c.ClientIP())
		if err == nil {
			c.Next()
			return
		}

		var appErr *apperr.Error
		if errors.As(err, &appErr) {
			c.JSON(appErr.Status(), gin.H{
				"error": appErr.Message,
			})
			c.Abort()
			return
		}

		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Rate limit check failed",
		})
		c.Abort()
	}
}
