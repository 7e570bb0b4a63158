package middleware

import (
	"net/http"
	"strings"

	"github.com/bloghub/bloghub/internal/models"
	"github.com/bloghub/bloghub/internal/service"
	"github.com/gin-gonic/gin"
)

const userContextKey = "user"

// Validates the access token and loads the user; unauthenticated
// requests are rejected. The user is re-read from the database so role
// and paid-flag changes apply immediately.
func RequireAuth(authService *service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := resolveUser(c, authService)
		if !ok {
			return
		}
		if user == nil {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Authorization header required",
			})
			c.Abort()
			return
		}

		c.Set(userContextKey, user)
		c.Set("user_id", user.ID.String())

		c.Next()
	}
}

// Loads the user when a valid token is present, but admits anonymous
// requests. Used on public throttled endpoints where the tier depends on
// authentication state.
func OptionalAuth(authService *service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := resolveUser(c, authService)
		if !ok {
			return
		}
		if user != nil {
			c.Set(userContextKey, user)
			c.Set("user_id", user.ID.String())
		}

		c.Next()
	}
}

// UserFrom returns the authenticated user on the context, or nil.
func UserFrom(c *gin.Context) *models.User {
	if v, exists := c.Get(userContextKey); exists {
		if user, ok := v.(*models.User); ok {
			return user
		}
	}

	return nil
}

// resolveUser extracts and validates the bearer token. It returns
// (nil, true) when no token was supplied, and (nil, false) after writing
// an error response for a malformed or invalid one.
func resolveUser(c *gin.Context, authService *service.AuthService) (*models.User, bool) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return nil, true
	}

	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "Invalid authorization header format. Use: Bearer <token>",
		})
		c.Abort()
		return nil, false
	}

	claims, err := authService.ValidateAccess(parts[1])
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "Invalid or expired token",
		})
		c.Abort()
		return nil, false
	}

	userID, _ := claims["user_id"].(string)
	user, err := authService.GetUserByID(c.Request.Context(), userID)
	if err != nil || user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "Invalid or expired token",
		})
		c.Abort()
		return nil, false
	}

	return user, true
}
