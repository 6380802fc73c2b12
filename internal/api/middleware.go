package api

import (
	"net/http"
	"strings"

	"github.com/smartdash/dashboard-api/internal/database"
	"github.com/smartdash/dashboard-api/internal/models"
	"github.com/smartdash/dashboard-api/internal/services"

	"github.com/gin-gonic/gin"
)

const userContextKey = "currentUser"

// AuthRequired validates the bearer access token and loads the calling
// user into the request context
func AuthRequired(authService *services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"detail": "authentication credentials were not provided"})
			return
		}

		claims, err := authService.ValidateAccessToken(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"detail": "invalid or expired token"})
			return
		}

		var user models.User
		if err := database.GetDB().First(&user, claims.UserID).Error; err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"detail": "invalid or expired token"})
			return
		}

		if !user.IsActive {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"detail": "this account is inactive"})
			return
		}

		c.Set(userContextKey, user)
		c.Next()
	}
}

// CurrentUser returns the authenticated user stored by AuthRequired
func CurrentUser(c *gin.Context) models.User {
	return c.MustGet(userContextKey).(models.User)
}
