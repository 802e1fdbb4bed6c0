package middleware

import (
	"net/http"
	"strings"

	"victory-pos/internal/auth"
	"victory-pos/internal/models"
	"victory-pos/internal/rbac"

	"github.com/gin-gonic/gin"
)

// Context keys set for downstream handlers.
const (
	KeyUserID   = "userID"
	KeyUserName = "userName"
	KeyRole     = "role"
)

// Authenticate checks the Bearer token and stores the caller's identity in
// the request context.
func Authenticate(manager *auth.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header is required"})
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header must start with Bearer"})
			c.Abort()
			return
		}

		claims, err := manager.ValidateToken(tokenString)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			c.Abort()
			return
		}

		c.Set(KeyUserID, claims.UserID)
		c.Set(KeyUserName, claims.Name)
		c.Set(KeyRole, claims.Role)
		c.Next()
	}
}

// RequireCapability gates a route on the rbac capability table, so role
// literals stay out of the routing code.
func RequireCapability(action rbac.Action) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, exists := c.Get(KeyRole)
		if !exists || !rbac.CanMutate(role.(models.Role), action) {
			c.JSON(http.StatusForbidden, gin.H{"error": "You do not have permission to access this resource"})
			c.Abort()
			return
		}
		c.Next()
	}
}

// Role pulls the caller's role out of the request context.
func Role(c *gin.Context) models.Role {
	return c.MustGet(KeyRole).(models.Role)
}

// UserName pulls the caller's display name out of the request context.
func UserName(c *gin.Context) string {
	return c.MustGet(KeyUserName).(string)
}
