package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"food-ordering-api/auth"
	"food-ordering-api/models"
)

const (
	ctxPrincipalID = "principalID"
	ctxRole        = "role"
)

// Authenticate validates the bearer token and injects the resolved principal
// into the request context. Handlers behind it never run on a failed check.
func Authenticate(tokens *auth.TokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"message": "Authorization header required (Bearer <token>)",
			})
			return
		}
		claims, err := tokens.Verify(strings.TrimPrefix(authHeader, "Bearer "))
		if err != nil {
			msg := "Invalid token"
			if errors.Is(err, auth.ErrTokenExpired) {
				msg = "Token expired"
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"message": msg,
			})
			return
		}
		c.Set(ctxPrincipalID, claims.ID)
		c.Set(ctxRole, claims.Role)
		c.Next()
	}
}

// AdminOnly gates a route to principals that exist in the admin namespace.
// This is the single role-check path: the token must carry the admin role and
// the account must still be present in the admins table.
func AdminOnly(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		if GetRole(c) != auth.RoleAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"success": false,
				"message": "Admin access required",
			})
			return
		}
		var admin models.Admin
		if err := db.First(&admin, GetPrincipalID(c)).Error; err != nil {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"success": false,
				"message": "Admin access required",
			})
			return
		}
		c.Next()
	}
}

// GetPrincipalID extracts the caller's principal id from context
func GetPrincipalID(c *gin.Context) uint {
	val, _ := c.Get(ctxPrincipalID)
	id, _ := val.(uint)
	return id
}

// GetRole extracts the caller's role from context
func GetRole(c *gin.Context) string {
	val, _ := c.Get(ctxRole)
	role, _ := val.(string)
	return role
}
