package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"healthcare-portal/internal/models"
	"healthcare-portal/internal/utils"
)

const (
	identityKey = "identity"
	roleKey     = "userRole"
)

// AuthMiddleware rejects requests without a valid session token and exposes the
// token's identity and role to downstream handlers.
func AuthMiddleware(jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			utils.Unauthorized(c, "Authorization header required")
			c.Abort()
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			utils.Unauthorized(c, "Invalid authorization header format")
			c.Abort()
			return
		}

		claims, err := utils.ValidateToken(parts[1], jwtSecret)
		if err != nil {
			utils.Unauthorized(c, "Invalid token: "+err.Error())
			c.Abort()
			return
		}

		c.Set(identityKey, claims.Identity)
		c.Set(roleKey, claims.Role)

		c.Next()
	}
}

// RoleAuthMiddleware admits only the listed roles.
// It should be used *after* AuthMiddleware.
func RoleAuthMiddleware(allowedRoles ...models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, ok := GetUserRoleFromContext(c)
		if !ok {
			utils.InternalServerError(c, "User role not found in context. AuthMiddleware might be missing.")
			c.Abort()
			return
		}

		for _, allowedRole := range allowedRoles {
			if role == allowedRole {
				c.Next()
				return
			}
		}

		utils.Forbidden(c, "You do not have permission to access this resource.")
		c.Abort()
	}
}

// GetIdentityFromContext returns the patient email or doctor/admin username of the caller.
func GetIdentityFromContext(c *gin.Context) (string, bool) {
	identity, exists := c.Get(identityKey)
	if !exists {
		return "", false
	}
	s, ok := identity.(string)
	return s, ok && s != ""
}

// GetUserRoleFromContext returns the caller's role.
func GetUserRoleFromContext(c *gin.Context) (models.Role, bool) {
	userRole, exists := c.Get(roleKey)
	if !exists {
		return "", false
	}
	role, ok := userRole.(models.Role)
	return role, ok
}
