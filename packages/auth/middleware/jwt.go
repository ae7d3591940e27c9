package middleware

import (
	"net/http"
	"strings"

	"github.com/OmarTheProgrammerr/MasjidOmar/packages/auth/utils"

	"github.com/gin-gonic/gin"
)

// JWTMiddleware rejects any request without a valid admin bearer token
func JWTMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := BearerToken(c)
		if token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
			c.Abort()
			return
		}

		claims, err := utils.VerifyToken(token)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid or expired token"})
			c.Abort()
			return
		}

		c.Set("username", claims.Username)
		c.Set("role", claims.Role)
		c.Next()
	}
}

// OptionalJWTMiddleware attaches the admin identity when a valid token is
// present and treats the caller as anonymous otherwise. Routes behind it
// branch explicitly on IsAdmin rather than on a verification failure.
func OptionalJWTMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if token := BearerToken(c); token != "" {
			if claims, err := utils.VerifyToken(token); err == nil {
				c.Set("username", claims.Username)
				c.Set("role", claims.Role)
			}
		}
		c.Next()
	}
}

// BearerToken extracts the token from the Authorization header
func BearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if header == "" {
		return ""
	}

	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}

	return parts[1]
}

// GetUsername returns the authenticated username, if any
func GetUsername(c *gin.Context) (string, bool) {
	username, exists := c.Get("username")
	if !exists {
		return "", false
	}
	name, ok := username.(string)
	return name, ok
}

// IsAdmin reports whether the request carries a verified admin identity
func IsAdmin(c *gin.Context) bool {
	role, exists := c.Get("role")
	return exists && role == utils.RoleAdmin
}
