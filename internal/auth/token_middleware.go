package auth

import (
	"net/http"
	"strings"

	"geomate/backend/pkg/jwt"

	"github.com/gin-gonic/gin"
)

// UserNameKey is the gin context key holding the token subject.
const UserNameKey = "userName"

// AuthMiddleware requires a valid Bearer token and stores its subject
// under UserNameKey.
func AuthMiddleware(issuer *jwt.Issuer) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"status": "Error", "message": "Missing bearer token"})
			return
		}

		userName, err := issuer.ParseToken(parts[1])
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"status": "Error", "message": "Invalid token"})
			return
		}

		c.Set(UserNameKey, userName)
		c.Next()
	}
}
