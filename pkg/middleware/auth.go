package middleware

import (
	"net/http"
	"strings"

	"photoshare/pkg/jwt"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware rejects requests without a valid bearer token.
func AuthMiddleware(jwtService *jwt.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := claimsFromRequest(c, jwtService)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Unauthorized"})
			c.Abort()
			return
		}

		setIdentity(c, claims)
		c.Next()
	}
}

// OptionalAuthMiddleware extracts the caller identity when a valid token is
// present and treats everything else as anonymous. It never aborts.
func OptionalAuthMiddleware(jwtService *jwt.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		if claims, ok := claimsFromRequest(c, jwtService); ok {
			setIdentity(c, claims)
		}
		c.Next()
	}
}

// RequireRole must run after AuthMiddleware.
func RequireRole(role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetString("user_role") != role {
			c.JSON(http.StatusForbidden, gin.H{"success": false, "message": "Insufficient permissions"})
			c.Abort()
			return
		}
		c.Next()
	}
}

func claimsFromRequest(c *gin.Context, jwtService *jwt.Service) (*jwt.Claims, bool) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return nil, false
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" {
		return nil, false
	}

	claims, err := jwtService.ValidateToken(parts[1])
	if err != nil {
		return nil, false
	}
	return claims, true
}

func setIdentity(c *gin.Context, claims *jwt.Claims) {
	c.Set("user_id", claims.UserID)
	c.Set("user_name", claims.Name)
	c.Set("user_role", claims.Role)
	c.Set("user_avatar", claims.Avatar)
}
