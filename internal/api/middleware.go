package api

import (
	"strings"

	"github.com/arung-agamani/itunesdb/internal/auth"
	"github.com/gin-gonic/gin"
)

// securityHeaders adds standard HTTP security headers to every response
// from the management API, which is expected to be reachable only from
// loopback or a trusted LAN.
func securityHeaders() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("X-Content-Type-Options", "nosniff")
		c.Header("X-Frame-Options", "DENY")
		c.Header("Referrer-Policy", "strict-origin-when-cross-origin")
		c.Header("Content-Security-Policy", "default-src 'self'")
		c.Next()
	}
}

// authRequired enforces Authorization: Bearer <token> on mutating routes.
func authRequired(a *auth.Auth) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(401, gin.H{"status": "error", "error": "authentication required"})
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			c.AbortWithStatusJSON(401, gin.H{"status": "error", "error": "authentication required"})
			return
		}

		token := strings.TrimSpace(parts[1])
		if _, err := a.ValidateToken(token); err != nil {
			c.AbortWithStatusJSON(401, gin.H{"status": "error", "error": "invalid or expired token"})
			return
		}

		c.Next()
	}
}
