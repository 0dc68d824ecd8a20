// middleware/auth.go
package middleware

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"vetcare/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func bearerToken(c *gin.Context) (string, bool) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
		return "", false
	}
	token := strings.TrimPrefix(authHeader, "Bearer ")
	return token, token != ""
}

// VetAuthMiddleware validates a veterinarian session token and stores the vet id
// in the context under "vetID".
func VetAuthMiddleware(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, ok := bearerToken(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Missing or invalid Authorization header"})
			return
		}

		vetID, err := utils.ExtractIDFromToken(secret, tokenString, utils.RoleVet)
		if err != nil {
			zap.L().Debug("Rejected veterinarian token", zap.Error(err))
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Invalid token"})
			return
		}

		c.Set("vetID", vetID)
		c.Next()
	}
}

// CronAuthMiddleware admits requests carrying the shared cron secret as a bearer token.
// An empty secret rejects every request.
func CronAuthMiddleware(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := bearerToken(c)
		if !ok || secret == "" || subtle.ConstantTimeCompare([]byte(token), []byte(secret)) != 1 {
			zap.L().Warn("Unauthorized cron trigger", zap.String("ip", getClientIP(c)))
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
			return
		}
		c.Next()
	}
}
