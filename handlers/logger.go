package handlers

import (
	"net/http"

	"vetcare/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// getLogger retrieves the request-scoped logger set by the request logger middleware.
func getLogger(c *gin.Context) *zap.Logger {
	return utils.LoggerFrom(c)
}

// callerVetID returns the authenticated veterinarian, or "" for anonymous callers.
func callerVetID(c *gin.Context) string {
	if v, exists := c.Get("vetID"); exists {
		if id, ok := v.(string); ok {
			return id
		}
	}
	return ""
}

// authorizeVet rejects an authenticated vet acting on another vet's data.
func authorizeVet(c *gin.Context, vetID string) bool {
	caller := callerVetID(c)
	if caller != "" && vetID != "" && caller != vetID {
		utils.JSONError(c, http.StatusForbidden, "Forbidden", "veterinarians may only manage their own slots")
		return false
	}
	return true
}
