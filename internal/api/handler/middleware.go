package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tenanta/backend/internal/models"
)

// RequirePermission gates a mutating route on the current user's role
// table. With no session set, every permission check fails.
func (h *Handler) RequirePermission(p models.Permission) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !h.Registries.Users.HasPermission(p) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "permission denied: " + string(p)})
			return
		}
		c.Next()
	}
}
