package handler

import (
	"errors"
	"net/http"

	"identity-service/internal/auth"
	"identity-service/internal/logger"
	"identity-service/internal/middleware"

	"github.com/gin-gonic/gin"
)

// Me reports the identity behind the verified session claims. The record is
// re-resolved from the store; a valid token for a vanished record is still a
// rejection.
func (h *Handler) Me(c *gin.Context) {
	claims, ok := middleware.ClaimsFromContext(c.Request.Context())
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{
			"ok":    false,
			"error": "Unauthorized",
		})
		return
	}

	u, err := h.service.CurrentUser(c.Request.Context(), claims)
	if err != nil {
		if errors.Is(err, auth.ErrUnauthorized) {
			c.JSON(http.StatusUnauthorized, gin.H{
				"ok":    false,
				"error": "Unauthorized",
			})
			return
		}
		logger.Error("me lookup failed", map[string]any{
			"error": err.Error(),
		})
		c.JSON(http.StatusInternalServerError, gin.H{
			"ok":    false,
			"error": "Server error",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"ok": true,
		"user": gin.H{
			"name":  u.Name,
			"email": u.Email,
		},
	})
}
