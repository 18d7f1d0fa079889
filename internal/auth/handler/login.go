package handler

import (
	"errors"
	"net/http"

	"identity-service/internal/auth"
	"identity-service/internal/logger"
	"identity-service/internal/session"

	"github.com/gin-gonic/gin"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *Handler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"ok":    false,
			"error": "email and password are required",
		})
		return
	}

	u, token, expiresAt, err := h.service.Login(
		c.Request.Context(),
		req.Email,
		req.Password,
	)

	if err != nil {
		switch {
		case errors.Is(err, auth.ErrMissingField):
			c.JSON(http.StatusBadRequest, gin.H{
				"ok":    false,
				"error": "email and password are required",
			})
		case errors.Is(err, auth.ErrInvalidCredentials):
			c.JSON(http.StatusUnauthorized, gin.H{
				"ok":    false,
				"error": "Invalid credentials",
			})
		default:
			logger.Error("login failed", map[string]any{
				"error": err.Error(),
			})
			c.JSON(http.StatusInternalServerError, gin.H{
				"ok":    false,
				"error": "Server error",
			})
		}
		return
	}

	session.SetCookie(c.Writer, token, expiresAt, h.cookieOpts)

	c.JSON(http.StatusOK, gin.H{
		"ok": true,
		"user": gin.H{
			"name":  u.Name,
			"email": u.Email,
		},
	})
}
