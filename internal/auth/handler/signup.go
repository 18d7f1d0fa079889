package handler

import (
	"errors"
	"net/http"

	"identity-service/internal/auth"
	"identity-service/internal/logger"
	"identity-service/internal/user"

	"github.com/gin-gonic/gin"
)

type signupRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *Handler) Signup(c *gin.Context) {
	var req signupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"ok":    false,
			"error": "name, email, password are required",
		})
		return
	}

	u, err := h.service.Signup(
		c.Request.Context(),
		req.Name,
		req.Email,
		req.Password,
	)

	if err != nil {
		switch {
		case errors.Is(err, auth.ErrMissingField):
			c.JSON(http.StatusBadRequest, gin.H{
				"ok":    false,
				"error": "name, email, password are required",
			})
		case errors.Is(err, auth.ErrWeakPassword):
			c.JSON(http.StatusBadRequest, gin.H{
				"ok":    false,
				"error": "Password must be at least 6 characters",
			})
		case errors.Is(err, user.ErrDuplicateEmail):
			c.JSON(http.StatusConflict, gin.H{
				"ok":    false,
				"error": "Email already registered",
			})
		default:
			logger.Error("signup failed", map[string]any{
				"error": err.Error(),
			})
			c.JSON(http.StatusInternalServerError, gin.H{
				"ok":    false,
				"error": "Server error",
			})
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"ok": true,
		"user": gin.H{
			"name":  u.Name,
			"email": u.Email,
		},
	})
}
