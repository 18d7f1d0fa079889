package handler

import (
	"identity-service/internal/auth"
	"identity-service/internal/logger"
	"identity-service/internal/session"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service    *auth.Service
	cookieOpts session.CookieOptions
}

func NewHandler(service *auth.Service, cookieOpts session.CookieOptions) *Handler {
	return &Handler{
		service:    service,
		cookieOpts: cookieOpts,
	}
}

// RegisterRoutes mounts the public auth endpoints. The protected /api/me
// route is mounted by the composition root behind the auth guard.
func (h *Handler) RegisterRoutes(r *gin.Engine) {
	r.POST("/api/signup", h.Signup)
	r.POST("/api/login", h.Login)
	r.POST("/api/logout", h.Logout)

	for _, route := range r.Routes() {
		logger.Info("route registered", map[string]any{
			"method": route.Method,
			"path":   route.Path,
		})
	}
}
