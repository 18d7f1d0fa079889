package app

import (
	"net/http"

	"identity-service/internal/auth"
	"identity-service/internal/auth/handler"
	"identity-service/internal/config"
	"identity-service/internal/middleware"
	"identity-service/internal/session"
	"identity-service/internal/user"

	"github.com/gin-gonic/gin"
)

func setupHTTP(cfg config.Config) *gin.Engine {

	// ----------------------------
	// Dependencies
	// ----------------------------

	store := user.NewMemoryStore()
	tokens := auth.NewTokenManager(cfg.JWTSecret, auth.TokenTTL)
	authService := auth.NewService(store, tokens)
	authGuard := middleware.NewAuthGuard(tokens)

	cookieOpts := session.CookieOptions{
		Secure:   cfg.Production(),
		SameSite: http.SameSiteLaxMode,
	}

	authHandler := handler.NewHandler(authService, cookieOpts)

	// ----------------------------
	// Router
	// ----------------------------

	if cfg.Production() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())

	// ----------------------------
	// Public Routes
	// ----------------------------

	authHandler.RegisterRoutes(router)

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	router.Static("/static", "./web")

	router.GET("/", func(c *gin.Context) {
		c.File("./web/index.html")
	})

	// ----------------------------
	// Protected API Routes
	// ----------------------------

	api := router.Group("/api")
	api.Use(middleware.GinRequireAuth(authGuard))

	api.GET("/me", authHandler.Me)

	return router
}
