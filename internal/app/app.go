package app

import (
	"context"
	"net/http"

	"identity-service/internal/config"
)

type App struct {
	httpServer *http.Server
}

func New(cfg config.Config) *App {
	router := setupHTTP(cfg)

	server := &http.Server{
		Addr:    ":" + cfg.AppPort,
		Handler: router,
	}

	return &App{
		httpServer: server,
	}
}

func (a *App) Run() error {
	return a.httpServer.ListenAndServe()
}

func (a *App) Shutdown(ctx context.Context) error {
	return a.httpServer.Shutdown(ctx)
}
