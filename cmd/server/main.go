package main

import (
	"log/slog"
	"net/http"

	"github.com/fardannozami/portfolio/internal/app"
	"github.com/fardannozami/portfolio/internal/config"
	"github.com/fardannozami/portfolio/internal/logger"
	"github.com/fardannozami/portfolio/internal/routes"
)

func main() {
	cfg := config.Load()

	logger.Init(cfg.IsDevelopment(), cfg.SentryDSN)

	app, err := app.New(cfg)
	if err != nil {
		slog.Error("failed to initialize app", "error", err)
		panic(err)
	}

	handler := routes.SetupRoutes(app)
	slog.Info("server starting", "port", cfg.Port, "env", cfg.AppEnv, "url", "http://localhost:"+cfg.Port)

	err = http.ListenAndServe(":"+cfg.Port, handler)
	if err != nil {
		slog.Error("server failed", "error", err)
		panic(err)
	}
}
