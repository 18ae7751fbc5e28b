package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"focusflow/config"
	_ "focusflow/docs" // Swagger docs
	"focusflow/internal/app"
	"focusflow/internal/httpserver"
	"focusflow/pkg/log"
)

// @title       FocusFlow API
// @description Focus-aware task scheduling: natural-language task capture, focus sessions and productivity analytics.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		os.Exit(1)
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting FocusFlow...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)
	logger.Infof(ctx, "Timezone: %s", cfg.Scheduler.Timezone)

	// 3. Storage, parser, scheduler and use cases
	application, err := app.New(ctx, cfg, logger, app.Options{})
	if err != nil {
		logger.Error(ctx, "Failed to initialize application: ", err)
		os.Exit(1)
	}
	defer application.Close()

	// 4. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		Environment:     cfg.Environment.Name,
		ShutdownTimeout: cfg.HTTPServer.ShutdownTimeout,
		DB:              application.DB,
		TaskUC:          application.Task,
		FocusUC:         application.Focus,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 5. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
