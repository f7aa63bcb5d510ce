package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"jarvis-agent/config"
	_ "jarvis-agent/docs" // Swagger docs
	"jarvis-agent/internal/agent/graph"
	"jarvis-agent/internal/app"
	chatHTTP "jarvis-agent/internal/chat/delivery/http"
	"jarvis-agent/internal/httpserver"
	"jarvis-agent/internal/middleware"
	"jarvis-agent/pkg/log"
)

// @title       JARVIS Agent API
// @description Single-turn healthcare assistant that routes each message to a language model or a Wikipedia lookup.
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

	logger.Infof(ctx, "Starting %s...", graph.GraphName)
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Agent
	agentApp, err := app.Build(ctx, cfg, logger, app.DefaultGetterFactory)
	if err != nil {
		logger.Error(ctx, "Failed to build agent: ", err)
		os.Exit(1)
	}
	if agentApp.Defaults.APIKey == "" {
		logger.Warn(ctx, "No default Groq API key: healthcare requests must carry config.groq_api_key")
	}

	// 4. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:      logger,
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,
		GraphName:   agentApp.Runner.Name(),
		Middleware:  middleware.New(logger, cfg.RateLimit),
		ChatHandler: chatHTTP.New(logger, agentApp.Chat),
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		os.Exit(1)
	}

	// 5. Run
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return httpServer.Run(gctx)
	})

	if err := g.Wait(); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		os.Exit(1)
	}

	logger.Info(ctx, "Server stopped gracefully")
}
