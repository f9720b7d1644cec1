// Thoth text-to-SQL server: provides the streaming generation API, runs
// background catalog jobs, and manages per-workspace pipeline resources.
package main

import (
	"context"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/thoth-ai/thoth/pkg/api"
	"github.com/thoth-ai/thoth/pkg/cleanup"
	"github.com/thoth-ai/thoth/pkg/config"
	"github.com/thoth-ai/thoth/pkg/database"
	"github.com/thoth-ai/thoth/pkg/dbadapter"
	"github.com/thoth-ai/thoth/pkg/jobs"
	"github.com/thoth-ai/thoth/pkg/pipeline"
	"github.com/thoth-ai/thoth/pkg/progress"
	"github.com/thoth-ai/thoth/pkg/services"
	"github.com/thoth-ai/thoth/pkg/sessioncache"
	"github.com/thoth-ai/thoth/pkg/version"
)

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func main() {
	// Parse command-line flags
	configDir := flag.String("config-dir",
		getEnv("CONFIG_DIR", "./deploy/config"),
		"Path to configuration directory")
	flag.Parse()

	// Load .env file from config directory
	envPath := filepath.Join(*configDir, ".env")
	if err := godotenv.Load(envPath); err != nil {
		slog.Warn("Could not load .env file, continuing with existing environment",
			"path", envPath, "error", err)
	} else {
		slog.Info("Loaded environment", "path", envPath)
	}

	httpPort := getEnv("HTTP_PORT", "8080")
	logger := slog.Default()

	slog.Info("Starting Thoth",
		"version", version.Full(),
		"http_port", httpPort,
		"config_dir", *configDir)

	ctx := context.Background()

	// 1. Initialize configuration
	cfg, err := config.Initialize(ctx, *configDir)
	if err != nil {
		slog.Error("Failed to initialize configuration", "error", err)
		os.Exit(1)
	}
	slog.Info("Configuration loaded", "models", cfg.Stats().Models)

	// 2. Initialize application database
	dbConfig, err := database.LoadConfigFromEnv()
	if err != nil {
		slog.Error("Failed to load database config", "error", err)
		os.Exit(1)
	}

	dbClient, err := database.NewClient(ctx, dbConfig)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			slog.Error("Error closing database client", "error", err)
		}
	}()
	slog.Info("Connected to PostgreSQL database")

	// 3. Progress tracker: Redis when configured, in-memory otherwise
	var tracker progress.Tracker
	if cfg.System.RedisAddr != "" {
		password := ""
		if cfg.System.RedisPasswordEnv != "" {
			password = os.Getenv(cfg.System.RedisPasswordEnv)
		}
		redisTracker, err := progress.NewRedisTracker(ctx, cfg.System.RedisAddr, password)
		if err != nil {
			slog.Error("Failed to connect to Redis", "addr", cfg.System.RedisAddr, "error", err)
			os.Exit(1)
		}
		defer func() {
			if err := redisTracker.Close(); err != nil {
				slog.Error("Error closing Redis tracker", "error", err)
			}
		}()
		tracker = redisTracker
		slog.Info("Redis progress tracker initialized", "addr", cfg.System.RedisAddr)
	} else {
		tracker = progress.NewMemoryTracker()
		slog.Warn("Using in-memory progress tracker; job progress is lost on restart")
	}

	// 4. Target-database adapter factory and session cache
	factory := dbadapter.NewFactory(cfg.System.DBRoot, cfg.System.Mode)
	defer factory.Close()

	cache := sessioncache.New(dbClient.Client, cfg, factory, logger)

	// 5. Domain services
	workspaceService := services.NewWorkspaceService(dbClient.Client)
	logService := services.NewThothLogService(dbClient.Client)
	feedbackService := services.NewFeedbackService(cache)
	slog.Info("Services initialized")

	// 6. Pipeline orchestrator and background job runner
	orchestrator := pipeline.NewOrchestrator(cfg.Pipeline, logService, logger)
	runner := jobs.NewRunner(dbClient.Client, cfg.Jobs, cfg.System, factory, cfg.Models,
		tracker, workspaceService, cache, logger)

	// 6a. Retention loop for run records
	cleanupService := cleanup.NewService(cfg.Retention, logService)
	cleanupService.Start(ctx)
	defer cleanupService.Stop()

	// 7. HTTP server
	server := api.NewServer(cfg, dbClient, cache, orchestrator, runner, tracker,
		workspaceService, feedbackService, logService, logger)
	httpServer := &http.Server{
		Addr:    ":" + httpPort,
		Handler: server.Router(),
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("HTTP server listening", "addr", httpServer.Addr)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("HTTP server error", "error", err)
			errCh <- err
		}
	}()

	slog.Info("Thoth started successfully")

	// 8. Wait for shutdown signal or server error
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)

	select {
	case sig := <-sigCh:
		slog.Info("Shutdown signal received", "signal", sig)
	case err := <-errCh:
		slog.Error("Server error triggered shutdown", "error", err)
	}

	// 9. Graceful shutdown: stop accepting requests, then drain jobs
	shutdownCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		slog.Warn("HTTP server shutdown error", "error", err)
	}

	done := make(chan struct{})
	go func() {
		runner.Shutdown()
		close(done)
	}()
	select {
	case <-done:
		slog.Info("Background jobs drained")
	case <-shutdownCtx.Done():
		slog.Warn("Background job shutdown timeout exceeded")
	}

	slog.Info("Thoth stopped")
}
