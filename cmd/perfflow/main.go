// perfflow engine server — provides the HTTP control plane, dispatches
// stress-test tasks to load-generator process groups, and persists results.
package main

import (
	"context"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/perfflow/perfflow/pkg/api"
	"github.com/perfflow/perfflow/pkg/cleanup"
	"github.com/perfflow/perfflow/pkg/database"
	"github.com/perfflow/perfflow/pkg/dispatcher"
	"github.com/perfflow/perfflow/pkg/results"
	"github.com/perfflow/perfflow/pkg/supervisor"
	"github.com/perfflow/perfflow/pkg/version"
)

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func main() {
	envFile := flag.String("env-file", getEnv("ENV_FILE", ".env"), "Path to environment file")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	if err := godotenv.Load(*envFile); err != nil {
		slog.Warn("Could not load env file, continuing with existing environment",
			"path", *envFile, "error", err)
	}

	httpPort := getEnv("HTTP_PORT", "8080")
	slog.Info("Starting perfflow engine", "version", version.Full(), "http_port", httpPort)

	ctx := context.Background()

	// 1. Database
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

	// 2. Supervisor for load-generator process groups
	sup, err := supervisor.New(logger)
	if err != nil {
		slog.Error("Failed to initialize supervisor", "error", err)
		os.Exit(1)
	}

	// 3. Reconcile tasks left active by a previous engine instance
	if err := supervisor.Reconcile(ctx, dispatcher.ReconcileStore(dbClient.Client), logger); err != nil {
		slog.Error("Startup reconciliation failed", "error", err)
		// Non-fatal — continue
	}

	// 4. Background orphan reaper
	reaperStop := make(chan struct{})
	go sup.RunOrphanReaper(reaperStop)

	// 5. Task pipeline services
	writer := results.NewWriter(dbClient.Client)
	cleaner := cleanup.NewCleaner(logger)
	cleanupService := cleanup.NewService(dbClient.Client, cleaner, logger)
	cleanupService.Start(ctx)
	defer cleanupService.Stop()

	disp := dispatcher.New(dbClient.Client, sup, writer, cleaner)
	disp.Start(ctx)

	// 6. HTTP control plane
	if getEnv("GIN_MODE", "") == "" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	api.NewServer(dbClient).RegisterRoutes(router)

	httpServer := &http.Server{
		Addr:    ":" + httpPort,
		Handler: router,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("HTTP server listening", "addr", httpServer.Addr)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("HTTP server error", "error", err)
			errCh <- err
		}
	}()

	slog.Info("perfflow engine started")

	// 7. Wait for shutdown signal or server error
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)

	select {
	case sig := <-sigCh:
		slog.Info("Shutdown signal received", "signal", sig)
	case err := <-errCh:
		slog.Error("Server error triggered shutdown", "error", err)
	}

	// 8. Graceful shutdown: stop accepting work, then drain
	close(reaperStop)
	disp.Stop()

	httpShutdownCtx, httpCancel := context.WithTimeout(ctx, 5*time.Second)
	defer httpCancel()
	if err := httpServer.Shutdown(httpShutdownCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	}

	slog.Info("Shutdown complete")
}
