package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"spendit-receipts/internal/api"
	"spendit-receipts/internal/api/handlers"
	"spendit-receipts/internal/repository"
	"spendit-receipts/internal/service"
	"spendit-receipts/pkg/config"
	"spendit-receipts/pkg/logger"
	"spendit-receipts/pkg/middleware"
	"spendit-receipts/pkg/postgres"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize global logger
	if err := logger.Init(cfg.Logger.Level); err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	appLogger := logger.Get()
	appLogger.Info("Starting Spendit receipts service", zap.String("version", cfg.Version))

	// Initialize database. Connection failure is not fatal: the service
	// keeps serving synthetic results until storage comes back.
	ctx := context.Background()
	var db *pgxpool.Pool
	db, err = postgres.NewPool(ctx, &cfg.Database, appLogger)
	if err != nil {
		appLogger.Warn("Database unavailable, running in degraded mode", zap.Error(err))
		db = nil
	}
	defer func() {
		if db != nil {
			db.Close()
		}
	}()

	// Initialize storage gateway and services
	receiptRepo := repository.NewReceiptRepository(db, appLogger)
	analyzer := service.NewStaticAnalyzer()
	receiptService := service.NewReceiptService(receiptRepo, analyzer, appLogger)
	healthService := service.NewHealthService(receiptRepo, cfg.Database.PingTimeout, cfg.Version, appLogger)

	// Initialize handlers
	metrics := middleware.NewMetrics()
	receiptHandler := handlers.NewReceiptHandler(receiptService, appLogger)
	healthHandler := handlers.NewHealthHandler(healthService)
	metricsHandler := handlers.NewMetricsHandler(metrics, receiptRepo)

	// Setup router
	app := api.SetupRouter(receiptHandler, healthHandler, metricsHandler, metrics)

	// Start server
	go func() {
		addr := ":" + cfg.Server.Port
		appLogger.Info("Server starting", zap.String("address", addr))
		if err := app.Listen(addr); err != nil {
			appLogger.Fatal("Server failed", zap.Error(err))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server")
	if err := app.Shutdown(); err != nil {
		appLogger.Error("Server shutdown error", zap.Error(err))
	}
}
