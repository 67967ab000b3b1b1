package main

import (
	"context"
	"log"

	"spendit-receipts/pkg/config"
	"spendit-receipts/pkg/logger"
	"spendit-receipts/pkg/postgres"

	"go.uber.org/zap"
)

var statements = []string{
	`CREATE TABLE IF NOT EXISTS receipts (
		receipt_id    TEXT PRIMARY KEY,
		merchant_name TEXT NOT NULL,
		total_amount  NUMERIC(12, 2) NOT NULL CHECK (total_amount >= 0),
		receipt_date  DATE NOT NULL,
		image_url     TEXT NOT NULL,
		status        TEXT NOT NULL,
		created_at    TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS receipt_items (
		id         BIGSERIAL PRIMARY KEY,
		receipt_id TEXT NOT NULL REFERENCES receipts(receipt_id) ON DELETE CASCADE,
		line_index INT NOT NULL,
		item_name  TEXT NOT NULL,
		quantity   INT NOT NULL CHECK (quantity > 0),
		price      NUMERIC(12, 2) NOT NULL CHECK (price >= 0)
	)`,
	`CREATE INDEX IF NOT EXISTS idx_receipt_items_receipt_id ON receipt_items (receipt_id, line_index)`,
}

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	if err := logger.Init(cfg.Logger.Level); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()
	appLogger := logger.Get()

	// Connect to database; migrations require it
	ctx := context.Background()
	db, err := postgres.NewPool(ctx, &cfg.Database, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	appLogger.Info("Applying receipts schema...")

	for _, stmt := range statements {
		if _, err := db.Exec(ctx, stmt); err != nil {
			appLogger.Fatal("Migration statement failed", zap.Error(err))
		}
	}

	appLogger.Info("Schema up to date")
}
