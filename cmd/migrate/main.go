package main

import (
	"log"
	"os"

	"go.uber.org/zap"

	"github.com/panpal-app/backend/config"
	"github.com/panpal-app/backend/internal/database"
	"github.com/panpal-app/backend/internal/logging"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	logger, err := logging.New(os.Getenv("ENV"))
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	db, err := database.New(cfg, logger)
	if err != nil {
		logger.Fatal("failed to connect to database", zap.Error(err))
	}
	defer func() { _ = db.Close() }()

	gormDB, err := db.Gorm()
	if err != nil {
		logger.Fatal("failed to open gorm session", zap.Error(err))
	}

	if err := database.RunMigrations(gormDB, cfg.MigrationsDir, logger); err != nil {
		logger.Fatal("migrations failed", zap.Error(err))
	}
	logger.Info("migrations applied")
}
