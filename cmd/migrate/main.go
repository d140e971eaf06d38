package main

import (
	"context"
	"flag"
	"log"

	migrate "github.com/rubenv/sql-migrate"
	"go.uber.org/zap"

	"github.com/johnquangdev/meeting-insights/internal/infrastructure/database"
	"github.com/johnquangdev/meeting-insights/pkg/config"
	pkglogger "github.com/johnquangdev/meeting-insights/pkg/logger"
)

// migrate applies or rolls back the embedded schema migrations.
//
//	go run ./cmd/migrate            # up
//	go run ./cmd/migrate -down -n 1 # roll back one migration
func main() {
	down := flag.Bool("down", false, "roll back instead of applying")
	limit := flag.Int("n", 0, "maximum number of migrations to run (0 = all)")
	flag.Parse()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if cfg.Database.Driver != config.DriverPostgres {
		log.Fatalf("Migrations need DB_DRIVER=%s, got %q", config.DriverPostgres, cfg.Database.Driver)
	}

	logger, err := pkglogger.New(cfg.Server.Environment)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	db, err := database.NewPostgresDB(context.Background(), cfg, logger)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer database.CloseDB(db)

	direction := migrate.Up
	if *down {
		direction = migrate.Down
	}

	sqlDB, err := db.DB()
	if err != nil {
		logger.Fatal("Failed to get database connection", zap.Error(err))
	}

	n, err := migrate.ExecMax(sqlDB, "postgres", database.MigrationSource(), direction, *limit)
	if err != nil {
		logger.Fatal("Failed to apply migrations", zap.Error(err))
	}

	logger.Info("✅ Migrations finished", zap.Int("count", n), zap.Bool("down", *down))
}
