package database

import (
	"context"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v4"
	migrate "github.com/rubenv/sql-migrate"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/johnquangdev/meeting-insights/migrations"
	"github.com/johnquangdev/meeting-insights/pkg/config"
)

// NewPostgresDB creates a new PostgreSQL database connection using GORM.
// Connecting is retried with exponential backoff for up to
// DB_CONNECT_TIMEOUT so the API can start before the database is ready.
func NewPostgresDB(ctx context.Context, cfg *config.Config, log *zap.Logger) (*gorm.DB, error) {
	dsn := cfg.GetDatabaseDSN()

	// Configure GORM logger
	gormLogger := logger.Default.LogMode(logger.Warn)
	if cfg.IsProduction() {
		gormLogger = logger.Default.LogMode(logger.Error)
	}

	var db *gorm.DB
	connect := func() error {
		conn, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
			Logger: gormLogger,
			NowFunc: func() time.Time {
				return time.Now().UTC()
			},
		})
		if err != nil {
			log.Warn("Database not reachable yet", zap.Error(err))
			return fmt.Errorf("failed to connect to database: %w", err)
		}

		sqlDB, err := conn.DB()
		if err != nil {
			return backoff.Permanent(fmt.Errorf("failed to get database object: %w", err))
		}
		if err := sqlDB.PingContext(ctx); err != nil {
			_ = sqlDB.Close()
			log.Warn("Database ping failed", zap.Error(err))
			return fmt.Errorf("failed to ping database: %w", err)
		}

		db = conn
		return nil
	}

	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = 500 * time.Millisecond
	bo.MaxInterval = 5 * time.Second
	bo.MaxElapsedTime = cfg.Database.ConnectTimeout

	if err := backoff.Retry(connect, backoff.WithContext(bo, ctx)); err != nil {
		return nil, err
	}

	// Get generic database object to configure connection pool
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database object: %w", err)
	}

	// Connection pool settings
	sqlDB.SetMaxOpenConns(cfg.Database.MaxConns)
	sqlDB.SetMaxIdleConns(cfg.Database.MinConns)
	sqlDB.SetConnMaxLifetime(time.Hour)

	log.Info("✅ Database connected successfully", zap.String("host", cfg.Database.Host), zap.String("database", cfg.Database.Name))

	return db, nil
}

// MigrationSource returns the embedded schema migrations
func MigrationSource() migrate.MigrationSource {
	return &migrate.EmbedFileSystemMigrationSource{
		FileSystem: migrations.FS,
		Root:       ".",
	}
}

// Migrate applies pending migrations in the given direction
func Migrate(db *gorm.DB, direction migrate.MigrationDirection, log *zap.Logger) (int, error) {
	sqlDB, err := db.DB()
	if err != nil {
		return 0, fmt.Errorf("failed to get db connection during migrate, error: %v", err)
	}

	n, err := migrate.Exec(sqlDB, "postgres", MigrationSource(), direction)
	if err != nil {
		return 0, fmt.Errorf("failed to apply migration, error: %v", err)
	}

	log.Info("✅ Applied migrations", zap.Int("count", n))
	return n, nil
}

// CloseDB closes the database connection
func CloseDB(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get database object: %w", err)
	}

	if err := sqlDB.Close(); err != nil {
		return fmt.Errorf("failed to close database: %w", err)
	}
	return nil
}
