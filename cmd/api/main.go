package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	migrate "github.com/rubenv/sql-migrate"
	"go.uber.org/zap"

	_ "github.com/johnquangdev/meeting-insights/docs"
	"github.com/johnquangdev/meeting-insights/internal/adapter/handler"
	"github.com/johnquangdev/meeting-insights/internal/adapter/repository"
	"github.com/johnquangdev/meeting-insights/internal/domain/repositories"
	"github.com/johnquangdev/meeting-insights/internal/domain/services"
	"github.com/johnquangdev/meeting-insights/internal/infrastructure/cache"
	"github.com/johnquangdev/meeting-insights/internal/infrastructure/database"
	"github.com/johnquangdev/meeting-insights/internal/infrastructure/events"
	"github.com/johnquangdev/meeting-insights/internal/infrastructure/export"
	"github.com/johnquangdev/meeting-insights/internal/infrastructure/external/genai"
	"github.com/johnquangdev/meeting-insights/internal/infrastructure/storage"
	meetingUsecase "github.com/johnquangdev/meeting-insights/internal/usecase/meeting"
	"github.com/johnquangdev/meeting-insights/internal/usecase/pipeline"
	pkgai "github.com/johnquangdev/meeting-insights/pkg/ai"
	"github.com/johnquangdev/meeting-insights/pkg/config"
	pkglogger "github.com/johnquangdev/meeting-insights/pkg/logger"
	pkgvalidator "github.com/johnquangdev/meeting-insights/pkg/validator"
)

// @title           Meeting Insights API
// @version         1.0
// @description     Turns meeting recordings into English transcripts, summaries and action items
// @BasePath        /api

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger, err := pkglogger.New(cfg.Server.Environment)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	ctx := context.Background()

	// Initialize Echo instance
	e := echo.New()
	e.Validator = pkgvalidator.New()
	e.HideBanner = true
	e.HidePort = false

	logger.Info("🔧 Initializing dependencies...")

	meetingRepo, closeRepo := initRepository(ctx, cfg, logger)
	defer closeRepo()

	// Optional collaborators
	opts := []pipeline.Option{pipeline.WithTimeout(cfg.Pipeline.Timeout)}

	transcriptCache, closeCache := initTranscriptCache(ctx, cfg, logger)
	defer closeCache()
	opts = append(opts, pipeline.WithTranscriptCache(transcriptCache, cfg.Pipeline.TranscriptCacheTTL))

	var archive services.AudioArchive
	if cfg.Storage.Enabled {
		logger.Info("📦 Connecting to object storage...", zap.String("endpoint", cfg.Storage.Endpoint))
		minioClient, err := storage.NewMinIOClient(ctx, &cfg.Storage)
		if err != nil {
			logger.Fatal("Failed to initialize object storage", zap.Error(err))
		}
		archive = minioClient
		opts = append(opts, pipeline.WithAudioArchive(archive))
	}

	var publisher services.EventPublisher
	if cfg.Events.NATSURL != "" {
		logger.Info("📡 Connecting to NATS...", zap.String("url", cfg.Events.NATSURL))
		natsPublisher, err := events.NewNATSPublisher(cfg.Events.NATSURL, cfg.Events.SubjectPrefix, logger)
		if err != nil {
			logger.Fatal("Failed to connect to NATS", zap.Error(err))
		}
		defer natsPublisher.Close()
		publisher = natsPublisher
		opts = append(opts, pipeline.WithEventPublisher(publisher))
	}

	// Initialize AI adapters
	logger.Info("🤖 Initializing AI components...", zap.String("transcription_provider", cfg.Transcription.Provider))
	groqClient := pkgai.NewGroqClient(&cfg.Groq)

	var transcriber services.Transcriber
	switch cfg.Transcription.Provider {
	case config.ProviderGroq:
		transcriber = genai.NewGroqTranscriber(groqClient)
	default:
		transcriber = genai.NewAssemblyAITranscriber(pkgai.NewAssemblyAIClient(&cfg.Assembly))
	}

	orchestrator := pipeline.NewOrchestrator(
		transcriber,
		genai.NewTranslator(groqClient),
		genai.NewSummarizer(groqClient),
		genai.NewActionItemExtractor(groqClient),
		meetingRepo,
		logger,
		opts...,
	)

	meetingService := meetingUsecase.NewMeetingService(meetingRepo, export.XLSXExporter{}, archive, publisher, logger)

	// Setup router with handlers
	logger.Info("🛣️  Setting up routes...")
	router := handler.NewRouter(cfg,
		logger,
		handler.NewSummarizeHandler(orchestrator, logger),
		handler.NewMeetingHandler(meetingService, logger),
	)
	router.Setup(e)

	// Start server
	go func() {
		addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
		logger.Info("🚀 Starting server",
			zap.String("addr", addr),
			zap.String("environment", cfg.Server.Environment),
			zap.Strings("allowed_origins", cfg.Server.AllowedOrigins),
		)

		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	logger.Info("🛑 Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error("❌ Server forced to shutdown", zap.Error(err))
		return
	}

	logger.Info("✅ Server stopped gracefully")
}

// initRepository selects the meeting store. The memory driver keeps
// meetings only for the lifetime of the process.
func initRepository(ctx context.Context, cfg *config.Config, logger *zap.Logger) (repositories.MeetingRepository, func()) {
	if cfg.Database.Driver == config.DriverMemory {
		logger.Warn("⚠️  Using in-memory meeting store; data is lost on restart")
		return repository.NewMemoryMeetingRepository(), func() {}
	}

	logger.Info("📦 Connecting to database...")
	db, err := database.NewPostgresDB(ctx, cfg, logger)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}

	// Run migrations only when explicitly enabled in config.
	// Production deployments should run cmd/migrate.
	if cfg.Database.AutoMigrate {
		if cfg.IsProduction() {
			logger.Fatal("DB_AUTO_MIGRATE is enabled in production. Disable it and run cmd/migrate instead.")
		}
		if _, err := database.Migrate(db, migrate.Up, logger); err != nil {
			logger.Fatal("Failed to run migrations", zap.Error(err))
		}
	} else {
		logger.Info("🔄 Skipping migrations; use cmd/migrate for schema changes")
	}

	return repository.NewMeetingRepository(db), func() {
		if err := database.CloseDB(db); err != nil {
			logger.Warn("Failed to close database", zap.Error(err))
		}
	}
}

// initTranscriptCache uses Redis when enabled and an in-process store otherwise
func initTranscriptCache(ctx context.Context, cfg *config.Config, logger *zap.Logger) (services.TranscriptCache, func()) {
	if cfg.Redis.Enabled {
		logger.Info("📦 Connecting to Redis...", zap.String("addr", cfg.GetRedisAddr()))
		store, err := cache.NewRedisStore(ctx, cfg)
		if err != nil {
			logger.Fatal("Failed to connect to Redis", zap.Error(err))
		}
		return store, func() { _ = store.Close() }
	}

	store := cache.NewMemoryStore(5 * time.Minute)
	return store, func() { _ = store.Close() }
}
