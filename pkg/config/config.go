package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Transcription providers
const (
	ProviderAssemblyAI = "assemblyai"
	ProviderGroq       = "groq"
)

// Database drivers
const (
	DriverPostgres = "postgres"
	DriverMemory   = "memory"
)

// Config holds application configuration
type Config struct {
	Server        ServerConfig
	Database      DatabaseConfig
	Redis         RedisConfig
	Storage       StorageConfig
	Assembly      AssemblyAIConfig
	Groq          GroqConfig
	Transcription TranscriptionConfig
	Events        EventsConfig
	Pipeline      PipelineConfig
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Port            string
	Host            string
	Environment     string
	ExtensionID     string
	AllowedOrigins  []string
	ShutdownTimeout int
	MaxAudioSize    string
}

// DatabaseConfig holds database configuration
type DatabaseConfig struct {
	Driver         string
	Host           string
	Port           string
	User           string
	Password       string
	Name           string
	SSLMode        string
	MaxConns       int
	MinConns       int
	AutoMigrate    bool
	ConnectTimeout time.Duration
}

// RedisConfig holds Redis configuration
type RedisConfig struct {
	Enabled  bool
	Host     string
	Port     string
	Password string
	DB       int
}

// StorageConfig holds object storage configuration for archived audio
type StorageConfig struct {
	Enabled         bool
	Endpoint        string
	AccessKeyID     string
	SecretAccessKey string
	BucketName      string
	UseSSL          bool
}

// AssemblyAIConfig holds AssemblyAI credentials
type AssemblyAIConfig struct {
	APIKey  string
	BaseURL string
}

// GroqConfig holds Groq API configuration
type GroqConfig struct {
	APIKey       string
	BaseURL      string
	ChatModel    string
	WhisperModel string
}

// TranscriptionConfig selects the speech-to-text backend
type TranscriptionConfig struct {
	Provider string
}

// EventsConfig holds NATS configuration. Empty URL disables publishing.
type EventsConfig struct {
	NATSURL       string
	SubjectPrefix string
}

// PipelineConfig tunes the audio-to-insight pipeline
type PipelineConfig struct {
	Timeout            time.Duration `envconfig:"TIMEOUT" default:"5m"`
	TranscriptCacheTTL time.Duration `envconfig:"TRANSCRIPT_CACHE_TTL" default:"24h"`
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if exists (ignore error if file doesn't exist)
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found, using environment variables or defaults")
	}

	extensionID := getEnv("EXTENSION_ID", "")

	config := &Config{
		Server: ServerConfig{
			Port:            getEnv("PORT", "8080"),
			Host:            getEnv("HOST", "0.0.0.0"),
			Environment:     getEnv("ENVIRONMENT", "development"),
			ExtensionID:     extensionID,
			AllowedOrigins:  allowedOrigins(extensionID, getEnv("ALLOWED_ORIGINS", "")),
			ShutdownTimeout: getEnvAsInt("SHUTDOWN_TIMEOUT", 10),
			MaxAudioSize:    getEnv("MAX_AUDIO_SIZE", "50M"),
		},
		Database: DatabaseConfig{
			Driver:         getEnv("DB_DRIVER", DriverPostgres),
			Host:           getEnv("DB_HOST", "localhost"),
			Port:           getEnv("DB_PORT", "5432"),
			User:           getEnv("DB_USER", "postgres"),
			Password:       getEnv("DB_PASSWORD", "postgres"),
			Name:           getEnv("DB_NAME", "meeting_insights"),
			SSLMode:        getEnv("DB_SSLMODE", "disable"),
			MaxConns:       getEnvAsInt("DB_MAX_CONNS", 25),
			MinConns:       getEnvAsInt("DB_MIN_CONNS", 5),
			AutoMigrate:    getEnvAsBool("DB_AUTO_MIGRATE", false),
			ConnectTimeout: getEnvAsDuration("DB_CONNECT_TIMEOUT", "30s"),
		},
		Redis: RedisConfig{
			Enabled:  getEnvAsBool("REDIS_ENABLED", false),
			Host:     getEnv("REDIS_HOST", "localhost"),
			Port:     getEnv("REDIS_PORT", "6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvAsInt("REDIS_DB", 0),
		},
		Storage: StorageConfig{
			Enabled:         getEnvAsBool("STORAGE_ENABLED", false),
			Endpoint:        getEnv("STORAGE_ENDPOINT", "localhost:9000"),
			AccessKeyID:     getEnv("STORAGE_ACCESS_KEY", "minioadmin"),
			SecretAccessKey: getEnv("STORAGE_SECRET_KEY", "minioadmin"),
			BucketName:      getEnv("STORAGE_BUCKET", "meeting-insights"),
			UseSSL:          getEnvAsBool("STORAGE_USE_SSL", false),
		},
		Assembly: AssemblyAIConfig{
			APIKey:  getEnv("ASSEMBLYAI_API_KEY", ""),
			BaseURL: getEnv("ASSEMBLYAI_BASE_URL", ""),
		},
		Groq: GroqConfig{
			APIKey:       getEnv("GROQ_API_KEY", ""),
			BaseURL:      getEnv("GROQ_API_URL", "https://api.groq.com"),
			ChatModel:    getEnv("GROQ_CHAT_MODEL", "llama-3.3-70b-versatile"),
			WhisperModel: getEnv("GROQ_WHISPER_MODEL", "whisper-large-v3"),
		},
		Transcription: TranscriptionConfig{
			Provider: strings.ToLower(getEnv("TRANSCRIPTION_PROVIDER", ProviderAssemblyAI)),
		},
		Events: EventsConfig{
			NATSURL:       getEnv("NATS_URL", ""),
			SubjectPrefix: getEnv("NATS_SUBJECT_PREFIX", "meetings"),
		},
	}

	if err := envconfig.Process("pipeline", &config.Pipeline); err != nil {
		return nil, fmt.Errorf("failed to load pipeline config: %w", err)
	}

	// Validate required fields
	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Groq.APIKey == "" {
		return fmt.Errorf("GROQ_API_KEY is required")
	}
	switch c.Transcription.Provider {
	case ProviderAssemblyAI:
		if c.Assembly.APIKey == "" {
			return fmt.Errorf("ASSEMBLYAI_API_KEY is required when TRANSCRIPTION_PROVIDER=%s", ProviderAssemblyAI)
		}
	case ProviderGroq:
	default:
		return fmt.Errorf("unknown TRANSCRIPTION_PROVIDER %q", c.Transcription.Provider)
	}
	switch c.Database.Driver {
	case DriverPostgres, DriverMemory:
	default:
		return fmt.Errorf("unknown DB_DRIVER %q", c.Database.Driver)
	}
	if c.Pipeline.Timeout <= 0 {
		return fmt.Errorf("PIPELINE_TIMEOUT must be positive")
	}
	return nil
}

// GetDatabaseDSN returns the database connection string
func (c *Config) GetDatabaseDSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Database.Host,
		c.Database.Port,
		c.Database.User,
		c.Database.Password,
		c.Database.Name,
		c.Database.SSLMode,
	)
}

// GetRedisAddr returns the Redis address
func (c *Config) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", c.Redis.Host, c.Redis.Port)
}

// IsProduction reports whether the server runs in production
func (c *Config) IsProduction() bool {
	return c.Server.Environment == "production"
}

// allowedOrigins builds the CORS allow-list. The browser extension origin
// comes first when an extension id is configured.
func allowedOrigins(extensionID, extra string) []string {
	var origins []string
	if extensionID != "" {
		origins = append(origins, "chrome-extension://"+extensionID)
	}
	for _, o := range strings.Split(extra, ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	return origins
}

// Helper functions

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseBool(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue string) time.Duration {
	valueStr := getEnv(key, defaultValue)
	duration, err := time.ParseDuration(valueStr)
	if err != nil {
		duration, _ = time.ParseDuration(defaultValue)
	}
	return duration
}
