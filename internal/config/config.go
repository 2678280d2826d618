// internal/config/config.go

package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all application configuration
type Config struct {
	Environment string
	Server      ServerConfig
	Database    DatabaseConfig
	NATS        NATSConfig
	Events      EventsConfig
	Generator   GeneratorConfig
	Media       MediaConfig
	Log         LogConfig
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Host            string
	Port            int
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration
	CorsOrigins     []string
}

// DatabaseConfig holds database configuration
type DatabaseConfig struct {
	Host         string
	Port         int
	User         string
	Password     string
	Database     string
	MaxOpenConns int
	MaxIdleConns int
	MaxLifetime  time.Duration
	SSLMode      string
}

// NATSConfig holds NATS configuration
type NATSConfig struct {
	URL            string
	MaxReconnects  int
	ReconnectWait  time.Duration
	ConnectTimeout time.Duration
}

// EventsConfig holds event publication configuration
type EventsConfig struct {
	Topic string
}

// GeneratorConfig holds post synthesis configuration
type GeneratorConfig struct {
	DeduplicateHashtags bool
	RandomSeed          int64
	ScheduleWindow      time.Duration
}

// MediaConfig holds media provider configuration
type MediaConfig struct {
	Enabled           bool
	BaseURL           string
	CloudName         string
	RenderConcurrency int
	RenderTimeout     time.Duration
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level  string
	Format string
}

// Load loads configuration from environment variables, reading a .env file
// first when one exists
func Load() (Config, error) {
	// Missing .env is fine; the environment may already be populated
	_ = godotenv.Load()

	config := Config{
		Environment: getEnv("APP_ENV", "development"),
		Server: ServerConfig{
			Host:            getEnv("SERVER_HOST", "0.0.0.0"),
			Port:            getEnvAsInt("SERVER_PORT", 8080),
			ReadTimeout:     getEnvAsDuration("SERVER_READ_TIMEOUT", 10*time.Second),
			WriteTimeout:    getEnvAsDuration("SERVER_WRITE_TIMEOUT", 30*time.Second),
			ShutdownTimeout: getEnvAsDuration("SERVER_SHUTDOWN_TIMEOUT", 10*time.Second),
			CorsOrigins:     getEnvAsSlice("SERVER_CORS_ORIGINS", []string{"*"}),
		},
		Database: DatabaseConfig{
			Host:         getEnv("DB_HOST", "localhost"),
			Port:         getEnvAsInt("DB_PORT", 5432),
			User:         getEnv("DB_USER", "postgres"),
			Password:     getEnv("DB_PASSWORD", "postgres"),
			Database:     getEnv("DB_NAME", "postforge"),
			MaxOpenConns: getEnvAsInt("DB_MAX_OPEN_CONNS", 25),
			MaxIdleConns: getEnvAsInt("DB_MAX_IDLE_CONNS", 5),
			MaxLifetime:  getEnvAsDuration("DB_MAX_LIFETIME", 5*time.Minute),
			SSLMode:      getEnv("DB_SSL_MODE", "disable"),
		},
		NATS: NATSConfig{
			URL:            getEnv("NATS_URL", "nats://localhost:4222"),
			MaxReconnects:  getEnvAsInt("NATS_MAX_RECONNECTS", 10),
			ReconnectWait:  getEnvAsDuration("NATS_RECONNECT_WAIT", 1*time.Second),
			ConnectTimeout: getEnvAsDuration("NATS_CONNECT_TIMEOUT", 2*time.Second),
		},
		Events: EventsConfig{
			Topic: getEnv("EVENTS_TOPIC", "posts"),
		},
		Generator: GeneratorConfig{
			DeduplicateHashtags: getEnvAsBool("GENERATOR_DEDUPLICATE_HASHTAGS", false),
			RandomSeed:          getEnvAsInt64("GENERATOR_RANDOM_SEED", 0),
			ScheduleWindow:      getEnvAsDuration("GENERATOR_SCHEDULE_WINDOW", 24*time.Hour),
		},
		Media: MediaConfig{
			Enabled:           getEnvAsBool("MEDIA_ENABLED", true),
			BaseURL:           getEnv("MEDIA_BASE_URL", "https://res.cloudinary.com"),
			CloudName:         getEnv("MEDIA_CLOUD_NAME", ""),
			RenderConcurrency: getEnvAsInt("MEDIA_RENDER_CONCURRENCY", 4),
			RenderTimeout:     getEnvAsDuration("MEDIA_RENDER_TIMEOUT", 15*time.Second),
		},
		Log: LogConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "text"),
		},
	}

	return config, validate(config)
}

// validate checks if config is valid
func validate(config Config) error {
	if config.Media.Enabled && config.Media.CloudName == "" && config.Environment != "development" {
		return fmt.Errorf("media cloud name must be set when media rendering is enabled outside development")
	}

	if config.Media.RenderConcurrency < 1 {
		return fmt.Errorf("media render concurrency must be at least 1, got %d", config.Media.RenderConcurrency)
	}

	if config.Generator.ScheduleWindow < 0 {
		return fmt.Errorf("generator schedule window cannot be negative")
	}

	return nil
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

func getEnvAsInt64(key string, defaultValue int64) int64 {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseInt(valueStr, 10, 64); err == nil {
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

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := getEnv(key, "")
	if value, err := time.ParseDuration(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsSlice(key string, defaultValue []string) []string {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}
	return strings.Split(valueStr, ",")
}
