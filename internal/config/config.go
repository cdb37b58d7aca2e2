package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Redis    RedisConfig
	AI       AIConfig
	Events   EventsConfig
	Auth     AuthConfig
	Batch    BatchConfig
}

type AppConfig struct {
	AppName        string
	Environment    string
	HTTPPort       string
	LogJSON        bool
	RequestTimeout time.Duration
	MaxConcurrency int
}

type DatabaseConfig struct {
	DBHost       string
	DBPort       string
	DBName       string
	DBUser       string
	DBPassword   string
	DBSSLMode    string
	PoolMaxConns int32
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
}

type AIConfig struct {
	GeminiAPIKey   string
	GeminiModel    string
	EmbeddingModel string
	// EmbeddingDimensions is fixed by the vector table layout.
	EmbeddingDimensions int
}

type EventsConfig struct {
	AMQPURI string
}

type AuthConfig struct {
	// JWTSecret enables bearer-token verification when non-empty.
	JWTSecret string
}

type BatchConfig struct {
	// CronSpec schedules the affinity batch, robfig/cron syntax.
	CronSpec string
	Timeout  time.Duration
}

var errMissingRequiredEnv = errors.New("missing required environment variables")

func Load() (Config, error) {
	// A local .env is a development convenience; absence is not an error.
	_ = godotenv.Load()

	cfg := Config{}

	var missing []string
	req := func(key string) string {
		v := strings.TrimSpace(os.Getenv(key))
		if v == "" {
			missing = append(missing, key)
		}
		return v
	}
	opt := func(key, fallback string) string {
		v := strings.TrimSpace(os.Getenv(key))
		if v == "" {
			return fallback
		}
		return v
	}

	cfg.App = AppConfig{
		AppName:        opt("APP_NAME", "talent-optimizer"),
		Environment:    opt("APP_ENV", "development"),
		HTTPPort:       req("HTTP_PORT"),
		LogJSON:        opt("LOG_FORMAT", "console") == "json",
		RequestTimeout: optDuration("REQUEST_TIMEOUT", 60*time.Second),
		MaxConcurrency: optInt("MAX_CONCURRENCY", 8),
	}

	cfg.Database = DatabaseConfig{
		DBHost:       opt("DB_HOST", "localhost"),
		DBPort:       opt("DB_PORT", "5432"),
		DBName:       req("DB_NAME"),
		DBUser:       req("DB_USER"),
		DBPassword:   os.Getenv("DB_PASSWORD"),
		DBSSLMode:    opt("DB_SSL_MODE", "disable"),
		PoolMaxConns: int32(optInt("DB_POOL_MAX_CONNS", 0)),
	}

	cfg.Redis = RedisConfig{
		Host:     opt("REDIS_HOST", "localhost"),
		Port:     opt("REDIS_PORT", "6379"),
		Password: os.Getenv("REDIS_PASSWORD"),
	}

	cfg.AI = AIConfig{
		GeminiAPIKey:        strings.TrimSpace(os.Getenv("GEMINI_API_KEY")),
		GeminiModel:         opt("GEMINI_MODEL", "gemini-2.5-flash"),
		EmbeddingModel:      opt("EMBEDDING_MODEL", "gemini-embedding-001"),
		EmbeddingDimensions: 1536,
	}

	cfg.Events = EventsConfig{
		AMQPURI: strings.TrimSpace(os.Getenv("AMQP_URI")),
	}

	cfg.Auth = AuthConfig{
		JWTSecret: strings.TrimSpace(os.Getenv("AUTH_JWT_SECRET")),
	}

	cfg.Batch = BatchConfig{
		CronSpec: opt("AFFINITY_CRON", "@daily"),
		Timeout:  optDuration("BATCH_TIMEOUT", 15*time.Minute),
	}

	if len(missing) > 0 {
		return Config{}, fmt.Errorf("%w: %s", errMissingRequiredEnv, strings.Join(missing, ", "))
	}

	return cfg, nil
}

func optInt(key string, fallback int) int {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v <= 0 {
		return fallback
	}
	return v
}

func optDuration(key string, fallback time.Duration) time.Duration {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback
	}
	v, err := time.ParseDuration(raw)
	if err != nil || v <= 0 {
		return fallback
	}
	return v
}
