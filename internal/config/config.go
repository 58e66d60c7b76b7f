package config

import (
	"errors"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

type Config struct {
	Env  string
	Port string

	DB    DBConfig
	Auth  AuthConfig
	Redis RedisConfig

	OpenAI OpenAIConfig
	USDA   USDAConfig

	Location    *time.Location
	CleanupCron string
	SessionTTL  time.Duration
}

type DBConfig struct {
	Driver   string
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	SSLMode  string
	Path     string
	TimeZone string
}

type AuthConfig struct {
	JWTSecret string
	TokenTTL  time.Duration
}

type RedisConfig struct {
	URL          string
	FoodCacheTTL time.Duration
}

type OpenAIConfig struct {
	APIKey  string
	BaseURL string
	Model   string
}

type USDAConfig struct {
	APIKey  string
	BaseURL string
}

var ErrMissingJWTSecret = errors.New("JWT_SECRET_KEY is not set")

// Load reads .env when present and builds the configuration from the
// environment. Only the JWT secret is required.
func Load(log *zap.Logger) (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Warn("No .env file found, using system env")
	}
	return FromEnv(log)
}

func FromEnv(log *zap.Logger) (*Config, error) {
	tzName := getEnv("APP_TIMEZONE", "Asia/Ho_Chi_Minh")
	loc, err := time.LoadLocation(tzName)
	if err != nil {
		log.Warn("Unknown APP_TIMEZONE, falling back to UTC", zap.String("timezone", tzName), zap.Error(err))
		loc = time.UTC
	}

	cfg := &Config{
		Env:  getEnv("ENV", "development"),
		Port: getEnv("PORT", "8080"),
		DB: DBConfig{
			Driver:   strings.ToLower(getEnv("DB_DRIVER", "postgres")),
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", ""),
			Name:     getEnv("DB_NAME", "dietai"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
			Path:     getEnv("DB_PATH", "dietai.db"),
			TimeZone: tzName,
		},
		Auth: AuthConfig{
			JWTSecret: os.Getenv("JWT_SECRET_KEY"),
			TokenTTL:  getDuration("JWT_TTL", 72*time.Hour, log),
		},
		Redis: RedisConfig{
			URL:          os.Getenv("REDIS_URL"),
			FoodCacheTTL: getDuration("FOOD_CACHE_TTL", 24*time.Hour, log),
		},
		OpenAI: OpenAIConfig{
			APIKey:  os.Getenv("OPENAI_API_KEY"),
			BaseURL: getEnv("OPENAI_BASE_URL", "https://api.openai.com/v1"),
			Model:   getEnv("OPENAI_MODEL", "gpt-3.5-turbo"),
		},
		USDA: USDAConfig{
			APIKey:  os.Getenv("USDA_API_KEY"),
			BaseURL: getEnv("USDA_BASE_URL", "https://api.nal.usda.gov/fdc/v1"),
		},
		Location:    loc,
		CleanupCron: getEnv("ONBOARDING_CLEANUP_CRON", "0 3 * * *"),
		SessionTTL:  getDuration("ONBOARDING_SESSION_TTL", 720*time.Hour, log),
	}

	if cfg.Auth.JWTSecret == "" {
		log.Error("Required environment variable is not set", zap.String("key", "JWT_SECRET_KEY"))
		return nil, ErrMissingJWTSecret
	}
	if cfg.OpenAI.APIKey == "" {
		log.Warn("OPENAI_API_KEY is not set, chat requests will fail")
	}
	if cfg.USDA.APIKey == "" {
		log.Warn("USDA_API_KEY is not set, food search will fail")
	}
	return cfg, nil
}

func getEnv(key, fallback string) string {
	if val, ok := os.LookupEnv(key); ok && strings.TrimSpace(val) != "" {
		return strings.TrimSpace(val)
	}
	return fallback
}

func getDuration(key string, fallback time.Duration, log *zap.Logger) time.Duration {
	raw, ok := os.LookupEnv(key)
	if !ok || strings.TrimSpace(raw) == "" {
		return fallback
	}
	d, err := time.ParseDuration(strings.TrimSpace(raw))
	if err != nil || d <= 0 {
		log.Warn("Invalid duration, using default", zap.String("key", key), zap.String("value", raw), zap.Duration("default", fallback))
		return fallback
	}
	return d
}
