package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config - структура для хранения конфигурации приложения
type Config struct {
	HTTPPort string `env:"HTTP_PORT" envDefault:"8080"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	// Mail Transport Config
	ResendAPIKey    string        `env:"RESEND_API_KEY"`
	ResendBaseURL   string        `env:"RESEND_BASE_URL" envDefault:"https://api.resend.com"`
	MailFrom        string        `env:"MAIL_FROM" envDefault:"reports@sf-garbage-reporter.app"`
	MailTo          string        `env:"MAIL_TO"`
	DispatchTimeout time.Duration `env:"DISPATCH_TIMEOUT" envDefault:"15s"`

	// Dedup Config
	DedupBackend string        `env:"DEDUP_BACKEND" envDefault:"memory"`
	DedupWindow  time.Duration `env:"DEDUP_WINDOW" envDefault:"5m"`

	// Redis Config (используется только при DEDUP_BACKEND=redis)
	RedisAddr string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPass string `env:"REDIS_PASSWORD"`
	RedisDB   int    `env:"REDIS_DB" envDefault:"0"`

	// Анти-абьюз: подпись тела запроса (опционально)
	SubmitSigningSecret string `env:"SUBMIT_SIGNING_SECRET"`

	// Geo Fence Config: прямоугольник Сан-Франциско по умолчанию
	GeoFenceEnabled bool    `env:"GEO_FENCE_ENABLED" envDefault:"false"`
	GeoFenceNorth   float64 `env:"GEO_FENCE_NORTH" envDefault:"37.9298"`
	GeoFenceSouth   float64 `env:"GEO_FENCE_SOUTH" envDefault:"37.6398"`
	GeoFenceEast    float64 `env:"GEO_FENCE_EAST" envDefault:"-122.2818"`
	GeoFenceWest    float64 `env:"GEO_FENCE_WEST" envDefault:"-122.5912"`
}

// LoadConfig загружает конфигурацию из переменных окружения и .env файла
func LoadConfig() (*Config, error) {
	// Загрузка переменных окружения из .env файла (если есть)
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("ошибка загрузки файла .env: %w", err)
	}

	cfg := &Config{
		HTTPPort:            getEnv("HTTP_PORT", "8080"),
		LogLevel:            getEnv("LOG_LEVEL", "info"),
		ResendAPIKey:        os.Getenv("RESEND_API_KEY"),
		ResendBaseURL:       getEnv("RESEND_BASE_URL", "https://api.resend.com"),
		MailFrom:            getEnv("MAIL_FROM", "reports@sf-garbage-reporter.app"),
		MailTo:              os.Getenv("MAIL_TO"),
		DispatchTimeout:     getEnvAsDuration("DISPATCH_TIMEOUT", 15*time.Second),
		DedupBackend:        getEnv("DEDUP_BACKEND", "memory"),
		DedupWindow:         getEnvAsDuration("DEDUP_WINDOW", 5*time.Minute),
		RedisAddr:           getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPass:           os.Getenv("REDIS_PASSWORD"),
		RedisDB:             getEnvAsInt("REDIS_DB", 0),
		SubmitSigningSecret: os.Getenv("SUBMIT_SIGNING_SECRET"),
		GeoFenceEnabled:     getEnvAsBool("GEO_FENCE_ENABLED", false),
		GeoFenceNorth:       getEnvAsFloat("GEO_FENCE_NORTH", 37.9298),
		GeoFenceSouth:       getEnvAsFloat("GEO_FENCE_SOUTH", 37.6398),
		GeoFenceEast:        getEnvAsFloat("GEO_FENCE_EAST", -122.2818),
		GeoFenceWest:        getEnvAsFloat("GEO_FENCE_WEST", -122.5912),
	}

	if cfg.DedupBackend != "memory" && cfg.DedupBackend != "redis" {
		return nil, fmt.Errorf("DEDUP_BACKEND must be 'memory' or 'redis', got %q", cfg.DedupBackend)
	}

	if cfg.MailTo == "" {
		return nil, fmt.Errorf("MAIL_TO environment variable is required")
	}

	// Отсутствие RESEND_API_KEY не фатально при старте: каждая отправка
	// завершится быстрой внутренней ошибкой вместо попытки вызова транспорта.

	return cfg, nil
}

// getEnv возвращает значение переменной окружения или значение по умолчанию
func getEnv(key string, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt возвращает значение переменной окружения как int или значение по умолчанию
func getEnvAsInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvAsFloat возвращает значение переменной окружения как float64 или значение по умолчанию
func getEnvAsFloat(key string, defaultValue float64) float64 {
	if value, exists := os.LookupEnv(key); exists {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}

// getEnvAsBool возвращает значение переменной окружения как bool или значение по умолчанию
func getEnvAsBool(key string, defaultValue bool) bool {
	if value, exists := os.LookupEnv(key); exists {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

// getEnvAsDuration возвращает значение переменной окружения как time.Duration или значение по умолчанию
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if durationValue, err := time.ParseDuration(value); err == nil {
			return durationValue
		}
	}
	return defaultValue
}
