package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	StorageDriverPostgres = "postgres"
	StorageDriverMemory   = "memory"
)

// Config - структура для хранения конфигурации приложения
type Config struct {
	DatabaseURL    string `env:"DATABASE_URL"`
	StorageDriver  string `env:"STORAGE_DRIVER" envDefault:"postgres"`
	MigrationsPath string `env:"MIGRATIONS_PATH" envDefault:"file://migrations"`
	SeedUsersFile  string `env:"SEED_USERS_FILE"` // профили для STORAGE_DRIVER=memory
	DBMaxConns     int    `env:"DB_MAX_CONNS" envDefault:"10"`
	HTTPPort       string `env:"HTTP_PORT" envDefault:"8080"`
	LogLevel       string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat      string `env:"LOG_FORMAT" envDefault:"json"`

	// Redis Config
	RedisAddr string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPass string `env:"REDIS_PASSWORD"`
	RedisDB   int    `env:"REDIS_DB" envDefault:"0"`

	// Webhook Config
	WebhookURL        string        `env:"WEBHOOK_URL"`
	WebhookSecret     string        `env:"WEBHOOK_SECRET"`
	WebhookTimeout    time.Duration `env:"WEBHOOK_TIMEOUT" envDefault:"5s"`
	WebhookMaxRetries int           `env:"WEBHOOK_MAX_RETRIES" envDefault:"3"`
	WebhookBaseDelay  time.Duration `env:"WEBHOOK_BASE_DELAY" envDefault:"1s"`

	// Stats Config
	StatsTimeWindowMinutes int `env:"STATS_TIME_WINDOW_MINUTES" envDefault:"60"`

	// API Keys for admin endpoints
	APIKeys []string `env:"API_KEYS"`

	// JWT, выпущенный внешним провайдером идентификации
	JWTSecret string `env:"JWT_SECRET"`
	JWTIssuer string `env:"JWT_ISSUER"`

	// Check-in policy
	CheckInCooldown     time.Duration `env:"CHECKIN_COOLDOWN" envDefault:"5m"`
	PresenceWindow      time.Duration `env:"PRESENCE_WINDOW" envDefault:"5m"`
	DefaultRadiusMeters float64       `env:"DEFAULT_RADIUS_METERS" envDefault:"1000"`
	TimelineLimit       int           `env:"TIMELINE_LIMIT" envDefault:"50"`

	// Rate limiting
	RateLimitPerMinute int `env:"RATE_LIMIT_PER_MINUTE" envDefault:"60"`
	RateLimitBurst     int `env:"RATE_LIMIT_BURST" envDefault:"10"`
}

// LoadConfig загружает конфигурацию из переменных окружения и .env файла
func LoadConfig() (*Config, error) {
	// Загрузка переменных окружения из .env файла (если есть)
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("ошибка загрузки файла .env: %w", err)
	}

	cfg := &Config{
		DatabaseURL:            os.Getenv("DATABASE_URL"),
		StorageDriver:          strings.ToLower(getEnv("STORAGE_DRIVER", StorageDriverPostgres)),
		MigrationsPath:         getEnv("MIGRATIONS_PATH", "file://migrations"),
		SeedUsersFile:          os.Getenv("SEED_USERS_FILE"),
		DBMaxConns:             getEnvAsInt("DB_MAX_CONNS", 10),
		HTTPPort:               getEnv("HTTP_PORT", "8080"),
		LogLevel:               getEnv("LOG_LEVEL", "info"),
		LogFormat:              getEnv("LOG_FORMAT", "json"),
		RedisAddr:              getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPass:              os.Getenv("REDIS_PASSWORD"),
		RedisDB:                getEnvAsInt("REDIS_DB", 0),
		WebhookURL:             os.Getenv("WEBHOOK_URL"),
		WebhookSecret:          os.Getenv("WEBHOOK_SECRET"),
		WebhookTimeout:         getEnvAsDuration("WEBHOOK_TIMEOUT", 5*time.Second),
		WebhookMaxRetries:      getEnvAsInt("WEBHOOK_MAX_RETRIES", 3),
		WebhookBaseDelay:       getEnvAsDuration("WEBHOOK_BASE_DELAY", time.Second),
		StatsTimeWindowMinutes: getEnvAsInt("STATS_TIME_WINDOW_MINUTES", 60),
		JWTSecret:              os.Getenv("JWT_SECRET"),
		JWTIssuer:              os.Getenv("JWT_ISSUER"),
		CheckInCooldown:        getEnvAsDuration("CHECKIN_COOLDOWN", 5*time.Minute),
		PresenceWindow:         getEnvAsDuration("PRESENCE_WINDOW", 5*time.Minute),
		DefaultRadiusMeters:    getEnvAsFloat("DEFAULT_RADIUS_METERS", 1000),
		TimelineLimit:          getEnvAsInt("TIMELINE_LIMIT", 50),
		RateLimitPerMinute:     getEnvAsInt("RATE_LIMIT_PER_MINUTE", 60),
		RateLimitBurst:         getEnvAsInt("RATE_LIMIT_BURST", 10),
	}

	// Загрузка API ключей
	apiKeysStr := os.Getenv("API_KEYS")
	if apiKeysStr != "" {
		cfg.APIKeys = strings.Split(apiKeysStr, ",")
		for i, key := range cfg.APIKeys {
			cfg.APIKeys[i] = strings.TrimSpace(key)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate проверяет согласованность значений конфигурации
func (c *Config) Validate() error {
	switch c.StorageDriver {
	case StorageDriverPostgres:
		if c.DatabaseURL == "" {
			return fmt.Errorf("DATABASE_URL environment variable is required")
		}
	case StorageDriverMemory:
	default:
		return fmt.Errorf("unsupported STORAGE_DRIVER %q", c.StorageDriver)
	}

	if c.JWTSecret == "" {
		return fmt.Errorf("JWT_SECRET environment variable is required")
	}
	if c.CheckInCooldown <= 0 {
		return fmt.Errorf("CHECKIN_COOLDOWN must be positive, got %s", c.CheckInCooldown)
	}
	if c.PresenceWindow <= 0 {
		return fmt.Errorf("PRESENCE_WINDOW must be positive, got %s", c.PresenceWindow)
	}
	if c.DefaultRadiusMeters <= 0 {
		return fmt.Errorf("DEFAULT_RADIUS_METERS must be positive, got %v", c.DefaultRadiusMeters)
	}
	if c.TimelineLimit < 1 {
		return fmt.Errorf("TIMELINE_LIMIT must be at least 1, got %d", c.TimelineLimit)
	}
	return nil
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

// getEnvAsDuration возвращает значение переменной окружения как time.Duration или значение по умолчанию
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if durationValue, err := time.ParseDuration(value); err == nil {
			return durationValue
		}
	}
	return defaultValue
}
