package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds all application configuration
type Config struct {
	BotToken    string
	BotPassword string

	ClckAPIKey string
	ClckAPIURL string

	CatalogPath     string
	HistoryLimit    int
	AuthMaxAttempts int

	Database DatabaseConfig
}

// DatabaseConfig holds database connection settings
type DatabaseConfig struct {
	Host     string
	Port     string
	Name     string
	User     string
	Password string
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	// Try to load .env file (ignore error if not exists)
	_ = godotenv.Load()

	historyLimit, err := getEnvInt("HISTORY_LIMIT", 20)
	if err != nil {
		return nil, err
	}
	maxAttempts, err := getEnvInt("AUTH_MAX_ATTEMPTS", 3)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		BotToken:        os.Getenv("BOT_TOKEN"),
		BotPassword:     os.Getenv("BOT_PASSWORD"),
		ClckAPIKey:      os.Getenv("CLCK_API_KEY"),
		ClckAPIURL:      getEnv("CLCK_API_URL", "https://clck.ru/--"),
		CatalogPath:     getEnv("CATALOG_PATH", "data/utm_data.json"),
		HistoryLimit:    historyLimit,
		AuthMaxAttempts: maxAttempts,
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			Name:     getEnv("DB_NAME", "utmbot"),
			User:     getEnv("DB_USER", "utmbot"),
			Password: os.Getenv("DB_PASSWORD"),
		},
	}

	// Validate required fields
	if cfg.BotToken == "" {
		return nil, fmt.Errorf("BOT_TOKEN is required")
	}
	if cfg.BotPassword == "" {
		return nil, fmt.Errorf("BOT_PASSWORD is required")
	}
	if cfg.ClckAPIKey == "" {
		return nil, fmt.Errorf("CLCK_API_KEY is required")
	}
	if cfg.Database.Password == "" {
		return nil, fmt.Errorf("DB_PASSWORD is required")
	}

	return cfg, nil
}

// DSN returns PostgreSQL connection string
func (c *Config) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		c.Database.Host,
		c.Database.Port,
		c.Database.User,
		c.Database.Password,
		c.Database.Name,
	)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}

	parsed, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer: %w", key, err)
	}
	if parsed < 1 {
		return 0, fmt.Errorf("%s must be positive", key)
	}
	return parsed, nil
}
