package config

import (
	"fmt"
	"os"

	"github.com/govalues/decimal"
	"github.com/joho/godotenv"
)

// Config holds all application configuration
type Config struct {
	BotToken       string
	CatalogPath    string
	DefaultBalance decimal.Decimal
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	// Try to load .env file (ignore error if not exists)
	_ = godotenv.Load()

	cfg := &Config{
		BotToken:    os.Getenv("BOT_TOKEN"),
		CatalogPath: os.Getenv("CATALOG_PATH"),
	}

	if cfg.BotToken == "" {
		return nil, fmt.Errorf("BOT_TOKEN is required")
	}

	raw := getEnv("WALLET_DEFAULT_BALANCE", "50.00")
	balance, err := decimal.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("invalid WALLET_DEFAULT_BALANCE %q: %w", raw, err)
	}
	if balance.IsNeg() {
		return nil, fmt.Errorf("WALLET_DEFAULT_BALANCE must not be negative, got %q", raw)
	}
	cfg.DefaultBalance = balance

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
