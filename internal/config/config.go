package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/text/language"
)

// Config holds all application configuration
type Config struct {
	BotToken    string
	BotPassword string
	Database    DatabaseConfig
	WordBank    WordBankConfig
}

// DatabaseConfig holds database connection settings
type DatabaseConfig struct {
	Host     string
	Port     string
	Name     string
	User     string
	Password string
}

// WordBankConfig holds word bank store settings
type WordBankConfig struct {
	// Locale drives the comparison used by the sort modes
	Locale language.Tag
	// StoreIdleTTL is how long an unused store stays loaded
	StoreIdleTTL time.Duration
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	// Try to load .env file (ignore error if not exists)
	_ = godotenv.Load()

	cfg := &Config{
		BotToken:    os.Getenv("BOT_TOKEN"),
		BotPassword: os.Getenv("BOT_PASSWORD"),
		Database:    loadDatabase(),
	}

	// Validate required fields
	if cfg.BotToken == "" {
		return nil, fmt.Errorf("BOT_TOKEN is required")
	}
	if cfg.BotPassword == "" {
		return nil, fmt.Errorf("BOT_PASSWORD is required")
	}
	if cfg.Database.Password == "" {
		return nil, fmt.Errorf("DB_PASSWORD is required")
	}

	wordBank, err := loadWordBank()
	if err != nil {
		return nil, err
	}
	cfg.WordBank = wordBank

	return cfg, nil
}

// LoadDatabase reads only the database settings, for commands that do not run the bot
func LoadDatabase() (*DatabaseConfig, error) {
	_ = godotenv.Load()

	db := loadDatabase()
	if db.Password == "" {
		return nil, fmt.Errorf("DB_PASSWORD is required")
	}
	return &db, nil
}

func loadDatabase() DatabaseConfig {
	return DatabaseConfig{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     getEnv("DB_PORT", "5432"),
		Name:     getEnv("DB_NAME", "wordbank"),
		User:     getEnv("DB_USER", "wordbank"),
		Password: os.Getenv("DB_PASSWORD"),
	}
}

func loadWordBank() (WordBankConfig, error) {
	locale, err := language.Parse(getEnv("WORDBANK_LOCALE", "en"))
	if err != nil {
		return WordBankConfig{}, fmt.Errorf("invalid WORDBANK_LOCALE: %w", err)
	}

	idleTTL, err := time.ParseDuration(getEnv("STORE_IDLE_TTL", "6h"))
	if err != nil {
		return WordBankConfig{}, fmt.Errorf("invalid STORE_IDLE_TTL: %w", err)
	}
	if idleTTL <= 0 {
		return WordBankConfig{}, fmt.Errorf("STORE_IDLE_TTL must be positive")
	}

	return WordBankConfig{Locale: locale, StoreIdleTTL: idleTTL}, nil
}

// DSN returns PostgreSQL connection string
func (c *DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		c.Host,
		c.Port,
		c.User,
		c.Password,
		c.Name,
	)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
