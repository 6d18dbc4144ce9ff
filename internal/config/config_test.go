package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

// setRequired sets the variables Load refuses to run without
func setRequired(t *testing.T) {
	t.Helper()
	t.Setenv("BOT_TOKEN", "test_token")
	t.Setenv("BOT_PASSWORD", "test_password")
	t.Setenv("DB_PASSWORD", "test_db_password")
}

func TestGetEnv(t *testing.T) {
	tests := []struct {
		name         string
		key          string
		defaultValue string
		setEnv       bool
		envValue     string
		expected     string
	}{
		{
			name:         "env variable set",
			key:          "TEST_KEY",
			defaultValue: "default",
			setEnv:       true,
			envValue:     "custom",
			expected:     "custom",
		},
		{
			name:         "env variable not set",
			key:          "TEST_KEY_NOT_SET",
			defaultValue: "default",
			setEnv:       false,
			expected:     "default",
		},
		{
			name:         "empty value falls back to default",
			key:          "TEST_KEY_EMPTY",
			defaultValue: "default",
			setEnv:       true,
			envValue:     "",
			expected:     "default",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.setEnv {
				t.Setenv(tt.key, tt.envValue)
			}

			result := getEnv(tt.key, tt.defaultValue)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestDatabaseConfig_DSN(t *testing.T) {
	cfg := &DatabaseConfig{
		Host:     "localhost",
		Port:     "5432",
		User:     "testuser",
		Password: "testpass",
		Name:     "testdb",
	}

	dsn := cfg.DSN()
	expected := "host=localhost port=5432 user=testuser password=testpass dbname=testdb sslmode=disable"
	assert.Equal(t, expected, dsn)
}

func TestLoad_MissingRequiredFields(t *testing.T) {
	tests := []struct {
		name    string
		unset   string
		missing string
	}{
		{name: "missing bot token", unset: "BOT_TOKEN", missing: "BOT_TOKEN"},
		{name: "missing bot password", unset: "BOT_PASSWORD", missing: "BOT_PASSWORD"},
		{name: "missing db password", unset: "DB_PASSWORD", missing: "DB_PASSWORD"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setRequired(t)
			t.Setenv(tt.unset, "")

			cfg, err := Load()
			assert.Error(t, err)
			assert.Nil(t, cfg)
			assert.Contains(t, err.Error(), tt.missing)
		})
	}
}

func TestLoad_WithDefaults(t *testing.T) {
	setRequired(t)
	for _, key := range []string{"DB_HOST", "DB_PORT", "DB_NAME", "DB_USER", "WORDBANK_LOCALE", "STORE_IDLE_TTL"} {
		t.Setenv(key, "")
	}

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "test_token", cfg.BotToken)
	assert.Equal(t, "test_password", cfg.BotPassword)
	assert.Equal(t, "localhost", cfg.Database.Host)
	assert.Equal(t, "5432", cfg.Database.Port)
	assert.Equal(t, "wordbank", cfg.Database.Name)
	assert.Equal(t, "wordbank", cfg.Database.User)
	assert.Equal(t, language.English, cfg.WordBank.Locale)
	assert.Equal(t, 6*time.Hour, cfg.WordBank.StoreIdleTTL)
}

func TestLoad_WordBankSettings(t *testing.T) {
	tests := []struct {
		name          string
		locale        string
		idleTTL       string
		expectedTag   language.Tag
		expectedTTL   time.Duration
		expectedError string
	}{
		{
			name:        "custom values",
			locale:      "sv",
			idleTTL:     "30m",
			expectedTag: language.Swedish,
			expectedTTL: 30 * time.Minute,
		},
		{
			name:          "invalid locale",
			locale:        "not a locale!",
			idleTTL:       "1h",
			expectedError: "WORDBANK_LOCALE",
		},
		{
			name:          "invalid ttl",
			locale:        "en",
			idleTTL:       "soon",
			expectedError: "STORE_IDLE_TTL",
		},
		{
			name:          "negative ttl",
			locale:        "en",
			idleTTL:       "-1h",
			expectedError: "STORE_IDLE_TTL",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setRequired(t)
			t.Setenv("WORDBANK_LOCALE", tt.locale)
			t.Setenv("STORE_IDLE_TTL", tt.idleTTL)

			cfg, err := Load()

			if tt.expectedError != "" {
				assert.Error(t, err)
				assert.Nil(t, cfg)
				assert.Contains(t, err.Error(), tt.expectedError)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.expectedTag, cfg.WordBank.Locale)
			assert.Equal(t, tt.expectedTTL, cfg.WordBank.StoreIdleTTL)
		})
	}
}

func TestLoadDatabase(t *testing.T) {
	t.Setenv("DB_PASSWORD", "")
	_, err := LoadDatabase()
	assert.Error(t, err)

	t.Setenv("DB_PASSWORD", "secret")
	t.Setenv("DB_NAME", "vocab")
	db, err := LoadDatabase()
	require.NoError(t, err)
	assert.Equal(t, "vocab", db.Name)
}
