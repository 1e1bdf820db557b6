package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	Port        int
	Environment string
	LogLevel    string
	LogFormat   string

	DBUser     string
	DBPassword string
	DBHost     string
	DBPort     string
	DBName     string

	// JWTSecret signs session tokens. Must be set.
	JWTSecret string
	TokenTTL  time.Duration

	// Timezone is the canonical deployment timezone. All clients share the
	// same "today" for the daily song, regardless of where they browse from.
	Timezone string

	// StorageDir is the root directory for uploaded memory photos and avatars
	StorageDir     string
	MaxUploadBytes int64

	// ITunesBaseURL points at the iTunes Search API (overridable for tests)
	ITunesBaseURL string

	// Discord winner announcements are enabled when both values are set
	DiscordToken     string
	DiscordChannelID string
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{
		Environment: getEnv("APP_ENV", "dev"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		LogFormat:   getEnv("LOG_FORMAT", "text"),

		DBUser:     getEnv("DB_USER", "postgres"),
		DBPassword: getEnv("DB_PASSWORD", "postgres"),
		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBName:     getEnv("DB_NAME", "campuslife"),

		JWTSecret: getEnv("JWT_SECRET", ""),
		Timezone:  getEnv("APP_TIMEZONE", DefaultTimezone),

		StorageDir:    getEnv("STORAGE_DIR", "storage"),
		ITunesBaseURL: getEnv("ITUNES_BASE_URL", DefaultITunesBaseURL),

		DiscordToken:     getEnv("DISCORD_TOKEN", ""),
		DiscordChannelID: getEnv("DISCORD_CHANNEL_ID", ""),
	}

	portStr := getEnv("PORT", "8080")
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return nil, fmt.Errorf("invalid PORT value: %w", err)
	}
	cfg.Port = port

	ttlStr := getEnv("TOKEN_TTL", DefaultTokenTTL)
	ttl, err := time.ParseDuration(ttlStr)
	if err != nil {
		return nil, fmt.Errorf("invalid TOKEN_TTL value: %w", err)
	}
	cfg.TokenTTL = ttl

	maxUploadStr := getEnv("MAX_UPLOAD_BYTES", strconv.FormatInt(DefaultMaxUploadBytes, 10))
	maxUpload, err := strconv.ParseInt(maxUploadStr, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid MAX_UPLOAD_BYTES value: %w", err)
	}
	cfg.MaxUploadBytes = maxUpload

	// Validate session secret is set
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET environment variable must be set for security")
	}

	// The timezone must resolve; a bad value would split "today" across clients
	if _, err := time.LoadLocation(cfg.Timezone); err != nil {
		return nil, fmt.Errorf("invalid APP_TIMEZONE value %q: %w", cfg.Timezone, err)
	}

	return cfg, nil
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// GetDBConnString returns the PostgreSQL connection string
func (c *Config) GetDBConnString() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		c.DBUser,
		c.DBPassword,
		c.DBHost,
		c.DBPort,
		c.DBName,
	)
}

// AnnouncementsEnabled reports whether Discord winner announcements are configured
func (c *Config) AnnouncementsEnabled() bool {
	return c.DiscordToken != "" && c.DiscordChannelID != ""
}
