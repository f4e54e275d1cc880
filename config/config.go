// Package config provides centralized configuration for the sqlcontroller demo.
package config

import (
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds all application configuration values.
type Config struct {
	DBPath        string // Path to the SQLite database file
	SchemaPath    string // Optional path to a YAML schema definition file
	BusyTimeoutMS int    // SQLite busy timeout in milliseconds
	LogLevel      string // Log level: debug, info, warn, or error
	RemoteURL     string // Optional libsql:// URL; set to use a hosted database
	AuthToken     string // Auth token for the hosted database
}

// Cfg is the global configuration instance, loaded at startup.
var Cfg Config

func init() {
	// Load .env file before reading config (ignore error if file doesn't exist)
	godotenv.Load()
	Cfg = Load()
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	busyTimeout := 5000
	if val := os.Getenv("SQLC_BUSY_TIMEOUT_MS"); val != "" {
		if t, err := strconv.Atoi(val); err == nil && t > 0 {
			busyTimeout = t
		}
	}

	return Config{
		DBPath:        getEnv("SQLC_DB_PATH", "data/sqlcontroller.db"),
		SchemaPath:    os.Getenv("SQLC_SCHEMA_PATH"),
		BusyTimeoutMS: busyTimeout,
		LogLevel:      strings.ToLower(getEnv("SQLC_LOG_LEVEL", "info")),
		RemoteURL:     os.Getenv("SQLC_REMOTE_URL"),
		AuthToken:     os.Getenv("SQLC_AUTH_TOKEN"),
	}
}

// SlogLevel maps the configured log level onto a slog level.
func (c Config) SlogLevel() slog.Level {
	switch c.LogLevel {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// getEnv returns the environment variable value or a default if not set.
func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
