// Package config builds the process configuration for the ramen kiosk backend.
// The Config struct is constructed once at startup and passed by reference
// into every component; nothing in this package holds mutable global state.
package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type LogLevel string

const (
	Debug LogLevel = "debug"
	Info  LogLevel = "info"
	Warn  LogLevel = "warn"
	Error LogLevel = "error"
)

// Config holds every runtime setting of the kiosk server.
type Config struct {
	Listen      string
	Port        int
	DBPath      string
	TokenSecret string
	TokenTTL    time.Duration
	LogLevel    LogLevel
	Debug       bool
}

// Load reads configuration from the environment. A .env file in the working
// directory is honored when present. TokenSecret may be empty here; the
// server generates a random one at startup in that case.
func Load() *Config {
	_ = godotenv.Load()

	cfg := &Config{
		Listen:      getEnv("KIOSK_LISTEN", ""),
		Port:        getEnvInt("KIOSK_PORT", 8080),
		DBPath:      getEnv("KIOSK_DB_PATH", "ramen_kiosk.db"),
		TokenSecret: os.Getenv("KIOSK_SECRET_KEY"),
		TokenTTL:    time.Duration(getEnvInt("KIOSK_TOKEN_EXPIRE_MINUTES", 30)) * time.Minute,
		Debug:       os.Getenv("KIOSK_DEBUG") == "true",
	}

	cfg.LogLevel = LogLevel(getEnv("KIOSK_LOG_LEVEL", string(Info)))
	if cfg.Debug {
		cfg.LogLevel = Debug
	}
	return cfg
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return n
}
