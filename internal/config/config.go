package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/sirupsen/logrus"
)

type Config struct {
	// ConfigPath maps to CONFIG_PATH: the planet config.ini to check.
	ConfigPath string `envconfig:"CONFIG_PATH" default:"./moztw/config.ini"`

	// UserAgent maps to USER_AGENT, sent on every request.
	UserAgent string `envconfig:"USER_AGENT" default:"moztw-urlcheck/1.0"`

	// CheckTimeout maps to CHECK_TIMEOUT. Zero means no timeout at all,
	// so a hung request holds up the whole batch.
	CheckTimeout time.Duration `envconfig:"CHECK_TIMEOUT" default:"0s"`

	// LogLevel maps to LOG_LEVEL (logrus levels: debug, info, warn, ...).
	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`
}

// Load processes environment variables and populates the Config struct.
func Load() (*Config, error) {
	// 1. Try to load .env file (if it exists).
	// No panic here: in CI there usually is no .env file
	// (vars are injected directly).
	if err := godotenv.Load(); err != nil {
		// Only log if the file actually exists but failed to load.
		if _, statErr := os.Stat(".env"); statErr == nil {
			logrus.Warnf(".env file found but could not be loaded: %v", err)
		}
	}

	// 2. Process Environment Variables (System + Loaded from .env)
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
