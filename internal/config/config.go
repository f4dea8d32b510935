// Package config provides application configuration management.
// It loads configuration from environment variables with support for .env files.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"

	"github.com/qwikker/business-import/internal/infrastructure/logger"
)

// Config holds all application configuration.
type Config struct {
	Server    ServerConfig
	Preview   PreviewConfig
	RateLimit RateLimitConfig
	Logging   logger.Config
	App       AppConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port            int           `env:"SERVER_PORT" envDefault:"8080"`
	ReadTimeout     time.Duration `env:"SERVER_READ_TIMEOUT" envDefault:"10s"`
	WriteTimeout    time.Duration `env:"SERVER_WRITE_TIMEOUT" envDefault:"10s"`
	ShutdownTimeout time.Duration `env:"SERVER_SHUTDOWN_TIMEOUT" envDefault:"10s"`

	// TrustProxy honors X-Forwarded-For when identifying clients
	TrustProxy bool `env:"SERVER_TRUST_PROXY" envDefault:"false"`
}

// PreviewConfig holds import preview settings.
type PreviewConfig struct {
	// Timeout bounds a single preview request
	Timeout time.Duration `env:"PREVIEW_TIMEOUT" envDefault:"2s"`

	// WarningThreshold flags previews above this many external requests
	WarningThreshold int `env:"PREVIEW_WARNING_THRESHOLD" envDefault:"300"`

	// CategoryConfigPath optionally points at a YAML file overriding category types
	CategoryConfigPath string `env:"CATEGORY_CONFIG_PATH"`
}

// RateLimitConfig holds per-client throttling for the API.
type RateLimitConfig struct {
	Enabled           bool    `env:"RATE_LIMIT_ENABLED" envDefault:"true"`
	RequestsPerSecond float64 `env:"RATE_LIMIT_RPS" envDefault:"10"`
	Burst             int     `env:"RATE_LIMIT_BURST" envDefault:"20"`

	// ClientTTL drops a client's bucket after this long without requests
	ClientTTL time.Duration `env:"RATE_LIMIT_CLIENT_TTL" envDefault:"10m"`
}

// AppConfig holds general application settings.
type AppConfig struct {
	Env string `env:"APP_ENV" envDefault:"development"`
}

// Load reads configuration from environment variables.
// It attempts to load a .env file first (optional - won't fail if missing).
func Load() (*Config, error) {
	// Missing .env is fine; the process environment still applies.
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return cfg, nil
}

// MustLoad loads configuration or panics on error.
// Use this in main() where configuration is required to start.
func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		panic(fmt.Sprintf("failed to load config: %v", err))
	}
	return cfg
}

// validate checks configuration values for correctness.
func validate(cfg *Config) error {
	if cfg.Server.Port < 1 || cfg.Server.Port > 65535 {
		return fmt.Errorf("SERVER_PORT must be between 1 and 65535, got %d", cfg.Server.Port)
	}

	if cfg.Server.ReadTimeout <= 0 {
		return fmt.Errorf("SERVER_READ_TIMEOUT must be positive")
	}
	if cfg.Server.WriteTimeout <= 0 {
		return fmt.Errorf("SERVER_WRITE_TIMEOUT must be positive")
	}
	if cfg.Server.ShutdownTimeout <= 0 {
		return fmt.Errorf("SERVER_SHUTDOWN_TIMEOUT must be positive")
	}
	if cfg.Preview.Timeout <= 0 {
		return fmt.Errorf("PREVIEW_TIMEOUT must be positive")
	}
	if cfg.Preview.Timeout >= cfg.Server.WriteTimeout {
		return fmt.Errorf("PREVIEW_TIMEOUT (%s) should be less than SERVER_WRITE_TIMEOUT (%s)",
			cfg.Preview.Timeout, cfg.Server.WriteTimeout)
	}

	if cfg.Preview.WarningThreshold < 1 {
		return fmt.Errorf("PREVIEW_WARNING_THRESHOLD must be at least 1, got %d", cfg.Preview.WarningThreshold)
	}
	if path := cfg.Preview.CategoryConfigPath; path != "" {
		if _, err := os.Stat(path); err != nil {
			return fmt.Errorf("CATEGORY_CONFIG_PATH %q is not readable: %w", path, err)
		}
	}

	if cfg.RateLimit.Enabled {
		if cfg.RateLimit.RequestsPerSecond <= 0 {
			return fmt.Errorf("RATE_LIMIT_RPS must be positive")
		}
		if cfg.RateLimit.Burst < 1 {
			return fmt.Errorf("RATE_LIMIT_BURST must be at least 1, got %d", cfg.RateLimit.Burst)
		}
		if cfg.RateLimit.ClientTTL < time.Second {
			return fmt.Errorf("RATE_LIMIT_CLIENT_TTL must be at least 1s, got %s", cfg.RateLimit.ClientTTL)
		}
	}

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[cfg.Logging.Level] {
		return fmt.Errorf("LOG_LEVEL must be one of: debug, info, warn, error; got %q", cfg.Logging.Level)
	}

	validFormats := map[string]bool{"json": true, "console": true}
	if !validFormats[cfg.Logging.Format] {
		return fmt.Errorf("LOG_FORMAT must be one of: json, console; got %q", cfg.Logging.Format)
	}

	validEnvs := map[string]bool{"development": true, "staging": true, "production": true}
	if !validEnvs[cfg.App.Env] {
		return fmt.Errorf("APP_ENV must be one of: development, staging, production; got %q", cfg.App.Env)
	}

	return nil
}

// IsDevelopment returns true if running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.App.Env == "development"
}

// IsProduction returns true if running in production mode.
func (c *Config) IsProduction() bool {
	return c.App.Env == "production"
}
