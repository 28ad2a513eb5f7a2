package config

import (
	"errors"
	"strings"
	"time"
)

// Config holds runtime configuration for the server and the CLI.
type Config struct {
	Port            string `env:"PORT" envDefault:"4000"`
	CharactersDir   string `env:"CHARACTERS_DIR" envDefault:"characters"`
	TemplatePath    string `env:"TEMPLATE_PATH" envDefault:"Fallback.json"`
	CatalogPath     string `env:"CATALOG_PATH" envDefault:"database.db"`
	CatalogRetry    RetryConfig
	AdminToken      string        `env:"ADMIN_TOKEN"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`
	Log             LogConfig
	Metrics         MetricsConfig
}

// RetryConfig bounds retries of catalog reads that hit a locked database.
type RetryConfig struct {
	Attempts int           `env:"CATALOG_RETRY_ATTEMPTS" envDefault:"3"`
	Backoff  time.Duration `env:"CATALOG_RETRY_BACKOFF" envDefault:"50ms"`
}

// Load reads configuration from environment variables with sensible defaults.
func Load() (Config, error) {
	var cfg Config
	if err := ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = defaultShutdownTimeout
	}
	cfg.AdminToken = strings.TrimSpace(cfg.AdminToken)
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects configurations the service cannot start with.
func (c Config) Validate() error {
	if strings.TrimSpace(c.CharactersDir) == "" {
		return errors.New("CHARACTERS_DIR must not be empty")
	}
	if strings.TrimSpace(c.TemplatePath) == "" {
		return errors.New("TEMPLATE_PATH must not be empty")
	}
	if strings.TrimSpace(c.CatalogPath) == "" {
		return errors.New("CATALOG_PATH must not be empty")
	}
	return nil
}
