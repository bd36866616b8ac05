// Package config loads application configuration from environment
// variables.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config holds the process-wide settings.
type Config struct {
	// DatabasePath locates the SQLite database file.
	DatabasePath string `env:"CATERING_DB_PATH" envDefault:"catering.db"`
	// AuditHistoryLimit caps how many audit entries list commands show.
	AuditHistoryLimit int `env:"CATERING_AUDIT_LIMIT" envDefault:"50"`
}

// ParseEnv loads configuration from environment variables.
func ParseEnv() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
