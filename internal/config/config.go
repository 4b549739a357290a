// Package config loads runtime settings from the environment.
package config

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/maxcolbe/studentsky-svet/internal/progress"
	"github.com/maxcolbe/studentsky-svet/internal/store"
)

const logFileName = "svet.log"

// Config holds settings read from SVET_* environment variables.
type Config struct {
	DBPath     string        `env:"SVET_DB"`
	LogPath    string        `env:"SVET_LOG"`
	ContentDir string        `env:"SVET_CONTENT_DIR"`
	QueueSize  int           `env:"SVET_QUEUE_SIZE"  envDefault:"32"`
	OpTimeout  time.Duration `env:"SVET_OP_TIMEOUT"  envDefault:"5s"`
}

// Load parses the environment into a Config.
func Load() (Config, error) {
	var cfg Config
	if err := ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	if cfg.QueueSize <= 0 {
		return Config{}, fmt.Errorf("SVET_QUEUE_SIZE must be positive, got %d", cfg.QueueSize)
	}
	if cfg.OpTimeout <= 0 {
		return Config{}, fmt.Errorf("SVET_OP_TIMEOUT must be positive, got %s", cfg.OpTimeout)
	}
	return cfg, nil
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// ResolveDBPath picks the database path. A non-empty flag wins over
// SVET_DB, which wins over the XDG default.
func (c Config) ResolveDBPath(flag string) (string, error) {
	switch {
	case flag != "":
		return flag, store.EnsureDir(flag)
	case c.DBPath != "":
		return c.DBPath, store.EnsureDir(c.DBPath)
	default:
		return store.DefaultDBPath()
	}
}

// ResolveLogPath returns SVET_LOG when set, otherwise svet.log next to
// the database file.
func (c Config) ResolveLogPath(dbPath string) string {
	if c.LogPath != "" {
		return c.LogPath
	}
	return filepath.Join(filepath.Dir(dbPath), logFileName)
}

// Gateway converts the queue settings into a progress gateway config.
func (c Config) Gateway() progress.Config {
	return progress.Config{
		QueueSize: c.QueueSize,
		OpTimeout: c.OpTimeout,
	}
}
