package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds runtime settings, all overridable via FQ_* environment
// variables. Defaults match the shipped behavior; nothing here is required.
type Config struct {
	// DataDir is where the save database (or fallback JSON file) lives.
	// Empty means ~/.fighterquest.
	DataDir string `env:"FQ_DATA_DIR"`

	// Backend selects the preferred storage backend: sqlite, file or memory.
	// The effective backend may degrade down the chain if opening fails.
	Backend string `env:"FQ_STORAGE" envDefault:"sqlite"`

	// TickPeriod is the recovery tick interval. The regeneration math is
	// tick-count based, so changing this does not change long-run rates.
	TickPeriod time.Duration `env:"FQ_TICK_PERIOD" envDefault:"250ms"`

	// SaveThrottle bounds how often the regen loop persists when no whole
	// unit of recovery was applied.
	SaveThrottle time.Duration `env:"FQ_SAVE_THROTTLE" envDefault:"1s"`

	// CatalogPath optionally points at a YAML file overriding the built-in
	// challenge/skill catalogs.
	CatalogPath string `env:"FQ_CATALOG"`

	LogLevel string `env:"FQ_LOG_LEVEL" envDefault:"WARN"`
	LogFile  string `env:"FQ_LOG_FILE"`
}

// Load parses the environment and fills in the data dir default.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if cfg.DataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return Config{}, fmt.Errorf("get home dir: %w", err)
		}
		cfg.DataDir = filepath.Join(home, ".fighterquest")
	}
	if cfg.TickPeriod <= 0 {
		cfg.TickPeriod = 250 * time.Millisecond
	}
	if cfg.SaveThrottle <= 0 {
		cfg.SaveThrottle = time.Second
	}
	return cfg, nil
}
