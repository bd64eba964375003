package infra

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config holds every user-tunable setting. LoadConfig reads it from YAML and
// then applies environment overrides.
type Config struct {
	App struct {
		Name    string `yaml:"name"`
		Version string `yaml:"version"`
	} `yaml:"app"`

	Book struct {
		Instrument string `yaml:"instrument"`
		PriceScale int    `yaml:"price_scale"` // decimal places per price tick
	} `yaml:"book"`

	Journal struct {
		Enabled bool   `yaml:"enabled"`
		Path    string `yaml:"path"`
	} `yaml:"journal"`

	Logging struct {
		Level string `yaml:"level"`
		Path  string `yaml:"path"`
	} `yaml:"logging"`
}

// DefaultConfig returns the configuration used when no config file exists.
func DefaultConfig() *Config {
	cfg := &Config{}
	cfg.App.Name = "matchbook"
	cfg.App.Version = "dev"
	cfg.Book.Instrument = "DEFAULT"
	cfg.Book.PriceScale = 0
	cfg.Journal.Enabled = true
	cfg.Journal.Path = "data/trades.db"
	cfg.Logging.Level = "info"
	cfg.Logging.Path = "logs/matchbook.log"
	return cfg
}

// LoadConfig reads and parses the configuration file. A missing file is not
// an error: the session must be able to run on defaults.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
		// run on defaults
	case err != nil:
		return nil, err
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, err
		}
	}

	overrideWithEnv(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// Validate checks configuration validity.
func (c *Config) Validate() error {
	if c.Book.PriceScale < 0 || c.Book.PriceScale > 12 {
		return fmt.Errorf("price scale must be between 0 and 12, got %d", c.Book.PriceScale)
	}
	switch c.Logging.Level {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown log level: %s", c.Logging.Level)
	}
	if c.Journal.Enabled && c.Journal.Path == "" {
		return fmt.Errorf("journal enabled but no path configured")
	}
	return nil
}

// overrideWithEnv applies environment variables on top of the file values.
func overrideWithEnv(cfg *Config) {
	if v := os.Getenv("MATCHBOOK_JOURNAL_PATH"); v != "" {
		cfg.Journal.Path = v
	}
	if v := os.Getenv("MATCHBOOK_LOG_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}
	if v := os.Getenv("MATCHBOOK_PRICE_SCALE"); v != "" {
		if scale, err := strconv.Atoi(v); err == nil {
			cfg.Book.PriceScale = scale
		}
	}
}
