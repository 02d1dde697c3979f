// Package config loads console configuration from an optional TOML
// file and the environment. Environment variables win over file
// values; a .env file is honored when present.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/pelletier/go-toml/v2"
)

// Config holds the tunable parts of the console subsystem.
type Config struct {
	// Locale selects the translation locale (default: "en")
	Locale string `toml:"locale"`
	// NoColor disables ANSI color output on terminal sinks
	NoColor bool `toml:"no_color"`
	// QueueSize is the dispatch queue capacity (default: 64)
	QueueSize int `toml:"queue_size"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Locale:    "en",
		QueueSize: 64,
	}
}

// Load reads path as TOML, applies environment overrides and
// validates. An empty path skips the file and is equivalent to
// FromEnv.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
		if err := toml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("config: parse %s: %w", path, err)
		}
	}

	cfg.applyEnv()
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// FromEnv builds a configuration from defaults and the environment
// alone. Invalid environment values fall back to the defaults rather
// than failing; this is the path init-time callers take.
func FromEnv() Config {
	// .env is optional; real environments provide the variables directly.
	_ = godotenv.Load()

	cfg := Default()
	cfg.applyEnv()
	if err := cfg.validate(); err != nil {
		return Default()
	}
	return cfg
}

func (c *Config) applyEnv() {
	if v := os.Getenv("CONSOLE_LOCALE"); v != "" {
		c.Locale = v
	}
	if v := os.Getenv("CONSOLE_NO_COLOR"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			c.NoColor = b
		}
	}
	if v := os.Getenv("CONSOLE_QUEUE_SIZE"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.QueueSize = n
		}
	}
}

// validate applies the structural rules on the loaded configuration.
func (c *Config) validate() error {
	if strings.TrimSpace(c.Locale) == "" {
		return fmt.Errorf("config: locale must not be empty")
	}
	if c.QueueSize <= 0 {
		return fmt.Errorf("config: queue_size must be positive, got %d", c.QueueSize)
	}
	return nil
}
