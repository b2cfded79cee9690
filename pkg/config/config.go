// Package config loads the game configuration from YAML.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/germanamz/bullcow/pkg/console"
	"gopkg.in/yaml.v3"
)

const (
	DefaultMaxLines = console.DefaultMaxLines
	DefaultLogLevel = "info"
)

// Config is the top-level game configuration.
type Config struct {
	MaxLines   int    `yaml:"max_lines"`   // Scrollback and frame height.
	MaxColumns int    `yaml:"max_columns"` // Wrap width in cells (0 = no wrapping).
	WordList   string `yaml:"word_list"`   // Path to a word list; empty uses the built-in list.
	Debug      bool   `yaml:"debug"`       // Reveal the hidden word each round.
	Seed       uint64 `yaml:"seed"`        // Fixed random seed (0 = seeded from the clock).
	LogLevel   string `yaml:"log_level"`
	LogFile    string `yaml:"log_file"`
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		MaxLines: DefaultMaxLines,
		LogLevel: DefaultLogLevel,
	}
}

// Load reads a YAML file on top of Default. Environment variables referenced
// as ${VAR} or $VAR are expanded before parsing.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is caller-provided configuration, not user input
	if err != nil {
		return Config{}, fmt.Errorf("config: load: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal([]byte(os.ExpandEnv(string(data))), &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse: %w", err)
	}

	return cfg, cfg.Validate()
}

// LoadOrDefault is Load, except that a missing file yields Default.
func LoadOrDefault(path string) (Config, error) {
	cfg, err := Load(path)
	if errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}
	return cfg, err
}

// Validate checks that the configuration is usable.
func (c Config) Validate() error {
	if c.MaxLines < 1 {
		return fmt.Errorf("config: max_lines must be at least 1, got %d", c.MaxLines)
	}
	if c.MaxColumns < 0 {
		return fmt.Errorf("config: max_columns must not be negative, got %d", c.MaxColumns)
	}

	switch c.LogLevel {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("config: unknown log_level %q", c.LogLevel)
	}

	return nil
}

// Marshal renders the configuration as YAML.
func (c Config) Marshal() ([]byte, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("config: marshal: %w", err)
	}
	return data, nil
}
