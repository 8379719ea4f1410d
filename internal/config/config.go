// Package config loads pslex settings from a TOML file.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"

	"github.com/BurntSushi/toml"
)

// EnvVar names the environment variable holding config file path.
const EnvVar = "PSLEX_CONFIG"

// Output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// StyleKeys lists the keys accepted in [output.styles], one per token kind.
var StyleKeys = []string{"identifier", "key", "radix", "float", "integer", "op", "error"}

// Config holds the complete tool configuration
type Config struct {
	Output OutputConfig `toml:"output"`
	Log    LogConfig    `toml:"log"`
}

// OutputConfig controls token and tree rendering
type OutputConfig struct {
	Format string `toml:"format"`
	Color  bool   `toml:"color"`

	// Styles maps StyleKeys to lipgloss colors ("12", "#ff8800", ...)
	Styles map[string]string `toml:"styles"`
}

// LogConfig holds logging settings
type LogConfig struct {
	// Level is one of debug, info, warn, error
	Level string `toml:"level"`
}

// SlogLevel converts Level, unknown values map to slog.LevelWarn
func (c LogConfig) SlogLevel() slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.Level)); err != nil {
		return slog.LevelWarn
	}
	return level
}

// Default returns configuration used when no file is found
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Load loads configuration from a TOML file
func Load(path string) (*Config, error) {
	path = os.ExpandEnv(path)

	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("config file not found: %s", path)
	}

	var cfg Config
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("unknown config key %q in %s", undecoded[0].String(), path)
	}

	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return &cfg, nil
}

// DefaultPaths returns the locations searched when no path is given
func DefaultPaths() []string {
	paths := []string{"./pslex.toml"}
	if dir, err := os.UserConfigDir(); err == nil {
		paths = append(paths, filepath.Join(dir, "pslex", "config.toml"))
	}
	return paths
}

// Find loads configuration from path, PSLEX_CONFIG, or the first existing
// default location; returns Default() if nothing is found
func Find(path string) (*Config, error) {
	if path != "" {
		return Load(path)
	}
	if path = os.Getenv(EnvVar); path != "" {
		return Load(path)
	}

	for _, p := range DefaultPaths() {
		if _, err := os.Stat(p); err == nil {
			return Load(p)
		}
	}
	return Default(), nil
}

// applyDefaults sets default values for missing configuration
func (c *Config) applyDefaults() {
	if c.Output.Format == "" {
		c.Output.Format = FormatText
	}

	defaults := map[string]string{
		"identifier": "12",
		"key":        "13",
		"radix":      "11",
		"float":      "10",
		"integer":    "10",
		"op":         "11",
		"error":      "9",
	}
	if c.Output.Styles == nil {
		c.Output.Styles = make(map[string]string, len(defaults))
	}
	for k, v := range defaults {
		if c.Output.Styles[k] == "" {
			c.Output.Styles[k] = v
		}
	}
	if c.Log.Level == "" {
		c.Log.Level = "warn"
	}
}

// Validate checks enum values
func (c *Config) Validate() error {
	var errs []error
	switch c.Output.Format {
	case FormatText, FormatJSON, FormatYAML:
	default:
		errs = append(errs, fmt.Errorf("output.format: unknown format %q", c.Output.Format))
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(c.Log.Level)); err != nil {
		errs = append(errs, fmt.Errorf("log.level: %w", err))
	}

	known := make(map[string]bool, len(StyleKeys))
	for _, k := range StyleKeys {
		known[k] = true
	}
	keys := make([]string, 0, len(c.Output.Styles))
	for k := range c.Output.Styles {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		if !known[k] {
			errs = append(errs, fmt.Errorf("output.styles: unknown key %q", k))
		}
	}

	return errors.Join(errs...)
}
