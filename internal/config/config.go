// Package config loads uekit's optional YAML configuration file. A missing
// file means defaults; a malformed file degrades to defaults with an error
// the caller can log.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// configFileName is the per-user configuration file, resolved under
// os.UserConfigDir.
const configFileName = "config.yaml"

// Config is the full file layout.
type Config struct {
	Logging   LoggingConfig   `yaml:"logging"`
	Discovery DiscoveryConfig `yaml:"discovery"`
}

// LoggingConfig selects log level, format, and an optional file sink.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"` // "console" or "json"
	File   string `yaml:"file"`
}

// DiscoveryConfig tunes engine discovery.
type DiscoveryConfig struct {
	// ProbeTimeoutSeconds bounds each discovery source; zero keeps the
	// built-in default.
	ProbeTimeoutSeconds int `yaml:"probe_timeout_seconds"`
}

// ProbeTimeout returns the configured per-probe timeout, or zero when unset.
func (d DiscoveryConfig) ProbeTimeout() time.Duration {
	return time.Duration(d.ProbeTimeoutSeconds) * time.Second
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Logging: LoggingConfig{Level: "info", Format: "json"},
	}
}

// Path returns the expected location of the config file, or "" when the
// user config directory cannot be determined.
func Path() string {
	base, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(base, "uekit", configFileName)
}

// Load reads the per-user config file. A missing or unlocatable file is not
// an error. A malformed file returns defaults together with the parse error
// so the caller can warn without losing a working configuration.
func Load() (*Config, error) {
	path := Path()
	if path == "" {
		return Default(), nil
	}
	cfg, err := LoadFrom(path)
	if err != nil && errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	return cfg, err
}

// LoadFrom reads and parses one specific config file, returning defaults
// alongside any error.
func LoadFrom(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Default(), err
	}

	cfg := Default()
	if unmarshalErr := yaml.Unmarshal(data, cfg); unmarshalErr != nil {
		return Default(), fmt.Errorf("parsing %s: %w", path, unmarshalErr)
	}
	return cfg, nil
}
