// Package config loads mindful's settings: built-in defaults, then
// ~/.mindful/config.yaml, then MINDFUL_* environment variables.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	dirName    = ".mindful"
	configFile = "config.yaml"
	dbFile     = "mindful.db"
)

const (
	EnvDB          = "MINDFUL_DB"
	EnvConfig      = "MINDFUL_CONFIG"
	EnvLogUseCases = "MINDFUL_LOG_USE_CASES"
	EnvLogFile     = "MINDFUL_LOG_FILE"
	EnvTimezone    = "MINDFUL_TZ"
)

// Config is the structure of ~/.mindful/config.yaml.
type Config struct {
	DBPath      string `yaml:"db_path"`
	LogUseCases bool   `yaml:"log_use_cases"`
	LogFile     string `yaml:"log_file,omitempty"`
	// Timezone is an IANA zone name for calendar-day grouping. Empty
	// means the system zone.
	Timezone string `yaml:"timezone,omitempty"`
}

// DefaultConfig returns the settings used when nothing is configured.
func DefaultConfig(home string) *Config {
	return &Config{
		DBPath: filepath.Join(home, dirName, dbFile),
	}
}

// DefaultPath is where the config file lives unless MINDFUL_CONFIG says otherwise.
func DefaultPath(home string) string {
	return filepath.Join(home, dirName, configFile)
}

// Load resolves the effective configuration and the file it came from.
// A missing config file is not an error; a malformed one is.
func Load() (*Config, string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, "", fmt.Errorf("finding home directory: %w", err)
	}

	path := os.Getenv(EnvConfig)
	if path == "" {
		path = DefaultPath(home)
	}

	cfg := DefaultConfig(home)
	if err := readInto(path, cfg); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, path, err
	}
	applyEnv(cfg)

	if _, err := cfg.Location(); err != nil {
		return nil, path, err
	}
	return cfg, path, nil
}

// ReadConfig reads a config file on top of the defaults for home.
func ReadConfig(path, home string) (*Config, error) {
	cfg := DefaultConfig(home)
	if err := readInto(path, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func readInto(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parsing config %s: %w", path, err)
	}
	return nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv(EnvDB); v != "" {
		cfg.DBPath = v
	}
	if v := os.Getenv(EnvLogUseCases); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.LogUseCases = b
		}
	}
	if v := os.Getenv(EnvLogFile); v != "" {
		cfg.LogFile = v
		cfg.LogUseCases = true
	}
	if v := os.Getenv(EnvTimezone); v != "" {
		cfg.Timezone = v
	}
}

// WriteConfig writes cfg to path, creating the parent directory.
func WriteConfig(path string, cfg *Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := Marshal(cfg)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Marshal renders cfg as YAML.
func Marshal(cfg *Config) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("marshalling config: %w", err)
	}
	return data, nil
}

// Location resolves Timezone, falling back to time.Local.
func (c *Config) Location() (*time.Location, error) {
	if c.Timezone == "" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", c.Timezone, err)
	}
	return loc, nil
}
