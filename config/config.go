package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/mitchellh/go-homedir"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
)

// Config holds the settings shared by all sub-commands.  Every field can be
// overridden by the GROCERY_* environment variable named in its env tag.
type Config struct {
	Capacity   int    `yaml:"capacity" json:"capacity" env:"GROCERY_CAPACITY" env-default:"11" env-description:"grocery list capacity"`
	CatalogURL string `yaml:"catalogURL" json:"catalogURL" env:"GROCERY_CATALOG_URL" env-description:"catalog location (file path or afs URL)"`
	Locale     string `yaml:"locale" json:"locale" env:"GROCERY_LOCALE" env-default:"en-US" env-description:"receipt locale"`
	Currency   string `yaml:"currency" json:"currency" env:"GROCERY_CURRENCY" env-description:"ISO currency code, derived from locale when empty"`
	LogLevel   string `yaml:"logLevel" json:"logLevel" env:"GROCERY_LOG_LEVEL" env-default:"info" env-description:"debug, info, warn or error"`
}

// DefaultPath returns ~/.grocery/config.yaml.
func DefaultPath() (string, error) {
	dir, err := homedir.Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, ".grocery", "config.yaml"), nil
}

// Load reads the configuration file at path, then applies environment
// overrides and defaults.  With an empty path the default location is used
// when it exists, otherwise only the environment is consulted.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	explicit := path != ""
	if !explicit {
		var err error
		if path, err = DefaultPath(); err != nil {
			return nil, fmt.Errorf("failed to resolve home directory: %w", err)
		}
	}
	path, err := homedir.Expand(path)
	if err != nil {
		return nil, fmt.Errorf("failed to expand config path %q: %w", path, err)
	}

	if _, statErr := os.Stat(path); !explicit && errors.Is(statErr, os.ErrNotExist) {
		if err := cleanenv.ReadEnv(cfg); err != nil {
			return nil, fmt.Errorf("failed to read environment: %w", err)
		}
		return cfg, nil
	}
	if err := cleanenv.ReadConfig(path, cfg); err != nil {
		return nil, fmt.Errorf("failed to read config file %q: %w", path, err)
	}
	return cfg, nil
}

// Validate checks field values.
func (c *Config) Validate() error {
	if c.Capacity < 1 {
		return fmt.Errorf("capacity must be positive, got %d", c.Capacity)
	}
	if _, err := language.Parse(c.Locale); err != nil {
		return fmt.Errorf("invalid locale %q: %w", c.Locale, err)
	}
	if c.Currency != "" {
		if _, err := currency.ParseISO(c.Currency); err != nil {
			return fmt.Errorf("invalid currency %q: %w", c.Currency, err)
		}
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}

// Level maps LogLevel to a slog level.
func (c *Config) Level() (slog.Level, error) {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return slog.LevelInfo, fmt.Errorf("unknown log level %q", c.LogLevel)
}

// Usage describes the supported environment variables.
func Usage() string {
	text, err := cleanenv.GetDescription(&Config{}, nil)
	if err != nil {
		return ""
	}
	return text
}
