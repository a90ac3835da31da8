package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/BurntSushi/toml"
	"github.com/fadedpez/cardkit/internal/logging"
	"github.com/fadedpez/cardkit/pkg/cards"
	"github.com/fadedpez/cardkit/pkg/types"
	"github.com/joho/godotenv"
)

// Color modes
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Config holds all configuration for the cardkit command
type Config struct {
	LogLevel       string `toml:"log_level"`
	Color          string `toml:"color"`           // "auto", "always" or "never"
	UnicodeVariant string `toml:"unicode_variant"` // "emoji" or "text"
	Packs          int    `toml:"packs"`

	// Path of the config file that was read, empty if none existed
	Path string `toml:"-"`
}

// Default returns the configuration used when nothing overrides it
func Default() *Config {
	return &Config{
		LogLevel:       "info",
		Color:          ColorAuto,
		UnicodeVariant: "emoji",
		Packs:          1,
	}
}

// GetXDGConfigHome returns XDG_CONFIG_HOME or default path
func GetXDGConfigHome() string {
	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		return xdgConfig
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(homeDir, ".config")
}

// GetConfigFilePath returns CARDKIT_CONFIG or the default config file location
func GetConfigFilePath() string {
	if path := os.Getenv("CARDKIT_CONFIG"); path != "" {
		return path
	}
	return filepath.Join(GetXDGConfigHome(), "cardkit", "config.toml")
}

// Load reads the configuration from .env, the config file and the environment
func Load() (*Config, error) {
	// .env goes first so it can point CARDKIT_CONFIG somewhere else
	if err := loadDotEnv(".env"); err != nil {
		return nil, err
	}
	return LoadFrom(GetConfigFilePath())
}

// LoadFrom reads configPath on top of the defaults and then applies
// environment overrides. A missing file is not an error.
func LoadFrom(configPath string) (*Config, error) {
	cfg := Default()

	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			if _, err := toml.DecodeFile(configPath, cfg); err != nil {
				return nil, types.WrapError(types.ErrConfigError, fmt.Sprintf("error decoding config file %s", configPath), err)
			}
			cfg.Path = configPath
		} else if !os.IsNotExist(err) {
			return nil, types.WrapError(types.ErrConfigError, fmt.Sprintf("cannot read config file %s", configPath), err)
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func loadDotEnv(path string) error {
	if err := godotenv.Load(path); err != nil {
		// Only return error if file exists but couldn't be loaded
		if !os.IsNotExist(err) {
			return types.WrapError(types.ErrConfigError, fmt.Sprintf("error loading %s file", path), err)
		}
	}
	return nil
}

func (c *Config) applyEnv() error {
	c.LogLevel = getEnvWithDefault("CARDKIT_LOG_LEVEL", c.LogLevel)
	c.Color = getEnvWithDefault("CARDKIT_COLOR", c.Color)
	c.UnicodeVariant = getEnvWithDefault("CARDKIT_UNICODE_VARIANT", c.UnicodeVariant)

	if packs := os.Getenv("CARDKIT_PACKS"); packs != "" {
		n, err := strconv.Atoi(packs)
		if err != nil {
			return types.WrapError(types.ErrConfigError, "CARDKIT_PACKS must be a number", err)
		}
		c.Packs = n
	}
	return nil
}

// validate checks that every value is one the command understands
func (c *Config) validate() error {
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return err
	}
	switch c.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return types.NewCardError(types.ErrConfigError, fmt.Sprintf("color must be auto, always or never, got %q", c.Color))
	}
	if _, err := cards.ParseVariant(c.UnicodeVariant); err != nil {
		return types.WrapError(types.ErrConfigError, "invalid unicode_variant", err)
	}
	if c.Packs < 1 || c.Packs > cards.MaxPacks {
		return types.NewCardError(types.ErrConfigError, fmt.Sprintf("packs must be between 1 and %d, got %d", cards.MaxPacks, c.Packs))
	}
	return nil
}

// Level returns the configured log level
func (c *Config) Level() logging.Level {
	level, err := logging.ParseLevel(c.LogLevel)
	if err != nil {
		return logging.INFO
	}
	return level
}

// Variant returns the configured unicode presentation variant
func (c *Config) Variant() cards.Variant {
	variant, err := cards.ParseVariant(c.UnicodeVariant)
	if err != nil {
		return cards.EmojiVariant
	}
	return variant
}

// getEnvWithDefault returns environment variable value or default if not set
func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
