package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Supported values for the color setting.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Config holds the application configuration loaded from .env files and environment variables.
type Config struct {
	AppName        string        `mapstructure:"app_name"`
	LogLevel       string        `mapstructure:"log_level"`
	Color          string        `mapstructure:"color"`
	TimeoutSeconds int64         `mapstructure:"timeout_seconds"`
	Timeout        time.Duration `mapstructure:"-"`
}

// Load reads configuration from the environment (TODOCTL_ prefix) and an optional .env file.
func Load() (*Config, error) {
	_ = godotenv.Load(".env")

	v := viper.New()

	v.SetDefault("app_name", "todoctl")
	v.SetDefault("log_level", "warn")
	v.SetDefault("color", ColorAuto)
	v.SetDefault("timeout_seconds", 0) // no timeout

	v.SetEnvPrefix("todoctl")
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := cfg.normalize(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) normalize() error {
	c.LogLevel = strings.ToLower(strings.TrimSpace(c.LogLevel))
	if err := c.SetColor(c.Color); err != nil {
		return err
	}
	if c.TimeoutSeconds < 0 {
		return fmt.Errorf("invalid timeout_seconds (must be zero or positive seconds)")
	}
	c.Timeout = time.Duration(c.TimeoutSeconds) * time.Second
	return nil
}

// SetColor validates and applies a color mode.
func (c *Config) SetColor(mode string) error {
	mode = strings.ToLower(strings.TrimSpace(mode))
	switch mode {
	case "":
		mode = ColorAuto
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return fmt.Errorf("invalid color %q (expected auto, always or never)", mode)
	}
	c.Color = mode
	return nil
}
