package config

import (
	"time"

	"github.com/spf13/viper"
)

// Config holds all runtime configuration for a facet process. Values
// are populated from .facet.yaml, FACET_* env vars, and CLI flags, and
// are enumerated once at startup.
type Config struct {
	Provider       string        `mapstructure:"provider"`
	Model          string        `mapstructure:"model"`
	Host           string        `mapstructure:"host"`
	Port           int           `mapstructure:"port"`
	RequestTimeout time.Duration `mapstructure:"request_timeout"`
	RedactSecrets  bool          `mapstructure:"redact_secrets"`
	ServerURL      string        `mapstructure:"server_url"`
}

// Load reads configuration from viper, applying built-in defaults for
// any values not set by config file, environment, or flags.
func Load() Config {
	viper.SetDefault("provider", "openai")
	viper.SetDefault("model", "gpt-4")
	viper.SetDefault("host", "0.0.0.0")
	viper.SetDefault("port", 8000)
	viper.SetDefault("request_timeout", "60s")
	viper.SetDefault("redact_secrets", true)
	viper.SetDefault("server_url", "http://localhost:8000")

	var cfg Config
	_ = viper.Unmarshal(&cfg)
	return cfg
}
