package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
)

func TestLoad_Defaults(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	cfg := Load()
	if cfg.Provider != "openai" {
		t.Errorf("Provider = %q, want openai", cfg.Provider)
	}
	if cfg.Model != "gpt-4" {
		t.Errorf("Model = %q, want gpt-4", cfg.Model)
	}
	if cfg.Host != "0.0.0.0" || cfg.Port != 8000 {
		t.Errorf("bind = %s:%d, want 0.0.0.0:8000", cfg.Host, cfg.Port)
	}
	if cfg.RequestTimeout != 60*time.Second {
		t.Errorf("RequestTimeout = %v, want 60s", cfg.RequestTimeout)
	}
	if !cfg.RedactSecrets {
		t.Error("RedactSecrets should default to true")
	}
	if cfg.ServerURL != "http://localhost:8000" {
		t.Errorf("ServerURL = %q", cfg.ServerURL)
	}
}

func TestLoad_Overrides(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	viper.Set("provider", "anthropic")
	viper.Set("model", "claude-sonnet-4-5")
	viper.Set("port", 9000)
	viper.Set("request_timeout", "90s")
	viper.Set("redact_secrets", false)

	cfg := Load()
	if cfg.Provider != "anthropic" || cfg.Model != "claude-sonnet-4-5" {
		t.Errorf("provider/model = %s/%s", cfg.Provider, cfg.Model)
	}
	if cfg.Port != 9000 {
		t.Errorf("Port = %d, want 9000", cfg.Port)
	}
	if cfg.RequestTimeout != 90*time.Second {
		t.Errorf("RequestTimeout = %v, want 90s", cfg.RequestTimeout)
	}
	if cfg.RedactSecrets {
		t.Error("RedactSecrets = true, want false")
	}
}
