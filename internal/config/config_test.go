package config

import (
	"testing"
	"time"

	"modelgate/internal/core"
)

func TestLoadServerConfigFromEnv_RequiresToken(t *testing.T) {
	t.Setenv("GITHUB_TOKEN", "")

	if _, err := LoadServerConfigFromEnv(&core.NopLogger{}); err == nil {
		t.Fatal("Expected error when GITHUB_TOKEN is missing")
	}
}

func TestLoadServerConfigFromEnv_Defaults(t *testing.T) {
	t.Setenv("GITHUB_TOKEN", "ghp_dummy")
	t.Setenv("PORT", "")
	t.Setenv("GIN_MODE", "")
	t.Setenv("MODELS_ENDPOINT", "")
	t.Setenv("MODELS_CONFIG_PATH", "")
	t.Setenv("UPSTREAM_TIMEOUT", "")

	cfg, err := LoadServerConfigFromEnv(&core.NopLogger{})
	if err != nil {
		t.Fatalf("LoadServerConfigFromEnv failed: %v", err)
	}

	if cfg.Port != core.DefaultPort {
		t.Errorf("Expected default port %s, got %s", core.DefaultPort, cfg.Port)
	}
	if cfg.Endpoint != core.DefaultModelsEndpoint {
		t.Errorf("Expected default endpoint, got %s", cfg.Endpoint)
	}
	if cfg.Token != "ghp_dummy" {
		t.Errorf("Expected token from env, got %s", cfg.Token)
	}
	if cfg.HTTPClientSettings.RequestTimeout != 0 {
		t.Errorf("Expected no enforced upstream timeout by default, got %s", cfg.HTTPClientSettings.RequestTimeout)
	}
}

func TestLoadServerConfigFromEnv_Overrides(t *testing.T) {
	t.Setenv("GITHUB_TOKEN", "ghp_dummy")
	t.Setenv("PORT", "9999")
	t.Setenv("MODELS_ENDPOINT", "https://example.test/chat/completions")
	t.Setenv("MODELS_CONFIG_PATH", "/etc/modelgate/models.json")
	t.Setenv("UPSTREAM_TIMEOUT", "30")

	cfg, err := LoadServerConfigFromEnv(&core.NopLogger{})
	if err != nil {
		t.Fatalf("LoadServerConfigFromEnv failed: %v", err)
	}

	if cfg.Port != "9999" {
		t.Errorf("Expected port 9999, got %s", cfg.Port)
	}
	if cfg.Endpoint != "https://example.test/chat/completions" {
		t.Errorf("Unexpected endpoint: %s", cfg.Endpoint)
	}
	if cfg.ModelsConfigPath != "/etc/modelgate/models.json" {
		t.Errorf("Unexpected models config path: %s", cfg.ModelsConfigPath)
	}
	if cfg.HTTPClientSettings.RequestTimeout != 30*time.Second {
		t.Errorf("Expected 30s timeout, got %s", cfg.HTTPClientSettings.RequestTimeout)
	}
}

func TestLoadServerConfigFromEnv_InvalidTimeout(t *testing.T) {
	t.Setenv("GITHUB_TOKEN", "ghp_dummy")
	t.Setenv("UPSTREAM_TIMEOUT", "soon")

	cfg, err := LoadServerConfigFromEnv(&core.NopLogger{})
	if err != nil {
		t.Fatalf("LoadServerConfigFromEnv failed: %v", err)
	}
	if cfg.HTTPClientSettings.RequestTimeout != 0 {
		t.Errorf("Invalid timeout should leave timeout disabled, got %s", cfg.HTTPClientSettings.RequestTimeout)
	}
}

func TestDefaultHTTPClientSettings(t *testing.T) {
	settings := DefaultHTTPClientSettings()
	if settings.MaxIdleConns <= 0 {
		t.Error("MaxIdleConns should be positive")
	}
	if settings.IdleConnTimeout <= 0 {
		t.Error("IdleConnTimeout should be positive")
	}
}
