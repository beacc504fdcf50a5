package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_MissingFileFallsBackToDefaults(t *testing.T) {

	cfg, err := Load(filepath.Join(t.TempDir(), "does-not-exist.yaml"))

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Server.Addr != ":8080" {
		t.Errorf("expected default addr :8080, got %q", cfg.Server.Addr)
	}
	if cfg.RateLimit.Capacity != 5 {
		t.Errorf("expected default capacity 5, got %d", cfg.RateLimit.Capacity)
	}
}

func TestLoad_OverridesDefaults(t *testing.T) {

	path := filepath.Join(t.TempDir(), "config.yaml")
	data := []byte(`
server:
  addr: ":9090"
cache:
  enabled: true
  redis_addr: "redis:6379"
thresholds:
  min_roi_pct: 5
`)
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	cfg, err := Load(path)

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Server.Addr != ":9090" {
		t.Errorf("expected :9090, got %q", cfg.Server.Addr)
	}
	if !cfg.Cache.Enabled || cfg.Cache.RedisAddr != "redis:6379" {
		t.Errorf("cache settings not applied: %+v", cfg.Cache)
	}
	if cfg.Thresholds.MinROIPct != 5 {
		t.Errorf("expected min ROI 5, got %.1f", cfg.Thresholds.MinROIPct)
	}
	// Untouched sections keep their defaults.
	if cfg.RateLimit.Capacity != 5 {
		t.Errorf("expected default capacity 5, got %d", cfg.RateLimit.Capacity)
	}
}

func TestLoad_RejectsInvalidConfig(t *testing.T) {

	path := filepath.Join(t.TempDir(), "config.yaml")
	data := []byte(`
rate_limit:
  capacity: -1
`)
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	if _, err := Load(path); err == nil {
		t.Errorf("expected validation error")
	}
}
