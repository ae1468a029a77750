package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/jrient/text-game/internal/constants"
)

func TestLoadDefaultsWithoutFile(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Addr != DefaultAddr || cfg.DBPath != DefaultDBPath {
		t.Fatalf("defaults not applied: %+v", cfg)
	}
	if cfg.CleanupInterval != DefaultCleanupInterval {
		t.Fatalf("cleanup interval = %v, want %v", cfg.CleanupInterval, DefaultCleanupInterval)
	}
}

func TestLoadFileValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	body := `{"server":{"address":":9090"},"database":{"path":"/tmp/x.db"},"cleanup_interval":"1h"}`
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Addr != ":9090" || cfg.DBPath != "/tmp/x.db" {
		t.Fatalf("file values not applied: %+v", cfg)
	}
	if cfg.CleanupInterval != time.Hour {
		t.Fatalf("cleanup interval = %v, want 1h", cfg.CleanupInterval)
	}
}

func TestEnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(`{"server":{"address":":9090"}}`), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv(constants.EnvHTTPAddr, ":7070")
	t.Setenv(constants.EnvDBPath, "/tmp/env.db")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Addr != ":7070" || cfg.DBPath != "/tmp/env.db" {
		t.Fatalf("env overrides not applied: %+v", cfg)
	}
}

func TestLoadRejectsBadInterval(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(`{"cleanup_interval":"soon"}`), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("want error for invalid cleanup_interval")
	}
}
