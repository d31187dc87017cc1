package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadConfigMissingFile(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.toml"))
	if err != nil {
		t.Fatalf("expected no error for missing file, got %v", err)
	}
	if cfg.Greeting.Recipient != nil || cfg.Effects.Stars != nil {
		t.Fatalf("expected empty config, got %+v", cfg)
	}
}

func TestLoadConfigValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
[greeting]
recipient = "Ada"

[effects]
stars = 12
reduce-motion = true

[history]
enabled = false
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.Greeting.Recipient == nil || *cfg.Greeting.Recipient != "Ada" {
		t.Fatalf("unexpected recipient: %v", cfg.Greeting.Recipient)
	}
	if cfg.Greeting.Catalog != nil {
		t.Fatalf("expected unset catalog")
	}
	if cfg.Effects.Stars == nil || *cfg.Effects.Stars != 12 {
		t.Fatalf("unexpected stars: %v", cfg.Effects.Stars)
	}
	if cfg.Effects.ReduceMotion == nil || !*cfg.Effects.ReduceMotion {
		t.Fatalf("expected reduce-motion true")
	}
	if cfg.History.Enabled == nil || *cfg.History.Enabled {
		t.Fatalf("expected history disabled")
	}
}

func TestLoadConfigRejectsUnknownKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("[effects]\nsparkles = 3\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	_, err := LoadConfig(path)
	if err == nil || !strings.Contains(err.Error(), "effects.sparkles") {
		t.Fatalf("expected unknown key error, got %v", err)
	}
}

func TestDefaultPathsHonorXDG(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/cfg")
	t.Setenv("XDG_DATA_HOME", "/tmp/data")
	if got := DefaultConfigPath(); got != filepath.Join("/tmp/cfg", "starletters", "config.toml") {
		t.Fatalf("unexpected config path %q", got)
	}
	if got := DefaultDBPath(); got != filepath.Join("/tmp/data", "starletters", "starletters.db") {
		t.Fatalf("unexpected db path %q", got)
	}
}
