package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "moodlog.yaml")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}
	return path
}

func TestLoadFile(t *testing.T) {
	path := writeConfig(t, `
db_path: /tmp/mood.db
sync: normal
user: alex
timezone: UTC
refresh_interval: 5s
http:
  addr: ":9090"
  allowed_origins: ["http://example.test"]
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.DBPath != "/tmp/mood.db" {
		t.Errorf("Expected db_path /tmp/mood.db, got %s", cfg.DBPath)
	}
	if cfg.User != "alex" {
		t.Errorf("Expected user alex, got %s", cfg.User)
	}
	if cfg.RefreshInterval != 5*time.Second {
		t.Errorf("Expected refresh_interval 5s, got %s", cfg.RefreshInterval)
	}
	if cfg.HTTP.Addr != ":9090" || len(cfg.HTTP.AllowedOrigins) != 1 {
		t.Errorf("Unexpected http config: %+v", cfg.HTTP)
	}
	// Unset keys keep their defaults.
	if !cfg.WAL {
		t.Errorf("Expected WAL default to survive partial config")
	}
	loc, err := cfg.Location()
	if err != nil || loc != time.UTC {
		t.Errorf("Expected UTC location, got %v (err %v)", loc, err)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	path := writeConfig(t, "user: alex\n")
	t.Setenv(EnvUser, "sam")
	t.Setenv(EnvDB, "/data/other.db")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.User != "sam" {
		t.Errorf("Expected env to override user, got %s", cfg.User)
	}
	if cfg.DBPath != "/data/other.db" {
		t.Errorf("Expected env to override db_path, got %s", cfg.DBPath)
	}
}

func TestLoadMissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Fatalf("Expected an error for a missing explicit config file")
	}
}

func TestLoadMissingDefaultFile(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("XDG_CONFIG_HOME", "")
	t.Setenv(EnvConfig, "")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load with no config file failed: %v", err)
	}
	if cfg.User != Default().User {
		t.Errorf("Expected default user, got %s", cfg.User)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"bad sync", func(c *Config) { c.Sync = "SOMETIMES" }},
		{"empty user", func(c *Config) { c.User = " " }},
		{"bad timezone", func(c *Config) { c.Timezone = "Mars/Olympus" }},
		{"zero interval", func(c *Config) { c.RefreshInterval = 0 }},
		{"bad log mode", func(c *Config) { c.LogMode = "loud" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("Expected ErrInvalidConfig, got %v", err)
			}
		})
	}

	if err := Default().Validate(); err != nil {
		t.Errorf("Default config should be valid, got %v", err)
	}
}
