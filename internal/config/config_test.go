package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Server.Port != 8080 {
		t.Errorf("expected default port 8080, got %d", cfg.Server.Port)
	}
	if !cfg.Server.AllowAllOrigins {
		t.Error("expected public endpoints to allow all origins by default")
	}
	if cfg.Injector.Variant != VariantEmbed {
		t.Errorf("expected default variant %q, got %q", VariantEmbed, cfg.Injector.Variant)
	}
	if cfg.Injector.PollInterval != 100*time.Millisecond {
		t.Errorf("expected default poll interval 100ms, got %s", cfg.Injector.PollInterval)
	}
}

func TestSaveAndLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.widgetbot.yml")

	original := DefaultConfig()
	original.Server.Port = 9090
	original.Database.Path = "/tmp/settings.db"
	original.Injector.Variant = VariantCrate
	original.Injector.ReadyTimeout = 5 * time.Second
	original.Settings = map[string]map[string]string{
		"widgetbot": {"server_id": "1", "channel_id": "2"},
	}

	// Save.
	if err := original.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	// Load back.
	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if loaded.Server.Port != original.Server.Port {
		t.Errorf("port: got %d, want %d", loaded.Server.Port, original.Server.Port)
	}
	if loaded.Database.Path != original.Database.Path {
		t.Errorf("database.path: got %q, want %q", loaded.Database.Path, original.Database.Path)
	}
	if loaded.Injector.Variant != original.Injector.Variant {
		t.Errorf("variant: got %q, want %q", loaded.Injector.Variant, original.Injector.Variant)
	}
	if loaded.Injector.ReadyTimeout != original.Injector.ReadyTimeout {
		t.Errorf("ready_timeout: got %s, want %s", loaded.Injector.ReadyTimeout, original.Injector.ReadyTimeout)
	}
	if v, ok := loaded.Setting("widgetbot", "channel_id"); !ok || v != "2" {
		t.Errorf("settings.widgetbot.channel_id: got %q (%v), want %q", v, ok, "2")
	}
}

func TestLoadMissingFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nonexistent.yml")

	// Loading a missing file should return defaults, not an error.
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load should not fail for missing file: %v", err)
	}
	if cfg.Server.Port != 8080 {
		t.Errorf("expected default port, got %d", cfg.Server.Port)
	}
}

func TestLoadEnvOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.yml")

	cfg := DefaultConfig()
	if err := cfg.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	t.Setenv("WIDGETBOT_SERVER__PORT", "9191")
	t.Setenv("WIDGETBOT_INJECTOR__VARIANT", "crate")
	t.Setenv("WIDGETBOT_SETTINGS__WIDGETBOT__SERVER_ID", "42")

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if loaded.Server.Port != 9191 {
		t.Errorf("env override failed: got port %d, want 9191", loaded.Server.Port)
	}
	if loaded.Injector.Variant != VariantCrate {
		t.Errorf("env override failed: got variant %q, want %q", loaded.Injector.Variant, VariantCrate)
	}
	if v, _ := loaded.Setting("widgetbot", "server_id"); v != "42" {
		t.Errorf("env setting override failed: got %q, want %q", v, "42")
	}
}

func TestLoadInvalidFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "broken.yml")
	if err := os.WriteFile(path, []byte("server: [unterminated"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("expected error for malformed YAML")
	}
}

func TestValidateValid(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Errorf("DefaultConfig should be valid, got: %v", err)
	}
}

func TestValidateInvalid(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero port", func(c *Config) { c.Server.Port = 0 }},
		{"port too large", func(c *Config) { c.Server.Port = 70000 }},
		{"negative request timeout", func(c *Config) { c.Server.RequestTimeout = -time.Second }},
		{"empty db path", func(c *Config) { c.Database.Path = "" }},
		{"unknown log format", func(c *Config) { c.Log.Format = "xml" }},
		{"unknown variant", func(c *Config) { c.Injector.Variant = "popup" }},
		{"zero poll interval", func(c *Config) { c.Injector.PollInterval = 0 }},
		{"negative ready timeout", func(c *Config) { c.Injector.ReadyTimeout = -time.Second }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestSettingMissingNamespace(t *testing.T) {
	cfg := DefaultConfig()
	if _, ok := cfg.Setting("widgetbot", "server_id"); ok {
		t.Error("expected no setting on default config")
	}
}
