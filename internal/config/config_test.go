package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{"REFRESH_INTERVAL_MS", "SYMBOLS", "QUOTE_API_BASE_URL", "QUOTE_API_KEY", "SQLITE_PATH", "HTTPS_PROXY", "UI_MODE"} {
		t.Setenv(k, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("missing file must not be an error: %v", err)
	}
	if cfg.RefreshIntervalMS != 30000 {
		t.Errorf("interval: got %d", cfg.RefreshIntervalMS)
	}
	if cfg.RefreshInterval() != 30*time.Second {
		t.Errorf("interval duration: got %s", cfg.RefreshInterval())
	}
	if cfg.Chart.WindowSize != 24 || cfg.Chart.Granularity != "5m" || cfg.Chart.Period != "1d" {
		t.Errorf("chart defaults: %+v", cfg.Chart)
	}
	if !reflect.DeepEqual(cfg.Symbols, DefaultSymbols) {
		t.Errorf("symbols: got %v", cfg.Symbols)
	}
	if cfg.UI.Mode != "tui" {
		t.Errorf("ui mode: got %q", cfg.UI.Mode)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults must validate: %v", err)
	}
}

func TestLoad_FileValues(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, `
refresh_interval_ms: 5000
symbols: [AAPL, GOOG]
chart:
  window_size: 12
  granularity: 1m
  period: 1d
database:
  sqlite_path: data/test.db
ui:
  mode: log
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.RefreshIntervalMS != 5000 {
		t.Errorf("interval: got %d", cfg.RefreshIntervalMS)
	}
	if !reflect.DeepEqual(cfg.Symbols, []string{"AAPL", "GOOG"}) {
		t.Errorf("symbols: got %v", cfg.Symbols)
	}
	if cfg.Chart.WindowSize != 12 || cfg.Chart.Granularity != "1m" {
		t.Errorf("chart: %+v", cfg.Chart)
	}
	if cfg.Database.SQLitePath != "data/test.db" {
		t.Errorf("sqlite path: got %q", cfg.Database.SQLitePath)
	}
	if cfg.UI.Mode != "log" {
		t.Errorf("ui mode: got %q", cfg.UI.Mode)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, "refresh_interval_ms: 5000\nsymbols: [AAPL]\n")
	t.Setenv("REFRESH_INTERVAL_MS", "60000")
	t.Setenv("SYMBOLS", "tsla, nvda ,META")
	t.Setenv("UI_MODE", "log")

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.RefreshIntervalMS != 60000 {
		t.Errorf("env interval override lost: %d", cfg.RefreshIntervalMS)
	}
	if !reflect.DeepEqual(cfg.Symbols, []string{"tsla", "nvda", "META"}) {
		t.Errorf("symbols: got %v", cfg.Symbols)
	}
	if cfg.UI.Mode != "log" {
		t.Errorf("ui mode: got %q", cfg.UI.Mode)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		ok     bool
	}{
		{"valid", func(c *Config) {}, true},
		{"zero interval", func(c *Config) { c.RefreshIntervalMS = -1 }, false},
		{"zero window", func(c *Config) { c.Chart.WindowSize = -1 }, false},
		{"bad ui mode", func(c *Config) { c.UI.Mode = "gui" }, false},
		{"zero retention", func(c *Config) { c.Database.RetentionDays = -1 }, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
			if err != nil {
				t.Fatal(err)
			}
			tt.mutate(cfg)
			if err := cfg.Validate(); (err == nil) != tt.ok {
				t.Errorf("expected ok=%v, got err=%v", tt.ok, err)
			}
		})
	}
}
