package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// DefaultSymbols is the watchlist used when none is configured.
var DefaultSymbols = []string{"AAPL", "GOOG", "TSLA", "MSFT", "AMZN", "META", "NFLX", "NVDA", "BA", "V"}

// Config holds all application configuration.
type Config struct {
	RefreshIntervalMS int      `yaml:"refresh_interval_ms"`
	Symbols           []string `yaml:"symbols"`
	Chart             struct {
		WindowSize  int    `yaml:"window_size"`
		Granularity string `yaml:"granularity"`
		Period      string `yaml:"period"`
	} `yaml:"chart"`
	DataSource struct {
		BaseURL string `yaml:"base_url"` // self-hosted quote API; empty means Yahoo
		APIKey  string `yaml:"api_key"`
	} `yaml:"data_source"`
	Database struct {
		SQLitePath    string `yaml:"sqlite_path"` // empty disables recording
		RetentionDays int    `yaml:"retention_days"`
		PruneCron     string `yaml:"prune_cron"`
	} `yaml:"database"`
	UI struct {
		Mode    string `yaml:"mode"` // "tui" or "log"
		LogFile string `yaml:"log_file"`
	} `yaml:"ui"`
	Proxy string `yaml:"proxy"`
}

// Load reads config from a YAML file, then applies environment variable overrides.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	// Environment variable overrides
	if v := os.Getenv("REFRESH_INTERVAL_MS"); v != "" {
		if ms, err := strconv.Atoi(v); err == nil {
			cfg.RefreshIntervalMS = ms
		}
	}
	if v := os.Getenv("SYMBOLS"); v != "" {
		cfg.Symbols = splitSymbols(v)
	}
	if v := os.Getenv("QUOTE_API_BASE_URL"); v != "" {
		cfg.DataSource.BaseURL = v
	}
	if v := os.Getenv("QUOTE_API_KEY"); v != "" {
		cfg.DataSource.APIKey = v
	}
	if v := os.Getenv("SQLITE_PATH"); v != "" {
		cfg.Database.SQLitePath = v
	}
	if v := os.Getenv("HTTPS_PROXY"); v != "" {
		cfg.Proxy = v
	}
	if v := os.Getenv("UI_MODE"); v != "" {
		cfg.UI.Mode = v
	}

	// Defaults
	if cfg.RefreshIntervalMS == 0 {
		cfg.RefreshIntervalMS = 30000
	}
	if len(cfg.Symbols) == 0 {
		cfg.Symbols = append([]string(nil), DefaultSymbols...)
	}
	if cfg.Chart.WindowSize == 0 {
		cfg.Chart.WindowSize = 24
	}
	if cfg.Chart.Granularity == "" {
		cfg.Chart.Granularity = "5m"
	}
	if cfg.Chart.Period == "" {
		cfg.Chart.Period = "1d"
	}
	if cfg.Database.RetentionDays == 0 {
		cfg.Database.RetentionDays = 30
	}
	if cfg.Database.PruneCron == "" {
		cfg.Database.PruneCron = "0 0 3 * * *"
	}
	if cfg.UI.Mode == "" {
		cfg.UI.Mode = "tui"
	}
	if cfg.UI.LogFile == "" {
		cfg.UI.LogFile = "data/tracker.log"
	}

	return cfg, nil
}

func splitSymbols(v string) []string {
	var out []string
	for _, s := range strings.Split(v, ",") {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// RefreshInterval returns the refresh interval as a duration.
func (c *Config) RefreshInterval() time.Duration {
	return time.Duration(c.RefreshIntervalMS) * time.Millisecond
}

// Validate checks that all fields are in range.
func (c *Config) Validate() error {
	if c.RefreshIntervalMS <= 0 {
		return fmt.Errorf("refresh_interval_ms must be positive")
	}
	if c.Chart.WindowSize <= 0 {
		return fmt.Errorf("chart.window_size must be positive")
	}
	if c.Database.RetentionDays <= 0 {
		return fmt.Errorf("database.retention_days must be positive")
	}
	if c.UI.Mode != "tui" && c.UI.Mode != "log" {
		return fmt.Errorf("ui.mode must be %q or %q", "tui", "log")
	}
	return nil
}
