package config

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := load(viper.New(), filepath.Join(t.TempDir(), "missing.env"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Port != "10000" {
		t.Errorf("expected default port 10000, got %q", cfg.Port)
	}
	if cfg.UserAgent != "Mozilla/5.0" {
		t.Errorf("expected default user agent, got %q", cfg.UserAgent)
	}
	if cfg.LinkCheckTimeout() != 5*time.Second {
		t.Errorf("expected 5s link check timeout, got %s", cfg.LinkCheckTimeout())
	}
	if cfg.FetchTimeout() != 0 {
		t.Errorf("expected page fetch timeout disabled, got %s", cfg.FetchTimeout())
	}
	if cfg.PostgresURL != "" || cfg.RedisAddr != "" {
		t.Errorf("expected history stores disabled by default")
	}
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("LINK_CHECK_TIMEOUT_SECONDS", "2")
	t.Setenv("HISTORY_MAX_ENTRIES", "50")
	t.Setenv("REDIS_ADDR", "localhost:6379")

	cfg, err := load(viper.New(), filepath.Join(t.TempDir(), "missing.env"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Port != "9090" {
		t.Errorf("expected port 9090, got %q", cfg.Port)
	}
	if cfg.LinkCheckTimeout() != 2*time.Second {
		t.Errorf("expected 2s, got %s", cfg.LinkCheckTimeout())
	}
	if cfg.HistoryMaxEntries != 50 {
		t.Errorf("expected 50 history entries, got %d", cfg.HistoryMaxEntries)
	}
	if cfg.RedisAddr != "localhost:6379" {
		t.Errorf("unexpected redis addr %q", cfg.RedisAddr)
	}
}
