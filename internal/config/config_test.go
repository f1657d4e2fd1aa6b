package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/ringside/boxing/internal/randomsource"
)

func writeConfig(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "boxing_config.json")
	if err := os.WriteFile(path, []byte(contents), 0o600); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	return path
}

func TestLoadConfig_FullFile(t *testing.T) {
	path := writeConfig(t, `{
		"server": {"address": ":9090"},
		"random_source": {"url": "http://localhost:7777/rand", "timeout_seconds": 2},
		"leaderboard": {"default_limit": 25}
	}`)
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.ServerAddress != ":9090" {
		t.Fatalf("expected :9090, got %q", cfg.ServerAddress)
	}
	if cfg.RandomSourceURL != "http://localhost:7777/rand" {
		t.Fatalf("expected configured random source URL, got %q", cfg.RandomSourceURL)
	}
	if cfg.RandomSourceTimeout != 2*time.Second {
		t.Fatalf("expected 2s timeout, got %v", cfg.RandomSourceTimeout)
	}
	if cfg.LeaderboardLimit != 25 {
		t.Fatalf("expected limit 25, got %d", cfg.LeaderboardLimit)
	}
}

func TestLoadConfig_MissingKeysFallBack(t *testing.T) {
	path := writeConfig(t, `{}`)
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.ServerAddress != ":8080" {
		t.Fatalf("expected default address, got %q", cfg.ServerAddress)
	}
	if cfg.RandomSourceURL != randomsource.DefaultURL {
		t.Fatalf("expected default random source URL, got %q", cfg.RandomSourceURL)
	}
	if cfg.RandomSourceTimeout != randomsource.DefaultTimeout {
		t.Fatalf("expected default timeout, got %v", cfg.RandomSourceTimeout)
	}
	if cfg.LeaderboardLimit != 10 {
		t.Fatalf("expected default limit, got %d", cfg.LeaderboardLimit)
	}
}

func TestLoadConfig_EnvOverridesRandomURL(t *testing.T) {
	t.Setenv("RANDOM_ORG_URL", "http://override.example/rand")
	path := writeConfig(t, `{"random_source": {"url": "http://file.example/rand"}}`)
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.RandomSourceURL != "http://override.example/rand" {
		t.Fatalf("expected env override to win, got %q", cfg.RandomSourceURL)
	}
}

func TestLoadConfig_InvalidJSON(t *testing.T) {
	path := writeConfig(t, `{not json`)
	if _, err := LoadConfig(path); err == nil {
		t.Fatalf("expected parse error")
	}
}

func TestLoadConfig_MissingFile(t *testing.T) {
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "nope.json")); err == nil {
		t.Fatalf("expected read error")
	}
}
