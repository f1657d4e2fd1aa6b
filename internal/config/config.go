package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/ringside/boxing/internal/constants"
	"github.com/ringside/boxing/internal/randomsource"
)

type rawConfig struct {
	Server *struct {
		Address string `json:"address"`
	} `json:"server"`
	RandomSource *struct {
		URL            string `json:"url"`
		TimeoutSeconds int    `json:"timeout_seconds"`
	} `json:"random_source"`
	Leaderboard *struct {
		DefaultLimit int `json:"default_limit"`
	} `json:"leaderboard"`
}

// LoadedConfig holds the resolved server settings.
type LoadedConfig struct {
	ServerAddress       string
	RandomSourceURL     string
	RandomSourceTimeout time.Duration
	LeaderboardLimit    int
}

// Default returns the configuration used when no config file is present.
// The RANDOM_ORG_URL environment variable overrides the random source URL.
func Default() *LoadedConfig {
	cfg := &LoadedConfig{
		ServerAddress:       ":8080",
		RandomSourceURL:     randomsource.DefaultURL,
		RandomSourceTimeout: randomsource.DefaultTimeout,
		LeaderboardLimit:    10,
	}
	if u := os.Getenv(constants.EnvRandomOrgURL); u != "" {
		cfg.RandomSourceURL = u
	}
	return cfg
}

// LoadConfig reads the configuration file at path. Missing keys fall back
// to the defaults; the RANDOM_ORG_URL environment variable still wins over
// the file for the random source URL.
func LoadConfig(path string) (*LoadedConfig, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	var rc rawConfig
	if err := json.Unmarshal(b, &rc); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	cfg := Default()
	if rc.Server != nil && rc.Server.Address != "" {
		cfg.ServerAddress = rc.Server.Address
	}
	if rc.RandomSource != nil {
		if rc.RandomSource.URL != "" && os.Getenv(constants.EnvRandomOrgURL) == "" {
			cfg.RandomSourceURL = rc.RandomSource.URL
		}
		if rc.RandomSource.TimeoutSeconds > 0 {
			cfg.RandomSourceTimeout = time.Duration(rc.RandomSource.TimeoutSeconds) * time.Second
		}
	}
	if rc.Leaderboard != nil && rc.Leaderboard.DefaultLimit > 0 {
		cfg.LeaderboardLimit = rc.Leaderboard.DefaultLimit
	}
	return cfg, nil
}
