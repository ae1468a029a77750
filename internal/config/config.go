package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/jrient/text-game/internal/constants"
)

// Defaults applied when the config file or environment leave a field
// unset.
const (
	DefaultAddr            = ":8080"
	DefaultDBPath          = "./data/textgame.db"
	DefaultCleanupInterval = 30 * time.Minute
)

type rawConfig struct {
	Server *struct {
		Address string `json:"address"`
	} `json:"server"`
	Database *struct {
		Path string `json:"path"`
	} `json:"database"`
	// Optional interval between stale session sweeps, as a Go duration
	// string ("30m", "1h").
	CleanupInterval string `json:"cleanup_interval"`
}

// Config is the resolved server configuration.
type Config struct {
	Addr            string
	DBPath          string
	CleanupInterval time.Duration
}

// Load reads the optional JSON config file at path and resolves the final
// configuration. Environment variables override file values, and a missing
// file is not an error when path is empty.
func Load(path string) (*Config, error) {
	cfg := &Config{
		Addr:            DefaultAddr,
		DBPath:          DefaultDBPath,
		CleanupInterval: DefaultCleanupInterval,
	}

	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
		var rc rawConfig
		if err := json.Unmarshal(b, &rc); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
		if rc.Server != nil && rc.Server.Address != "" {
			cfg.Addr = rc.Server.Address
		}
		if rc.Database != nil && rc.Database.Path != "" {
			cfg.DBPath = rc.Database.Path
		}
		if rc.CleanupInterval != "" {
			d, err := time.ParseDuration(rc.CleanupInterval)
			if err != nil {
				return nil, fmt.Errorf("config file %s: invalid cleanup_interval: %w", path, err)
			}
			if d <= 0 {
				return nil, fmt.Errorf("config file %s: cleanup_interval must be positive", path)
			}
			cfg.CleanupInterval = d
		}
	}

	if addr := os.Getenv(constants.EnvHTTPAddr); addr != "" {
		cfg.Addr = addr
	}
	if db := os.Getenv(constants.EnvDBPath); db != "" {
		cfg.DBPath = db
	}
	return cfg, nil
}
