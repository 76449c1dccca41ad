package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

type Config struct {
	Driver    string `toml:"driver"`
	DBPath    string `toml:"db_path"`
	DSN       string `toml:"dsn"`
	User      string `toml:"user"`
	Namespace string `toml:"namespace"`
	Addr      string `toml:"addr"`
}

// Load reads the optional config file, then applies environment overrides.
// The file lives at $TASKHUB_CONFIG or ~/.taskhub.toml; a missing file is
// not an error.
func Load() (*Config, error) {
	cfg := &Config{
		Driver:    "sqlite",
		Namespace: "default",
		Addr:      ":8080",
	}

	path := os.Getenv("TASKHUB_CONFIG")
	if path == "" {
		if home, err := os.UserHomeDir(); err == nil {
			path = filepath.Join(home, ".taskhub.toml")
		}
	}
	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if _, err := toml.DecodeFile(path, cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
			}
		}
	}

	cfg.Driver = getEnv("TASKHUB_DRIVER", cfg.Driver)
	cfg.DBPath = getEnv("TASKHUB_DB", cfg.DBPath)
	cfg.DSN = getEnv("TASKHUB_DSN", cfg.DSN)
	cfg.User = getEnv("TASKHUB_USER", cfg.User)
	cfg.Namespace = getEnv("TASKHUB_NAMESPACE", cfg.Namespace)
	cfg.Addr = getEnv("TASKHUB_ADDR", cfg.Addr)

	if cfg.User == "" {
		cfg.User = getEnv("USER", "default")
	}
	if cfg.DBPath == "" {
		if home, err := os.UserHomeDir(); err == nil {
			cfg.DBPath = filepath.Join(home, ".taskhub.db")
		} else {
			cfg.DBPath = "taskhub.db"
		}
	}

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
