// Package config loads server settings from an optional YAML file with
// environment-variable overrides. Flags on the serve command take final
// precedence over both.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the server settings.
type Config struct {
	Addr      string `yaml:"addr"`
	DBPath    string `yaml:"db_path"`
	JWTSecret string `yaml:"jwt_secret"`
}

// Defaults returns the baseline configuration.
func Defaults() Config {
	return Config{
		Addr:   ":8080",
		DBPath: "fleetdesk.sqlite3",
	}
}

// Load builds the configuration from defaults, an optional YAML file
// (path may be empty) and environment variables, in that order.
func Load(path string) (Config, error) {
	cfg := Defaults()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("reading config file: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parsing config file: %w", err)
		}
	}

	cfg.Addr = envOrDefault("FLEETDESK_ADDR", cfg.Addr)
	cfg.DBPath = envOrDefault("FLEETDESK_DB", cfg.DBPath)
	cfg.JWTSecret = envOrDefault("FLEETDESK_JWT_SECRET", cfg.JWTSecret)

	return cfg, nil
}

func envOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
