package config

import (
	"encoding/json"
	"fmt"
	"os"
)

// Config is the server configuration, read from an optional JSON file.
// The ADDR environment variable overrides the listen address either way.
type Config struct {
	Addr string `json:"addr"`
	// BotFill marks unclaimed seats as bots when a game starts, so a
	// single human can play against three random-policy opponents.
	BotFill bool `json:"bot_fill"`
	// Seed fixes the game's random source; 0 means seed from the clock.
	Seed int64 `json:"seed"`
	// Debug switches the logger to development output.
	Debug bool `json:"debug"`
}

func Default() Config {
	return Config{Addr: ":8080"}
}

// Load reads the config file at path, or returns defaults when path is
// empty. It never caches; callers own the value.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("read config: %w", err)
		}
		if err := json.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parse config: %w", err)
		}
	}
	if v := os.Getenv("ADDR"); v != "" {
		cfg.Addr = v
	}
	if cfg.Addr == "" {
		cfg.Addr = ":8080"
	}
	return cfg, nil
}
