// Package config provides configuration helpers and TOML parsing.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// FileConfig represents the TOML configuration file.
type FileConfig struct {
	Greeting GreetingConfig `toml:"greeting"`
	Effects  EffectsConfig  `toml:"effects"`
	History  HistoryConfig  `toml:"history"`
}

// GreetingConfig maps greeting-related settings.
type GreetingConfig struct {
	Recipient *string `toml:"recipient"`
	Catalog   *string `toml:"catalog"`
}

// EffectsConfig maps animation settings.
type EffectsConfig struct {
	Stars        *int  `toml:"stars"`
	TypewriterMs *int  `toml:"typewriter-ms"`
	ReduceMotion *bool `toml:"reduce-motion"`
}

// HistoryConfig maps journey history settings.
type HistoryConfig struct {
	Enabled *bool `toml:"enabled"`
}

// LoadConfig reads a TOML config from the given path. Missing file is not an error.
func LoadConfig(path string) (FileConfig, error) {
	if path == "" {
		return FileConfig{}, fmt.Errorf("config path is empty")
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return FileConfig{}, nil
		}
		return FileConfig{}, fmt.Errorf("failed to stat config: %w", err)
	}
	var cfg FileConfig
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return FileConfig{}, fmt.Errorf("failed to decode config: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return FileConfig{}, fmt.Errorf("unknown config key %q", undecoded[0].String())
	}
	return cfg, nil
}
