package main

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// config holds dump rendering defaults, overridable per invocation by
// flags.
type config struct {
	Width   int    `toml:"width"`
	Charset string `toml:"charset"` // "windows1252" or "cp437"
	Color   bool   `toml:"color"`
}

func defaultConfig() config {
	return config{
		Width:   16,
		Charset: "windows1252",
		Color:   true,
	}
}

// loadConfig reads $XDG_CONFIG_HOME/hexctl/config.toml (or the platform
// equivalent) when present. A missing file is not an error; a malformed one
// is.
func loadConfig() (config, error) {
	cfg := defaultConfig()

	dir, err := os.UserConfigDir()
	if err != nil {
		return cfg, nil
	}
	path := filepath.Join(dir, "hexctl", "config.toml")
	if _, err := os.Stat(path); err != nil {
		return cfg, nil
	}

	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return cfg, err
	}
	if cfg.Width <= 0 {
		cfg.Width = 16
	}
	return cfg, nil
}
