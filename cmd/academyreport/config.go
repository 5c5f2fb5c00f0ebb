package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// defaultConfigPath is picked up from the working directory when no
// --config flag is given.
const defaultConfigPath = "academyreport.toml"

type cliConfig struct {
	Fonts    fontsConfig    `toml:"fonts"`
	Branding brandingConfig `toml:"branding"`
}

type fontsConfig struct {
	Dir string `toml:"dir"`
}

type brandingConfig struct {
	Logo       string `toml:"logo"`
	Letterhead string `toml:"letterhead"`
}

// loadConfig reads the TOML config. An explicit path must exist; the
// default path is optional.
func loadConfig(path string) (*cliConfig, error) {
	if path == "" {
		path = defaultConfigPath
		if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
			return &cliConfig{}, nil
		}
	}

	var cfg cliConfig
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("loading config %s: %w", path, err)
	}
	return &cfg, nil
}
