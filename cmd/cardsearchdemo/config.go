package main

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// demoConfig is the optional YAML config: a seed string and session salt
// feed the seeded sort, UsePrintings toggles whether the fixture's
// PrintingIndex is loaded at all.
type demoConfig struct {
	Seed         string `yaml:"seed"`
	SessionSalt  uint32 `yaml:"session_salt"`
	UsePrintings bool   `yaml:"use_printings"`
}

func defaultConfig() demoConfig {
	return demoConfig{
		Seed:         "cardsearch",
		SessionSalt:  0,
		UsePrintings: true,
	}
}

// configPath resolves the default config location under the user's XDG
// config directory.
func configPath() (string, error) {
	return xdg.ConfigFile(filepath.Join("cardsearchdemo", "config.yaml"))
}

// loadConfig reads path if it exists, overlaying decoded fields onto the
// defaults; a missing file is not an error.
func loadConfig(path string) (demoConfig, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return cfg, errors.Wrapf(err, "reading config %q", path)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, errors.Wrapf(err, "decoding config %q", path)
	}
	return cfg, nil
}
