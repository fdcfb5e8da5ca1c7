package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileName is the config file meshtool looks for.
const FileName = "meshtool.yaml"

// EnvConfig names a config file to use when -config is not given.
const EnvConfig = "MESHTOOL_CONFIG"

// Load builds the config: defaults, then the first config file found,
// then command-line flags. Source records the file that was applied.
func Load() (*Config, error) {
	cfg := Default()

	path := ConfigPath()
	if path == "" {
		path = os.Getenv(EnvConfig)
	}
	if path == "" {
		path = findConfigFile()
	}

	if path != "" {
		if err := loadFromFile(cfg, path); err != nil {
			return nil, fmt.Errorf("config %s: %w", path, err)
		}
		cfg.Source = path
	}

	applyFlags(cfg)
	return cfg, nil
}

// searchPaths lists where meshtool.yaml may live: the working directory
// wins over the per-user directory so a project can pin its settings.
func searchPaths() []string {
	return []string{FileName, filepath.Join(ConfigDir(), FileName)}
}

func findConfigFile() string {
	for _, path := range searchPaths() {
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path
		}
	}
	return ""
}

// ConfigDir returns the per-user meshpack config directory.
func ConfigDir() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		home, _ := os.UserHomeDir()
		dir = filepath.Join(home, ".config")
	}
	return filepath.Join(dir, "meshpack")
}

// loadFromFile merges a YAML file over cfg. Unknown keys are rejected so a
// misspelled option does not silently fall back to its default.
func loadFromFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}
