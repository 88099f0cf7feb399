package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// configNames are the file names probed in each search directory.
var configNames = []string{"breakout.yaml", "breakout.yml", "breakout.toml"}

// LoadBreakout loads Breakout configuration.
// Search order: customPath -> ~/.breakout/breakout.{yaml,yml,toml} ->
// ./configs/breakout.{yaml,yml,toml} -> embedded default.
// Keys missing from a file keep their default values. Files ending in
// .toml are decoded as TOML, everything else as YAML.
func LoadBreakout(customPath string) (BreakoutConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return BreakoutConfig{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := decode(customPath, data)
		if err != nil {
			return BreakoutConfig{}, err
		}
		if err := cfg.Validate(); err != nil {
			return BreakoutConfig{}, fmt.Errorf("invalid config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory, then local configs directory
	for _, dir := range searchDirs() {
		for _, name := range configNames {
			path := filepath.Join(dir, name)
			data, err := os.ReadFile(path)
			if err != nil {
				continue
			}
			cfg, err := decode(path, data)
			if err != nil {
				continue
			}
			if cfg.Validate() == nil {
				return cfg, nil
			}
		}
	}

	// Use embedded default YAML
	cfg, err := decode("defaults/breakout.yaml", defaultBreakoutYAML)
	if err != nil || cfg.Validate() != nil {
		return DefaultBreakoutConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// decode parses data on top of the hard-coded defaults.
func decode(path string, data []byte) (BreakoutConfig, error) {
	cfg := DefaultBreakoutConfig()

	if strings.EqualFold(filepath.Ext(path), ".toml") {
		if err := toml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
		return cfg, nil
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return cfg, nil
}

// Marshal renders a configuration as YAML.
func Marshal(cfg BreakoutConfig) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to encode config: %w", err)
	}
	return data, nil
}

// searchDirs returns the directories probed for a config file.
func searchDirs() []string {
	dirs := make([]string, 0, 2)
	if home, err := os.UserHomeDir(); err == nil {
		dirs = append(dirs, filepath.Join(home, ".breakout"))
	}
	return append(dirs, "configs")
}
