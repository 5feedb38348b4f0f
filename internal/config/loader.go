package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// validator is implemented by every game config.
type validator interface {
	Validate() error
}

// LoadBowling loads bowling rules.
// Search order: customPath -> ~/.scorekeeper/configs/bowling.yaml -> ./configs/bowling.yaml -> embedded default
func LoadBowling(customPath string) (BowlingConfig, error) {
	return load(customPath, "bowling", DefaultBowlingConfig)
}

// LoadTennis loads tennis rules.
// Search order: customPath -> ~/.scorekeeper/configs/tennis.yaml -> ./configs/tennis.yaml -> embedded default
func LoadTennis(customPath string) (TennisConfig, error) {
	return load(customPath, "tennis", DefaultTennisConfig)
}

func load[T validator](customPath, gameID string, fallback func() T) (T, error) {
	// A custom path is explicit, so any problem with it is an error.
	if customPath != "" {
		cfg, err := readConfig[T](customPath)
		if err != nil {
			return cfg, err
		}
		if err := cfg.Validate(); err != nil {
			return cfg, fmt.Errorf("config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	filename := gameID + ".yaml"

	// Try user config directory
	if userCfgPath := userConfigPath(filename); userCfgPath != "" {
		if cfg, err := readConfig[T](userCfgPath); err == nil && cfg.Validate() == nil {
			return cfg, nil
		}
	}

	// Try local configs directory
	if cfg, err := readConfig[T](filepath.Join("configs", filename)); err == nil && cfg.Validate() == nil {
		return cfg, nil
	}

	// Use embedded default YAML
	var cfg T
	if err := yaml.Unmarshal(GetDefaultYAML(gameID), &cfg); err != nil || cfg.Validate() != nil {
		return fallback(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

func readConfig[T any](path string) (T, error) {
	var cfg T
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".scorekeeper", "configs", filename)
}
