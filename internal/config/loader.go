package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// localConfigPath is checked relative to the working directory.
const localConfigPath = "configs/snake.yaml"

// Load reads the snake configuration.
// Search order: customPath -> ~/.snake/config.yaml -> ./configs/snake.yaml -> embedded default.
// Values missing from a file keep their defaults. A custom path that cannot be
// read or parsed is an error; the other locations are skipped silently.
func Load(customPath string) (SnakeConfig, error) {
	if customPath != "" {
		cfg, err := loadFile(customPath)
		if err != nil {
			return DefaultSnakeConfig(), err
		}
		return cfg, cfg.Validate()
	}

	if p := userConfigPath(); p != "" {
		if cfg, err := loadFile(p); err == nil {
			return cfg, cfg.Validate()
		}
	}

	if cfg, err := loadFile(localConfigPath); err == nil {
		return cfg, cfg.Validate()
	}

	cfg := DefaultSnakeConfig()
	if err := yaml.Unmarshal(defaultSnakeYAML, &cfg); err != nil {
		return DefaultSnakeConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

func loadFile(path string) (SnakeConfig, error) {
	cfg := DefaultSnakeConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("config: failed to read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config: failed to parse %s: %w", path, err)
	}
	return cfg, nil
}

// userConfigPath returns the path to the user config file, or empty if home is unavailable.
func userConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".snake", "config.yaml")
}

// ExpandHome replaces a leading "~/" with the user's home directory.
func ExpandHome(path string) string {
	if len(path) < 2 || path[:2] != "~/" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[2:])
}
