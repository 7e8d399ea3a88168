package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadFestival loads Festival Crush configuration. Keys missing from a file
// keep their default values.
// Search order: customPath -> ~/.crush/configs/festival.yaml -> ./configs/festival.yaml -> embedded default
func LoadFestival(customPath string) (FestivalConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return FestivalConfig{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg := DefaultFestivalConfig()
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return FestivalConfig{}, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("festival.yaml"); userCfgPath != "" {
		if cfg, ok := readFestival(userCfgPath); ok {
			return cfg, nil
		}
	}

	// Try local configs directory
	if cfg, ok := readFestival(filepath.Join("configs", "festival.yaml")); ok {
		return cfg, nil
	}

	// Use embedded default YAML
	cfg := DefaultFestivalConfig()
	if err := yaml.Unmarshal(defaultFestivalYAML, &cfg); err != nil {
		return DefaultFestivalConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// readFestival reads an optional config file; unreadable or invalid files
// are passed over.
func readFestival(path string) (FestivalConfig, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		return FestivalConfig{}, false
	}
	cfg := DefaultFestivalConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return FestivalConfig{}, false
	}
	return cfg, true
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".crush", "configs", filename)
}
