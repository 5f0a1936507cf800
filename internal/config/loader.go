package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadGame2048 loads 2048 configuration.
// Search order: customPath -> ~/.puzzles/configs/2048.yaml -> ./configs/2048.yaml -> embedded default
func LoadGame2048(customPath string) (Game2048Config, error) {
	// Fields missing from the YAML keep their hardcoded defaults
	cfg := DefaultGame2048Config()
	if err := load(customPath, "2048.yaml", defaultGame2048YAML, &cfg); err != nil {
		return cfg, err
	}
	cfg.Validate()
	return cfg, nil
}

// LoadFifteen loads 15-puzzle configuration.
// Search order: customPath -> ~/.puzzles/configs/fifteen.yaml -> ./configs/fifteen.yaml -> embedded default
func LoadFifteen(customPath string) (FifteenConfig, error) {
	cfg := DefaultFifteenConfig()
	if err := load(customPath, "fifteen.yaml", defaultFifteenYAML, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// load decodes the first config found along the search path into out.
// Only a missing or malformed customPath is an error; the other locations
// are skipped silently when absent or unreadable.
func load(customPath, filename string, embedded []byte, out any) error {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, out); err != nil {
			return fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath(filename); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := yaml.Unmarshal(data, out); err == nil {
				return nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", filename)); err == nil {
		if err := yaml.Unmarshal(data, out); err == nil {
			return nil
		}
	}

	// Use embedded default YAML
	//nolint:errcheck // A broken embed leaves the hardcoded defaults in place
	yaml.Unmarshal(embedded, out)
	return nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".puzzles", "configs", filename)
}
