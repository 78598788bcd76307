package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadDino loads the runner configuration.
// Search order: customPath -> ~/.runner/configs/dino.yaml -> ./configs/dino.yaml -> embedded default.
// Files only need to set the keys they override; everything else keeps its default.
func LoadDino(customPath string) (DinoConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return DinoConfig{}, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := ParseDino(data)
		if err != nil {
			return DinoConfig{}, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("dino.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := ParseDino(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", "dino.yaml")); err == nil {
		if cfg, err := ParseDino(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := ParseDino(defaultDinoYAML)
	if err != nil {
		return DefaultDinoConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// ParseDino decodes YAML on top of the hard-coded defaults.
func ParseDino(data []byte) (DinoConfig, error) {
	cfg := DefaultDinoConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return DinoConfig{}, err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".runner", "configs", filename)
}
