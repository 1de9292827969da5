package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadSurvival loads the Outpost Sigma configuration.
// Search order: customPath -> ~/.arcade/configs/survival.yaml -> ./configs/survival.yaml -> embedded default
func LoadSurvival(customPath string) (SurvivalConfig, error) {
	return load("survival", customPath, DefaultSurvivalConfig)
}

// LoadDuel loads the duel configuration with the same search order as LoadSurvival.
func LoadDuel(customPath string) (DuelConfig, error) {
	return load("duel", customPath, DefaultDuelConfig)
}

// load decodes a game's YAML over its hardcoded defaults so that partial
// files only override the keys they name.
func load[T any](gameID, customPath string, fallback func() T) (T, error) {
	cfg := fallback()

	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("config: read %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return fallback(), fmt.Errorf("config: parse %s: %w", customPath, err)
		}
		return cfg, nil
	}

	name := gameID + ".yaml"
	for _, path := range []string{userConfigPath(name), filepath.Join("configs", name)} {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		candidate := fallback()
		if err := yaml.Unmarshal(data, &candidate); err == nil {
			return candidate, nil
		}
	}

	if err := yaml.Unmarshal(GetDefaultYAML(gameID), &cfg); err != nil {
		return fallback(), nil // embedded copy broken, hardcoded values still work
	}
	return cfg, nil
}

// userConfigPath returns the path to a user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}
