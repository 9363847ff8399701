package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ConfigFile is the arena config file name looked up in the search paths.
const ConfigFile = "arena.yaml"

// Load loads and validates the arena configuration.
// Search order: customPath -> ~/.haptic-arena/configs/arena.yaml -> ./configs/arena.yaml -> embedded default
func Load(customPath string) (ArenaConfig, error) {
	cfg, err := load(customPath)
	if err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func load(customPath string) (ArenaConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return ArenaConfig{}, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return cfg, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := UserConfigPath(ConfigFile); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := Parse(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", ConfigFile)); err == nil {
		if cfg, err := Parse(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := Parse(defaultArenaYAML)
	if err != nil {
		return DefaultArenaConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// Parse decodes arena YAML on top of the built-in defaults, so a file only
// needs the keys it changes. A file that lists obstacles replaces the whole
// default list.
func Parse(data []byte) (ArenaConfig, error) {
	cfg := DefaultArenaConfig()
	cfg.Obstacles = nil

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	if cfg.Obstacles == nil {
		cfg.Obstacles = DefaultArenaConfig().Obstacles
	}
	return cfg, nil
}

// UserConfigPath returns the path to a user config file, or empty if home is unavailable.
func UserConfigPath(filename string) string {
	dir := StateDir()
	if dir == "" {
		return ""
	}
	return filepath.Join(dir, "configs", filename)
}

// StateDir returns ~/.haptic-arena, or empty if home is unavailable.
func StateDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".haptic-arena")
}
