package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// fileNames lists the config file names probed in each search directory.
var fileNames = []string{"platformer.yaml", "platformer.yml", "platformer.toml"}

// Load loads the platformer configuration.
// Search order: customPath -> ~/.platformer/configs/platformer.{yaml,yml,toml}
// -> ./configs/platformer.{yaml,yml,toml} -> embedded default.
// Only an explicit customPath reports read or parse errors; unusable files
// found while searching are skipped.
func Load(customPath string) (PlatformerConfig, error) {
	if customPath != "" {
		return LoadFile(customPath)
	}

	var candidates []string
	if dir := userConfigDir(); dir != "" {
		for _, name := range fileNames {
			candidates = append(candidates, filepath.Join(dir, name))
		}
	}
	for _, name := range fileNames {
		candidates = append(candidates, filepath.Join("configs", name))
	}

	for _, path := range candidates {
		if cfg, err := LoadFile(path); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := Parse(defaultPlatformerYAML, ".yaml")
	if err != nil {
		return DefaultPlatformerConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// LoadFile reads and validates a single config file. The format is chosen
// by extension.
func LoadFile(path string) (PlatformerConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return PlatformerConfig{}, fmt.Errorf("config: failed to read %s: %w", path, err)
	}
	cfg, err := Parse(data, filepath.Ext(path))
	if err != nil {
		return PlatformerConfig{}, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes config data on top of the built-in defaults, so a file only
// needs the keys it changes. Lists (platforms, coins) replace the defaults
// wholesale. The result is validated.
func Parse(data []byte, ext string) (PlatformerConfig, error) {
	cfg := DefaultPlatformerConfig()

	switch strings.ToLower(ext) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return PlatformerConfig{}, fmt.Errorf("failed to parse yaml: %w", err)
		}
	case ".toml":
		// The toml decoder reuses slice elements in place, which would leak
		// default reach texts into platforms the file leaves them out of.
		defaults := cfg.Level
		cfg.Level.Platforms, cfg.Level.Coins = nil, nil
		md, err := toml.Decode(string(data), &cfg)
		if err != nil {
			return PlatformerConfig{}, fmt.Errorf("failed to parse toml: %w", err)
		}
		if !md.IsDefined("level", "platforms") {
			cfg.Level.Platforms = defaults.Platforms
		}
		if !md.IsDefined("level", "coins") {
			cfg.Level.Coins = defaults.Coins
		}
	default:
		return PlatformerConfig{}, fmt.Errorf("unsupported config extension %q", ext)
	}

	if err := cfg.Validate(); err != nil {
		return PlatformerConfig{}, err
	}
	return cfg, nil
}

// Encode writes cfg in the format named by ext (".yaml" or ".toml").
func Encode(cfg PlatformerConfig, ext string) ([]byte, error) {
	switch strings.ToLower(ext) {
	case ".yaml", ".yml", "yaml", "yml":
		out, err := yaml.Marshal(cfg)
		if err != nil {
			return nil, fmt.Errorf("config: failed to encode yaml: %w", err)
		}
		return out, nil
	case ".toml", "toml":
		var buf bytes.Buffer
		if err := toml.NewEncoder(&buf).Encode(cfg); err != nil {
			return nil, fmt.Errorf("config: failed to encode toml: %w", err)
		}
		return buf.Bytes(), nil
	default:
		return nil, fmt.Errorf("config: unsupported format %q", ext)
	}
}

// userConfigDir returns the user config directory, or empty if home is unavailable.
func userConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".platformer", "configs")
}
