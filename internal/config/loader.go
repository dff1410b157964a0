package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// PuyoFileName is the config file name looked up in the search path.
const PuyoFileName = "puyo.yaml"

// LoadPuyo loads puyo configuration.
// Search order: customPath -> ~/.puyo/configs/puyo.yaml -> ./configs/puyo.yaml -> embedded default.
// Only an explicit customPath produces errors; the search path falls through silently.
// The result is normalized.
func LoadPuyo(customPath string) (PuyoConfig, error) {
	cfg, _, err := LoadPuyoWithSource(customPath)
	return cfg, err
}

// LoadPuyoWithSource is LoadPuyo that also reports where the config came from:
// a file path, or "embedded" / "builtin".
func LoadPuyoWithSource(customPath string) (PuyoConfig, string, error) {
	// Fields missing from a file keep their default values.
	cfg := DefaultPuyoConfig()

	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, "", fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, "", fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		cfg.Normalize()
		return cfg, customPath, nil
	}

	candidates := []string{
		userConfigPath(PuyoFileName),
		filepath.Join("configs", PuyoFileName),
	}
	for _, path := range candidates {
		if path == "" {
			continue
		}
		if fileCfg, ok := readPuyoFile(path); ok {
			return fileCfg, path, nil
		}
	}

	if err := yaml.Unmarshal(defaultPuyoYAML, &cfg); err != nil {
		return DefaultPuyoConfig(), "builtin", nil
	}
	cfg.Normalize()
	return cfg, "embedded", nil
}

// readPuyoFile reads one candidate from the search path.
// Missing or malformed files report ok=false so the caller moves on.
func readPuyoFile(path string) (PuyoConfig, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		return PuyoConfig{}, false
	}
	cfg := DefaultPuyoConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return PuyoConfig{}, false
	}
	cfg.Normalize()
	return cfg, true
}

// MarshalPuyo renders cfg as YAML.
func MarshalPuyo(cfg PuyoConfig) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("config: cannot encode puyo config: %w", err)
	}
	return data, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".puyo", "configs", filename)
}
