package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"

	"gopkg.in/yaml.v3"
)

// Environment overrides, applied between the config file and flags.
const (
	EnvConfig   = "ARLISS_CONFIG"
	EnvLogLevel = "ARLISS_LOG_LEVEL"
	EnvPort     = "PORT"
	EnvGinMode  = "GIN_MODE"
)

// Load resolves configuration with priority: defaults < file < environment < flags.
func Load() (*Config, error) {
	cfg := Default()

	if path := resolveConfigPath(); path != "" {
		if err := loadFromFile(cfg, path); err != nil {
			return nil, fmt.Errorf("loading config from %s: %w", path, err)
		}
	}

	applyEnv(cfg, os.Getenv)
	applyFlags(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// resolveConfigPath prefers --config, then $ARLISS_CONFIG, then the standard locations.
func resolveConfigPath() string {
	if p := ConfigPath(); p != "" {
		return p
	}
	if p := os.Getenv(EnvConfig); p != "" {
		return p
	}
	return findConfigFile()
}

// findConfigFile looks for config in standard locations.
func findConfigFile() string {
	candidates := []string{
		"./arliss.yaml",
		"./config.yaml",
		filepath.Join(ConfigDir(), "config.yaml"),
	}

	for _, path := range candidates {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// ConfigDir returns the OS-appropriate config directory.
func ConfigDir() string {
	switch runtime.GOOS {
	case "darwin":
		home, _ := os.UserHomeDir()
		return filepath.Join(home, "Library", "Application Support", "Arliss")
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), "Arliss")
	default:
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			return filepath.Join(xdg, "arliss")
		}
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".config", "arliss")
	}
}

// loadFromFile merges a YAML file into cfg. Unknown keys are rejected so typos surface.
func loadFromFile(cfg *Config, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	return nil
}

// applyEnv applies the deployment-style overrides used by the web host.
func applyEnv(cfg *Config, getenv func(string) string) {
	if port := getenv(EnvPort); port != "" {
		cfg.Server.Addr = ":" + port
	}
	if mode := getenv(EnvGinMode); mode != "" {
		cfg.Server.GinMode = mode
	}
	if level := getenv(EnvLogLevel); level != "" {
		cfg.Logging.Level = level
	}
}
