// Package config resolves the per-user configuration directory and loads
// the optional YAML settings file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// AppName names the configuration directory.
const AppName = "bannerfetch"

// Config holds the settings a user may persist. Command-line flags take
// precedence over every field.
type Config struct {
	// Logo overrides the logo picked from the distribution id.
	Logo string `yaml:"logo"`
	// NoLogo prints the info block alone.
	NoLogo bool `yaml:"no_logo"`
	// Gap is the number of spaces between logo and info.
	Gap int `yaml:"gap"`
	// Color is one of "auto", "always" or "never".
	Color string `yaml:"color"`
	// Shell runs $(...) template substitutions.
	Shell string `yaml:"shell"`
	// Template overrides the default override-template location.
	Template string `yaml:"template"`
	// LogLevel is "debug", "info", "warn" or "error".
	LogLevel string `yaml:"log_level"`
}

// Default returns the settings used when no file exists.
func Default() Config {
	return Config{
		Gap:      4,
		Color:    "auto",
		Shell:    "sh",
		LogLevel: "warn",
	}
}

// Dir returns the configuration directory for user: /home/<user>/.config/bannerfetch.
// An empty user yields a directory that does not exist, so every lookup
// falls back to defaults.
func Dir(user string) string {
	return filepath.Join("/home", user, ".config", AppName)
}

// InfoTemplatePath is the override template location for user.
func InfoTemplatePath(user string) string {
	return filepath.Join(Dir(user), "info.tmpl")
}

// FilePath is the settings file location for user.
func FilePath(user string) string {
	return filepath.Join(Dir(user), "config.yaml")
}

// Load reads the YAML file at path over the defaults. A missing file is not
// an error.
func Load(path string) (Config, error) {
	cfg := Default()
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("failed to read config %q: %w", path, err)
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config %q: %w", path, err)
	}
	if cfg.Gap < 0 {
		return cfg, fmt.Errorf("invalid config %q: gap must not be negative", path)
	}
	return cfg, nil
}
