// Package config provides layered configuration for vscode-settings using koanf.
// Configuration is loaded with priority: environment variables > user config
// (~/.config/vscode-settings/config.yml) > defaults. Only presentation settings
// live here; the template and destination layout is fixed.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix is the prefix for environment variable overrides.
const EnvPrefix = "VSCODE_SETTINGS_"

// Configuration represents the vscode-settings CLI configuration
type Configuration struct {
	// NoColor disables colored status lines and error output.
	// Can be set via VSCODE_SETTINGS_NO_COLOR env var.
	NoColor bool `koanf:"no_color"`

	// LogLevel is the diagnostic log level (debug, info, warn, error, disabled).
	// Default: warn. Can be set via VSCODE_SETTINGS_LOG_LEVEL env var.
	LogLevel string `koanf:"log_level"`
}

// LoadOptions configures how configuration is loaded
type LoadOptions struct {
	// UserConfigPath overrides the user config path (default: UserConfigPath()).
	UserConfigPath string
}

// LoadWithOptions loads configuration from defaults, the user config file and
// the environment. A zero LoadOptions reads the default user config path.
func LoadWithOptions(opts LoadOptions) (*Configuration, error) {
	k := koanf.New(".")

	loadDefaults(k)

	if err := loadUserConfig(k, opts.UserConfigPath); err != nil {
		return nil, err
	}

	if err := loadEnvironmentConfig(k); err != nil {
		return nil, err
	}

	return finalizeConfig(k)
}

// ResolvedUserConfigPath returns the user config path that LoadWithOptions reads.
func (o LoadOptions) ResolvedUserConfigPath() string {
	if o.UserConfigPath != "" {
		return o.UserConfigPath
	}
	path, _ := UserConfigPath()
	return path
}

// loadDefaults applies default configuration values
func loadDefaults(k *koanf.Koanf) {
	for key, value := range GetDefaults() {
		k.Set(key, value)
	}
}

// loadUserConfig validates and loads the user YAML config if it exists.
func loadUserConfig(k *koanf.Koanf, customPath string) error {
	path := LoadOptions{UserConfigPath: customPath}.ResolvedUserConfigPath()
	if !fileExists(path) {
		return nil
	}
	if err := ValidateYAMLSyntax(path); err != nil {
		return fmt.Errorf("validating user config: %w", err)
	}
	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return fmt.Errorf("failed to load user config %s: %w", path, err)
	}
	return nil
}

// loadEnvironmentConfig loads environment variable overrides
func loadEnvironmentConfig(k *koanf.Koanf) error {
	if err := k.Load(env.Provider(EnvPrefix, ".", envTransform), nil); err != nil {
		return fmt.Errorf("failed to load environment config: %w", err)
	}
	return nil
}

// finalizeConfig unmarshals and validates the merged configuration
func finalizeConfig(k *koanf.Koanf) (*Configuration, error) {
	var cfg Configuration
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	cfg.LogLevel = strings.ToLower(strings.TrimSpace(cfg.LogLevel))
	if err := ValidateConfigValues(&cfg, "config"); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

// fileExists returns true if the file exists and is readable
func fileExists(path string) bool {
	if path == "" {
		return false
	}
	_, err := os.Stat(path)
	return err == nil
}

// envTransform converts environment variable names to config keys
// Example: VSCODE_SETTINGS_LOG_LEVEL -> log_level
func envTransform(s string) string {
	return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
}
