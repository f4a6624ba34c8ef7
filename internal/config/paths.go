package config

import (
	"os"
	"path/filepath"
)

// AppName is the directory name used under the user config directory.
const AppName = "vscode-settings"

// UserConfigPath returns the path to the user-level config file.
// This follows the platform convention of os.UserConfigDir:
// - Linux: ~/.config/vscode-settings/config.yml (XDG_CONFIG_HOME is respected)
// - macOS: ~/Library/Application Support/vscode-settings/config.yml
// - Windows: %APPDATA%\vscode-settings\config.yml
func UserConfigPath() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, AppName, "config.yml"), nil
}
