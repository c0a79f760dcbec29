package config

import (
	"os"
	"path/filepath"
	"runtime"
)

// ConfigDir is the standard configuration directory name
const ConfigDir = "strlist"

// EnvConfigPath overrides the default config file location.
const EnvConfigPath = "STRLIST_CONFIG"

// getConfigDir returns the platform-appropriate config directory.
func getConfigDir() string {
	if runtime.GOOS == "windows" {
		if appData := os.Getenv("APPDATA"); appData != "" {
			return filepath.Join(appData, "Strlist")
		}
	}
	// Unix: use XDG standard ~/.config/strlist
	if configDir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(configDir, ConfigDir)
	}
	if home, err := os.UserHomeDir(); err == nil {
		return filepath.Join(home, ".config", ConfigDir)
	}
	return ""
}

// GetDefaultConfigPath returns the default config file path
// - $STRLIST_CONFIG when set
// - Windows: %APPDATA%\Strlist\config.csv
// - Unix: ~/.config/strlist/config.csv (XDG standard)
func GetDefaultConfigPath() string {
	if p := os.Getenv(EnvConfigPath); p != "" {
		return p
	}
	configDir := getConfigDir()
	if configDir == "" {
		return "config.csv"
	}
	return filepath.Join(configDir, "config.csv")
}
