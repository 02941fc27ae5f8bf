package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
)

// AppName names the config directories
const AppName = "dashlaunch"

// Default values
const (
	DefaultManifestPath = "apps.json"

	DefaultLogLevel  = "info"
	DefaultLogFormat = "pretty"

	DefaultTheme  = "charm"
	DefaultLocale = "en"

	DefaultHistoryEnabled = true
	DefaultHistoryTTL     = 90 * 24 * time.Hour
)

// Sort orders for the selection list
const (
	SortManifest = "manifest"
	SortName     = "name"
)

// Themes lists the accepted ui.theme values
var Themes = []string{"charm", "dracula", "catppuccin", "base16", "base"}

// ConfigDir returns the config directory path
func ConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "." + AppName
	}
	return filepath.Join(home, "."+AppName)
}

// HistoryDir returns the history store directory path
func HistoryDir() string {
	return filepath.Join(ConfigDir(), "history")
}

// XDGConfigDir returns the XDG config directory, also searched for config.yaml
func XDGConfigDir() string {
	return filepath.Join(xdg.ConfigHome, AppName)
}

// ConfigFilePath returns the config file path
func ConfigFilePath() string {
	return filepath.Join(ConfigDir(), "config.yaml")
}

// Default returns the default configuration
func Default() *Config {
	return &Config{
		Manifest: ManifestConfig{
			Path: DefaultManifestPath,
		},
		Logging: LoggingConfig{
			Level:  DefaultLogLevel,
			Format: DefaultLogFormat,
		},
		UI: UIConfig{
			Accessible: false,
			Loop:       false,
			AltScreen:  false,
			Theme:      DefaultTheme,
			Sort:       SortManifest,
			Locale:     DefaultLocale,
		},
		History: HistoryConfig{
			Enabled:   DefaultHistoryEnabled,
			Directory: HistoryDir(),
			TTL:       DefaultHistoryTTL,
		},
	}
}
