package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Load loads configuration from file, environment, and defaults.
// Uses the global viper instance to access CLI flag bindings.
func Load() (*Config, error) {
	return LoadFrom(viper.GetViper())
}

// LoadFrom loads configuration through the given viper instance
func LoadFrom(v *viper.Viper) (*Config, error) {
	setDefaults(v)

	// An explicit --config file is used as is; otherwise search the usual places
	if v.ConfigFileUsed() == "" {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(ConfigDir())
		v.AddConfigPath(XDGConfigDir())
		v.AddConfigPath(".")
	}

	// Read config file (ignore if not found)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	// Environment variables (DASHLAUNCH_*)
	v.SetEnvPrefix("DASHLAUNCH")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Save writes cfg as YAML to path, creating parent directories
func Save(cfg *Config, path string) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	return os.WriteFile(path, data, 0644)
}

// setDefaults sets default values in viper
func setDefaults(v *viper.Viper) {
	v.SetDefault("manifest.path", DefaultManifestPath)

	v.SetDefault("logging.level", DefaultLogLevel)
	v.SetDefault("logging.format", DefaultLogFormat)

	v.SetDefault("ui.accessible", false)
	v.SetDefault("ui.loop", false)
	v.SetDefault("ui.alt_screen", false)
	v.SetDefault("ui.theme", DefaultTheme)
	v.SetDefault("ui.sort", SortManifest)
	v.SetDefault("ui.locale", DefaultLocale)

	v.SetDefault("history.enabled", DefaultHistoryEnabled)
	v.SetDefault("history.directory", HistoryDir())
	v.SetDefault("history.ttl", DefaultHistoryTTL)
}

// EnsureConfigDir creates the config directory if it doesn't exist
func EnsureConfigDir() error {
	return os.MkdirAll(ConfigDir(), 0755)
}
