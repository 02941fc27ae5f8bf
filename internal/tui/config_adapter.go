package tui

import (
	"fmt"
	"time"

	"github.com/quantmind-br/dashlaunch/internal/config"
)

// ConfigValues holds form values that map to Config struct.
// Durations are stored as strings for form editing.
type ConfigValues struct {
	ManifestPath string

	Accessible bool
	Loop       bool
	AltScreen  bool
	Theme      string
	Sort       string
	Locale     string

	HistoryEnabled   bool
	HistoryDirectory string
	HistoryTTL       string

	LogLevel  string
	LogFormat string
}

// FromConfig converts a Config to ConfigValues for form editing
func FromConfig(cfg *config.Config) *ConfigValues {
	return &ConfigValues{
		ManifestPath: cfg.Manifest.Path,

		Accessible: cfg.UI.Accessible,
		Loop:       cfg.UI.Loop,
		AltScreen:  cfg.UI.AltScreen,
		Theme:      cfg.UI.Theme,
		Sort:       cfg.UI.Sort,
		Locale:     cfg.UI.Locale,

		HistoryEnabled:   cfg.History.Enabled,
		HistoryDirectory: cfg.History.Directory,
		HistoryTTL:       formatDuration(cfg.History.TTL),

		LogLevel:  cfg.Logging.Level,
		LogFormat: cfg.Logging.Format,
	}
}

// ToConfig converts ConfigValues back to a validated Config
func (v *ConfigValues) ToConfig() (*config.Config, error) {
	ttl, err := parseDurationOrDefault(v.HistoryTTL, 0)
	if err != nil {
		return nil, fmt.Errorf("invalid history ttl: %w", err)
	}

	cfg := &config.Config{
		Manifest: config.ManifestConfig{
			Path: v.ManifestPath,
		},
		Logging: config.LoggingConfig{
			Level:  v.LogLevel,
			Format: v.LogFormat,
		},
		UI: config.UIConfig{
			Accessible: v.Accessible,
			Loop:       v.Loop,
			AltScreen:  v.AltScreen,
			Theme:      v.Theme,
			Sort:       v.Sort,
			Locale:     v.Locale,
		},
		History: config.HistoryConfig{
			Enabled:   v.HistoryEnabled,
			Directory: v.HistoryDirectory,
			TTL:       ttl,
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func formatDuration(d time.Duration) string {
	if d == 0 {
		return ""
	}
	return d.String()
}

func parseDurationOrDefault(s string, defaultVal time.Duration) (time.Duration, error) {
	if s == "" {
		return defaultVal, nil
	}
	return time.ParseDuration(s)
}
