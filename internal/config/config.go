package config

import (
	"fmt"
	"time"

	"golang.org/x/text/language"
)

// Config represents the application configuration
type Config struct {
	Manifest ManifestConfig `mapstructure:"manifest" yaml:"manifest"`
	Logging  LoggingConfig  `mapstructure:"logging" yaml:"logging"`
	UI       UIConfig       `mapstructure:"ui" yaml:"ui"`
	History  HistoryConfig  `mapstructure:"history" yaml:"history"`
}

// ManifestConfig locates the app manifest
type ManifestConfig struct {
	Path string `mapstructure:"path" yaml:"path"`
}

// LoggingConfig contains logging settings
type LoggingConfig struct {
	Level  string `mapstructure:"level" yaml:"level"`
	Format string `mapstructure:"format" yaml:"format"`
}

// UIConfig contains settings for the interactive selector
type UIConfig struct {
	Accessible bool   `mapstructure:"accessible" yaml:"accessible"`
	Loop       bool   `mapstructure:"loop" yaml:"loop"`
	AltScreen  bool   `mapstructure:"alt_screen" yaml:"alt_screen"`
	Theme      string `mapstructure:"theme" yaml:"theme"`
	Sort       string `mapstructure:"sort" yaml:"sort"`
	Locale     string `mapstructure:"locale" yaml:"locale"`
}

// HistoryConfig contains launch history settings
type HistoryConfig struct {
	Enabled   bool          `mapstructure:"enabled" yaml:"enabled"`
	Directory string        `mapstructure:"directory" yaml:"directory"`
	TTL       time.Duration `mapstructure:"ttl" yaml:"ttl"`
}

// Validate validates the configuration, replacing out-of-range values with defaults
func (c *Config) Validate() error {
	if c.Manifest.Path == "" {
		c.Manifest.Path = DefaultManifestPath
	}
	if !isOneOf(c.Logging.Level, "trace", "debug", "info", "warn", "error") {
		c.Logging.Level = DefaultLogLevel
	}
	if !isOneOf(c.Logging.Format, "pretty", "json") {
		c.Logging.Format = DefaultLogFormat
	}

	if c.UI.Theme == "" {
		c.UI.Theme = DefaultTheme
	} else if !isOneOf(c.UI.Theme, Themes...) {
		return fmt.Errorf("invalid ui.theme %q (use one of %v)", c.UI.Theme, Themes)
	}
	if c.UI.Sort == "" {
		c.UI.Sort = SortManifest
	} else if !isOneOf(c.UI.Sort, SortManifest, SortName) {
		return fmt.Errorf("invalid ui.sort %q (use %q or %q)", c.UI.Sort, SortManifest, SortName)
	}
	if c.UI.Locale == "" {
		c.UI.Locale = DefaultLocale
	}
	if _, err := language.Parse(c.UI.Locale); err != nil {
		return fmt.Errorf("invalid ui.locale: %w", err)
	}

	if c.History.Directory == "" {
		c.History.Directory = HistoryDir()
	}
	if c.History.TTL < 0 {
		c.History.TTL = 0
	}
	return nil
}

// LocaleTag returns the parsed ui.locale, falling back to English
func (c *Config) LocaleTag() language.Tag {
	tag, err := language.Parse(c.UI.Locale)
	if err != nil {
		return language.English
	}
	return tag
}

func isOneOf(v string, allowed ...string) bool {
	for _, a := range allowed {
		if v == a {
			return true
		}
	}
	return false
}
