package tui

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"golang.org/x/text/language"
)

// Validation error messages
var (
	ErrRequired         = errors.New("this field is required")
	ErrUnsupportedFile  = errors.New("manifest must be a .json, .yaml, .yml, or .toml file")
	ErrNegativeDuration = errors.New("duration must not be negative")
)

// ValidateRequired ensures a string value is not empty
func ValidateRequired(s string) error {
	if strings.TrimSpace(s) == "" {
		return ErrRequired
	}
	return nil
}

// ValidateManifestPath accepts empty (default) or a path with a manifest extension
func ValidateManifestPath(s string) error {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	switch strings.ToLower(filepath.Ext(s)) {
	case ".json", ".yaml", ".yml", ".toml":
		return nil
	default:
		return ErrUnsupportedFile
	}
}

// ValidateDuration validates that a string can be parsed as a non-negative time.Duration
func ValidateDuration(s string) error {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("invalid duration format (use: 30m, 24h, 720h): %w", err)
	}
	if d < 0 {
		return ErrNegativeDuration
	}
	return nil
}

// ValidateLocale validates a BCP 47 language tag
func ValidateLocale(s string) error {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	if _, err := language.Parse(s); err != nil {
		return fmt.Errorf("invalid locale: %w", err)
	}
	return nil
}
