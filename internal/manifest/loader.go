package manifest

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// DefaultFileName is the manifest looked up when no path is configured
const DefaultFileName = "apps.json"

// Loader loads and validates manifest files
type Loader struct{}

// NewLoader creates a new manifest loader
func NewLoader() *Loader {
	return &Loader{}
}

// Load reads and parses a manifest file from the given path
func (l *Loader) Load(path string) ([]Entry, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, newError(path, ErrFileNotFound)
		}
		return nil, newError(path, fmt.Errorf("%w: %v", ErrReadFailed, err))
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, newError(path, fmt.Errorf("%w: %v", ErrReadFailed, err))
	}

	entries, err := l.decode(data, filepath.Ext(path))
	if err != nil {
		return nil, newError(path, err)
	}
	return entries, nil
}

// LoadFromBytes parses manifest entries from raw bytes
func (l *Loader) LoadFromBytes(data []byte, ext string) ([]Entry, error) {
	entries, err := l.decode(data, ext)
	if err != nil {
		return nil, newError("", err)
	}
	return entries, nil
}

func (l *Loader) decode(data []byte, ext string) ([]Entry, error) {
	var (
		entries []Entry
		err     error
	)

	switch strings.ToLower(ext) {
	case ".json":
		entries, err = decodeJSON(data)
	case ".yaml", ".yml":
		entries, err = decodeYAML(data)
	case ".toml":
		entries, err = decodeTOML(data)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedExt, ext)
	}
	if err != nil {
		return nil, err
	}

	for i, e := range entries {
		if err := e.Validate(); err != nil {
			return nil, fmt.Errorf("entry %d: %w", i, err)
		}
	}
	return entries, nil
}

func decodeJSON(data []byte) ([]Entry, error) {
	var entries []Entry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}
	// A literal null unmarshals without error but is not an array.
	if entries == nil {
		return nil, fmt.Errorf("%w: top-level value is null", ErrInvalidFormat)
	}
	return entries, nil
}

func decodeYAML(data []byte) ([]Entry, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 {
		return nil, fmt.Errorf("%w: empty document", ErrInvalidFormat)
	}

	root := doc.Content[0]
	if root.Kind != yaml.SequenceNode {
		return nil, fmt.Errorf("%w: top-level value is not a sequence", ErrInvalidFormat)
	}

	var entries []Entry
	if err := root.Decode(&entries); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}
	if entries == nil {
		entries = []Entry{}
	}
	return entries, nil
}

// decodeTOML reads entries from [[apps]] tables, since a TOML document
// cannot be a bare array
func decodeTOML(data []byte) ([]Entry, error) {
	var doc struct {
		Apps []Entry `toml:"apps"`
	}
	if err := toml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}
	if doc.Apps == nil {
		return nil, fmt.Errorf("%w: no [[apps]] tables", ErrInvalidFormat)
	}
	return doc.Apps, nil
}
