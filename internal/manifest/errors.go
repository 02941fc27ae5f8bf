package manifest

import (
	"errors"
	"fmt"
)

// Sentinel errors for the manifest package
var (
	// ErrFileNotFound indicates the manifest file does not exist
	ErrFileNotFound = errors.New("manifest file not found")

	// ErrReadFailed indicates the manifest file could not be read
	ErrReadFailed = errors.New("manifest file could not be read")

	// ErrInvalidFormat indicates the manifest is not an array of entries
	ErrInvalidFormat = errors.New("manifest must be an array of {name, module} objects")

	// ErrUnsupportedExt indicates an unsupported file extension
	ErrUnsupportedExt = errors.New("unsupported file extension (use .json, .yaml, or .yml)")

	// ErrMissingField indicates an entry is missing its name or module
	ErrMissingField = errors.New("manifest entry is missing a required field")
)

// ManifestError reports a manifest that could not be loaded. It is fatal
// at startup: no registry can be built without a manifest.
type ManifestError struct {
	Path string
	Err  error
}

func (e *ManifestError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("manifest: %v", e.Err)
	}
	return fmt.Sprintf("manifest %s: %v", e.Path, e.Err)
}

func (e *ManifestError) Unwrap() error {
	return e.Err
}

func newError(path string, err error) *ManifestError {
	return &ManifestError{Path: path, Err: err}
}
