package catalog

import (
	"errors"
	"fmt"
)

// Sentinel errors
var (
	// ErrInvalidPath indicates an empty path or an empty segment
	ErrInvalidPath = errors.New("invalid module path")

	// ErrModuleNotFound indicates the top-level unit does not exist
	ErrModuleNotFound = errors.New("module not found")

	// ErrMemberNotFound indicates a later segment does not exist
	ErrMemberNotFound = errors.New("member not found")

	// ErrAlreadyRegistered indicates a path is already taken
	ErrAlreadyRegistered = errors.New("module already registered")

	// ErrNotNamespace indicates registration beneath a module that has no members
	ErrNotNamespace = errors.New("module is not a namespace")
)

// ResolutionError represents a dotted path that could not be resolved
type ResolutionError struct {
	Path    string
	Segment string
	Err     error
}

func (e *ResolutionError) Error() string {
	if e.Segment == "" {
		return fmt.Sprintf("resolve %q: %v", e.Path, e.Err)
	}
	return fmt.Sprintf("resolve %q: segment %q: %v", e.Path, e.Segment, e.Err)
}

func (e *ResolutionError) Unwrap() error {
	return e.Err
}

// NewResolutionError creates a new ResolutionError
func NewResolutionError(path, segment string, err error) *ResolutionError {
	return &ResolutionError{
		Path:    path,
		Segment: segment,
		Err:     err,
	}
}
