package launcher

import "errors"

// Sentinel errors
var (
	// ErrUnknownApp indicates a name that is not in the registry
	ErrUnknownApp = errors.New("unknown app")

	// ErrNotRunnable indicates a module that no longer exposes Run
	ErrNotRunnable = errors.New("module has no Run entry point")

	// ErrAborted is returned by a Host when the user cancels a prompt
	ErrAborted = errors.New("aborted by user")
)
