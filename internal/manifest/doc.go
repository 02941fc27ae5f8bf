// Package manifest loads the launcher manifest: a flat list of named
// application modules.
//
// # Manifest Format
//
// The canonical manifest is apps.json, an array of objects:
//
//	[
//	  {"name": "Hello", "module": "demo.hello"},
//	  {"name": "About", "module": "docs.about"}
//	]
//
// The same shape is accepted in YAML (.yaml, .yml):
//
//	- name: Hello
//	  module: demo.hello
//
// TOML documents cannot be bare arrays, so .toml manifests use [[apps]]
// tables:
//
//	[[apps]]
//	name = "Hello"
//	module = "demo.hello"
//
// # Usage
//
//	loader := manifest.NewLoader()
//	entries, err := loader.Load("apps.json")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// # Error Handling
//
// Every failure is returned as a *ManifestError wrapping one of the sentinel
// errors below, so callers can use errors.Is:
//   - ErrFileNotFound: manifest file does not exist
//   - ErrReadFailed: manifest file exists but cannot be read
//   - ErrInvalidFormat: content is not an array of objects
//   - ErrUnsupportedExt: unsupported file extension
//   - ErrMissingField: an entry has no name or no module
package manifest
