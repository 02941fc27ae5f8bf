// Package history persists which apps were launched, and when, in a
// BadgerDB store under the user's config directory.
package history
