package manifest

import "fmt"

// Entry is a single manifest record
type Entry struct {
	Name   string `yaml:"name" json:"name" toml:"name"`
	Module string `yaml:"module" json:"module" toml:"module"`
}

// Validate checks that both fields are present
func (e Entry) Validate() error {
	if e.Name == "" {
		return fmt.Errorf("%w: name", ErrMissingField)
	}
	if e.Module == "" {
		return fmt.Errorf("%w: module (entry %q)", ErrMissingField, e.Name)
	}
	return nil
}

// Names returns the entry names in manifest order
func Names(entries []Entry) []string {
	names := make([]string, len(entries))
	for i, e := range entries {
		names[i] = e.Name
	}
	return names
}
