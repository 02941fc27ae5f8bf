package catalog

import "sort"

// Module is any unit that can be registered in the catalog
type Module any

//go:generate mockgen -destination=../mocks/runner_mock.go -package=mocks . Runner

// Runner is the entry point a module exposes to be launchable.
// Run takes no arguments; its error is passed through untouched.
type Runner interface {
	Run() error
}

// RunnerFunc adapts a plain function to Runner
type RunnerFunc func() error

// Run calls f()
func (f RunnerFunc) Run() error {
	return f()
}

// Namespace is a module with named members that a dotted path can descend into
type Namespace interface {
	Member(name string) (Module, bool)
}

// HasEntryPoint reports whether m exposes a Run entry point
func HasEntryPoint(m Module) bool {
	_, ok := m.(Runner)
	return ok
}

// Package is a map-backed Namespace
type Package struct {
	name    string
	members map[string]Module
}

// NewPackage creates an empty package
func NewPackage(name string) *Package {
	return &Package{
		name:    name,
		members: make(map[string]Module),
	}
}

// Name returns the package's own segment name
func (p *Package) Name() string {
	return p.name
}

// Member returns the named member
func (p *Package) Member(name string) (Module, bool) {
	m, ok := p.members[name]
	return m, ok
}

// Members returns member names sorted alphabetically
func (p *Package) Members() []string {
	names := make([]string, 0, len(p.members))
	for name := range p.members {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (p *Package) set(name string, m Module) {
	p.members[name] = m
}
