package catalog

import (
	"fmt"
	"sort"
	"strings"
)

// Catalog is a tree of modules addressable by dotted path
type Catalog struct {
	root *Package
}

// New creates an empty catalog
func New() *Catalog {
	return &Catalog{root: NewPackage("")}
}

// Register adds m at the given dotted path, creating intermediate packages
func (c *Catalog) Register(path string, m Module) error {
	segments, err := split(path)
	if err != nil {
		return err
	}

	pkg := c.root
	for _, seg := range segments[:len(segments)-1] {
		existing, ok := pkg.Member(seg)
		if !ok {
			child := NewPackage(seg)
			pkg.set(seg, child)
			pkg = child
			continue
		}
		child, isPkg := existing.(*Package)
		if !isPkg {
			return fmt.Errorf("register %q: %w: %s", path, ErrNotNamespace, seg)
		}
		pkg = child
	}

	last := segments[len(segments)-1]
	if _, exists := pkg.Member(last); exists {
		return fmt.Errorf("register %q: %w", path, ErrAlreadyRegistered)
	}
	pkg.set(last, m)
	return nil
}

// MustRegister is like Register but panics on error.
// Intended for wiring the built-in catalog at startup.
func (c *Catalog) MustRegister(path string, m Module) {
	if err := c.Register(path, m); err != nil {
		panic(err)
	}
}

// Resolve returns the module at the given dotted path
func (c *Catalog) Resolve(path string) (Module, error) {
	segments, err := split(path)
	if err != nil {
		return nil, err
	}

	current, ok := c.root.Member(segments[0])
	if !ok {
		return nil, NewResolutionError(path, segments[0], ErrModuleNotFound)
	}

	for _, seg := range segments[1:] {
		ns, isNS := current.(Namespace)
		if !isNS {
			return nil, NewResolutionError(path, seg, ErrMemberNotFound)
		}
		current, ok = ns.Member(seg)
		if !ok {
			return nil, NewResolutionError(path, seg, ErrMemberNotFound)
		}
	}
	return current, nil
}

// Paths returns every registered leaf path, sorted
func (c *Catalog) Paths() []string {
	var paths []string
	var walk func(prefix string, pkg *Package)
	walk = func(prefix string, pkg *Package) {
		for _, name := range pkg.Members() {
			m, _ := pkg.Member(name)
			full := name
			if prefix != "" {
				full = prefix + "." + name
			}
			if child, ok := m.(*Package); ok {
				walk(full, child)
				continue
			}
			paths = append(paths, full)
		}
	}
	walk("", c.root)
	sort.Strings(paths)
	return paths
}

func split(path string) ([]string, error) {
	if strings.TrimSpace(path) == "" {
		return nil, NewResolutionError(path, "", ErrInvalidPath)
	}
	segments := strings.Split(path, ".")
	for _, seg := range segments {
		if seg == "" {
			return nil, NewResolutionError(path, "", ErrInvalidPath)
		}
	}
	return segments, nil
}
