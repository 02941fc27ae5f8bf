package launcher

import (
	"github.com/quantmind-br/dashlaunch/internal/catalog"
	"github.com/quantmind-br/dashlaunch/internal/manifest"
	"github.com/quantmind-br/dashlaunch/internal/utils"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Resolver turns a dotted module path into a module
type Resolver interface {
	Resolve(path string) (catalog.Module, error)
}

// Registry maps app names to module paths, restricted to runnable modules.
// It is immutable once built.
type Registry struct {
	names   []string
	modules map[string]string
}

func newRegistry() *Registry {
	return &Registry{modules: make(map[string]string)}
}

func (r *Registry) add(name, module string) {
	if _, exists := r.modules[name]; !exists {
		r.names = append(r.names, name)
	}
	r.modules[name] = module
}

// Names returns app names in manifest order
func (r *Registry) Names() []string {
	out := make([]string, len(r.names))
	copy(out, r.names)
	return out
}

// SortedNames returns app names ordered by the collation rules of tag
func (r *Registry) SortedNames(tag language.Tag) []string {
	out := r.Names()
	collate.New(tag, collate.IgnoreCase).SortStrings(out)
	return out
}

// Lookup returns the module path registered for name
func (r *Registry) Lookup(name string) (string, bool) {
	m, ok := r.modules[name]
	return m, ok
}

// Len returns the number of runnable apps
func (r *Registry) Len() int {
	return len(r.names)
}

// EntryStatus is the outcome of resolving one manifest entry
type EntryStatus struct {
	Entry    manifest.Entry
	Runnable bool
	Err      error
}

// Resolved reports whether the module path resolved at all
func (s EntryStatus) Resolved() bool {
	return s.Err == nil
}

// Inspect resolves every entry and reports whether its module is runnable
func Inspect(entries []manifest.Entry, resolver Resolver) []EntryStatus {
	statuses := make([]EntryStatus, len(entries))
	for i, e := range entries {
		statuses[i].Entry = e
		m, err := resolver.Resolve(e.Module)
		if err != nil {
			statuses[i].Err = err
			continue
		}
		statuses[i].Runnable = catalog.HasEntryPoint(m)
	}
	return statuses
}

// Dedupe collapses entries sharing a name. The first occurrence keeps its
// position and the last occurrence supplies the module path.
func Dedupe(entries []manifest.Entry) []manifest.Entry {
	index := make(map[string]int, len(entries))
	out := make([]manifest.Entry, 0, len(entries))
	for _, e := range entries {
		if i, seen := index[e.Name]; seen {
			out[i].Module = e.Module
			continue
		}
		index[e.Name] = len(out)
		out = append(out, e)
	}
	return out
}

// BuildRegistry keeps the entries whose module resolves and exposes Run.
// It never fails: unresolvable entries are logged and skipped.
func BuildRegistry(entries []manifest.Entry, resolver Resolver, logger *utils.Logger) *Registry {
	if logger == nil {
		logger = utils.NewNopLogger()
	}
	log := logger.WithComponent("registry")

	unique := Dedupe(entries)
	if len(unique) != len(entries) {
		log.Warn().
			Int("entries", len(entries)).
			Int("unique", len(unique)).
			Msg("Duplicate app names in manifest, later entries win")
	}

	reg := newRegistry()
	for _, st := range Inspect(unique, resolver) {
		switch {
		case st.Err != nil:
			log.Warn().
				Err(st.Err).
				Str("app", st.Entry.Name).
				Str("module", st.Entry.Module).
				Msg("Skipping app: module could not be resolved")
		case !st.Runnable:
			log.Debug().
				Str("app", st.Entry.Name).
				Str("module", st.Entry.Module).
				Msg("Skipping app: module has no Run entry point")
		default:
			reg.add(st.Entry.Name, st.Entry.Module)
		}
	}

	log.Debug().Int("apps", reg.Len()).Msg("Registry built")
	return reg
}
