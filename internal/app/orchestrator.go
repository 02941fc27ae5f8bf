package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/quantmind-br/dashlaunch/internal/apps"
	"github.com/quantmind-br/dashlaunch/internal/catalog"
	"github.com/quantmind-br/dashlaunch/internal/config"
	"github.com/quantmind-br/dashlaunch/internal/history"
	"github.com/quantmind-br/dashlaunch/internal/launcher"
	"github.com/quantmind-br/dashlaunch/internal/manifest"
	"github.com/quantmind-br/dashlaunch/internal/utils"
	"github.com/quantmind-br/dashlaunch/pkg/version"
)

// Orchestrator wires the manifest, catalog, registry, dispatcher, and
// history for one process run
type Orchestrator struct {
	config     *config.Config
	logger     *utils.Logger
	resolver   launcher.Resolver
	entries    []manifest.Entry
	registry   *launcher.Registry
	dispatcher *launcher.Dispatcher
	history    *history.Store
}

// OrchestratorOptions contains options for creating an orchestrator
type OrchestratorOptions struct {
	Config    *config.Config
	Verbose   bool
	NoHistory bool
	// Resolver overrides the built-in app catalog
	Resolver launcher.Resolver
	// Out receives app output; defaults to stdout
	Out io.Writer
	// LogOutput receives log lines; defaults to stderr
	LogOutput io.Writer
	// HistoryInMemory keeps history out of the filesystem
	HistoryInMemory bool
}

// NewOrchestrator loads the manifest and builds the registry. A manifest
// that cannot be loaded is fatal; entries that do not resolve are skipped.
func NewOrchestrator(opts OrchestratorOptions) (*Orchestrator, error) {
	cfg := opts.Config
	if cfg == nil {
		return nil, fmt.Errorf("config is required")
	}

	logger := utils.NewLogger(utils.LoggerOptions{
		Level:   cfg.Logging.Level,
		Format:  cfg.Logging.Format,
		Output:  opts.LogOutput,
		Verbose: opts.Verbose,
	})

	resolver := opts.Resolver
	if resolver == nil {
		out := opts.Out
		if out == nil {
			out = os.Stdout
		}
		appOpts := apps.Options{Out: out, Version: version.Get()}
		if utils.PlainOutput(out) {
			appOpts.MarkdownStyle = apps.StylePlain
		}
		resolver = apps.NewCatalog(appOpts)
	}

	path := utils.ExpandPath(cfg.Manifest.Path)
	entries, err := manifest.NewLoader().Load(path)
	if err != nil {
		return nil, err
	}
	logger.Debug().Str("manifest", path).Int("entries", len(entries)).Msg("Manifest loaded")

	o := &Orchestrator{
		config:   cfg,
		logger:   logger,
		resolver: resolver,
		entries:  entries,
		registry: launcher.BuildRegistry(entries, resolver, logger),
	}

	if cfg.History.Enabled && !opts.NoHistory {
		store, err := history.Open(history.Options{
			Directory: cfg.History.Directory,
			InMemory:  opts.HistoryInMemory,
			TTL:       cfg.History.TTL,
		})
		if err != nil {
			logger.Warn().Err(err).Msg("Launch history unavailable")
		} else {
			o.history = store
		}
	}

	o.dispatcher, err = launcher.NewDispatcher(launcher.DispatcherOptions{
		Resolver:   resolver,
		Logger:     logger,
		OnDispatch: o.recordLaunch,
	})
	if err != nil {
		o.Close()
		return nil, err
	}

	return o, nil
}

func (o *Orchestrator) recordLaunch(name, module string) {
	if o.history == nil {
		return
	}
	if _, err := o.history.Record(context.Background(), name, module); err != nil {
		o.logger.Warn().Err(err).Str("app", name).Msg("Failed to record launch")
	}
}

// Registry returns the runnable apps
func (o *Orchestrator) Registry() *launcher.Registry {
	return o.registry
}

// Entries returns the manifest entries as loaded
func (o *Orchestrator) Entries() []manifest.Entry {
	return o.entries
}

// Inspect reports how every manifest entry resolved
func (o *Orchestrator) Inspect() []launcher.EntryStatus {
	return launcher.Inspect(o.entries, o.resolver)
}

// History returns the launch history, or nil when disabled
func (o *Orchestrator) History() *history.Store {
	return o.history
}

// Logger returns the orchestrator's logger
func (o *Orchestrator) Logger() *utils.Logger {
	return o.logger
}

// Names returns the selection list in the configured order
func (o *Orchestrator) Names() []string {
	if o.config.UI.Sort == config.SortName {
		return o.registry.SortedNames(o.config.LocaleTag())
	}
	return o.registry.Names()
}

// Catalog returns the built-in catalog when no resolver override is used
func (o *Orchestrator) Catalog() (*catalog.Catalog, bool) {
	c, ok := o.resolver.(*catalog.Catalog)
	return c, ok
}

// NewLauncher creates a launcher over the registry, suggesting the last
// launched app as the default selection
func (o *Orchestrator) NewLauncher(ctx context.Context) (*launcher.Launcher, error) {
	return launcher.New(launcher.Options{
		Registry:   o.registry,
		Dispatcher: o.dispatcher,
		Logger:     o.logger,
		Names:      o.Names(),
		Default:    o.lastLaunched(ctx),
	})
}

func (o *Orchestrator) lastLaunched(ctx context.Context) string {
	if o.history == nil {
		return ""
	}
	rec, err := o.history.Last(ctx)
	if err != nil {
		if !errors.Is(err, history.ErrNotFound) {
			o.logger.Debug().Err(err).Msg("Could not read last launch")
		}
		return ""
	}
	return rec.Name
}

// Serve runs the launcher over host until the user stops
func (o *Orchestrator) Serve(ctx context.Context, host launcher.Host, loop bool) error {
	l, err := o.NewLauncher(ctx)
	if err != nil {
		return err
	}
	return l.Serve(ctx, host, loop)
}

// RunApp dispatches name without prompting
func (o *Orchestrator) RunApp(ctx context.Context, name string, labels io.Writer) error {
	l, err := o.NewLauncher(ctx)
	if err != nil {
		return err
	}
	state, err := l.Render(ctx, &launcher.StaticHost{Selection: name, Confirm: true, Out: labels})
	if err != nil {
		return err
	}
	if state != launcher.Dispatched {
		return fmt.Errorf("%w: %q", launcher.ErrUnknownApp, name)
	}
	return nil
}

// Close releases all resources held by the orchestrator
func (o *Orchestrator) Close() error {
	if o.history != nil {
		return o.history.Close()
	}
	return nil
}
