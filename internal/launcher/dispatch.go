package launcher

import (
	"fmt"
	"time"

	"github.com/quantmind-br/dashlaunch/internal/catalog"
	"github.com/quantmind-br/dashlaunch/internal/utils"
)

// Target is a resolved, runnable registry entry
type Target struct {
	Name   string
	Module string
	Runner catalog.Runner
}

// DispatcherOptions contains options for creating a dispatcher
type DispatcherOptions struct {
	Resolver Resolver
	Logger   *utils.Logger
	// OnDispatch is called after lookup succeeds and before Run
	OnDispatch func(name, module string)
}

// Dispatcher resolves registry entries and invokes their entry point
type Dispatcher struct {
	resolver   Resolver
	logger     *utils.Logger
	onDispatch func(name, module string)
}

// NewDispatcher creates a dispatcher
func NewDispatcher(opts DispatcherOptions) (*Dispatcher, error) {
	if opts.Resolver == nil {
		return nil, fmt.Errorf("resolver is required")
	}
	logger := opts.Logger
	if logger == nil {
		logger = utils.NewNopLogger()
	}
	return &Dispatcher{
		resolver:   opts.Resolver,
		logger:     logger.WithComponent("dispatcher"),
		onDispatch: opts.OnDispatch,
	}, nil
}

// Lookup finds name in the registry and resolves its module again
func (d *Dispatcher) Lookup(name string, reg *Registry) (Target, error) {
	module, ok := reg.Lookup(name)
	if !ok {
		return Target{}, fmt.Errorf("%w: %q", ErrUnknownApp, name)
	}

	m, err := d.resolver.Resolve(module)
	if err != nil {
		return Target{}, fmt.Errorf("app %q: %w", name, err)
	}

	runner, ok := m.(catalog.Runner)
	if !ok {
		return Target{}, fmt.Errorf("app %q (%s): %w", name, module, ErrNotRunnable)
	}

	return Target{Name: name, Module: module, Runner: runner}, nil
}

// Invoke calls the target's Run exactly once. Its error is returned as is.
func (d *Dispatcher) Invoke(t Target) error {
	log := d.logger.WithApp(t.Name).WithModule(t.Module)
	log.Info().Msg("Launching app")

	if d.onDispatch != nil {
		d.onDispatch(t.Name, t.Module)
	}

	start := time.Now()
	err := t.Runner.Run()
	if err != nil {
		log.Debug().Err(err).Dur("elapsed", time.Since(start)).Msg("App returned an error")
		return err
	}

	log.Debug().Dur("elapsed", time.Since(start)).Msg("App finished")
	return nil
}

// Dispatch looks up name and invokes its entry point
func (d *Dispatcher) Dispatch(name string, reg *Registry) error {
	t, err := d.Lookup(name, reg)
	if err != nil {
		return err
	}
	return d.Invoke(t)
}
