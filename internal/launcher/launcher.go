package launcher

import (
	"context"
	"errors"
	"fmt"

	"github.com/quantmind-br/dashlaunch/internal/utils"
)

// Options contains options for creating a launcher
type Options struct {
	Registry   *Registry
	Dispatcher *Dispatcher
	Logger     *utils.Logger
	// Names overrides the order of the selection list. It must hold
	// registry keys only; nil means manifest order.
	Names []string
	// Default is suggested to hosts that implement Preselector
	Default string
}

// Launcher drives one selection-and-dispatch pass over a Host
type Launcher struct {
	registry   *Registry
	dispatcher *Dispatcher
	logger     *utils.Logger
	names      []string
	defaultApp string
	state      State
}

// New creates a launcher
func New(opts Options) (*Launcher, error) {
	if opts.Registry == nil {
		return nil, fmt.Errorf("registry is required")
	}
	if opts.Dispatcher == nil {
		return nil, fmt.Errorf("dispatcher is required")
	}

	names := opts.Names
	if names == nil {
		names = opts.Registry.Names()
	}
	for _, n := range names {
		if _, ok := opts.Registry.Lookup(n); !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownApp, n)
		}
	}

	logger := opts.Logger
	if logger == nil {
		logger = utils.NewNopLogger()
	}

	return &Launcher{
		registry:   opts.Registry,
		dispatcher: opts.Dispatcher,
		logger:     logger.WithComponent("launcher"),
		names:      names,
		defaultApp: opts.Default,
		state:      Idle,
	}, nil
}

// State returns the state reached by the last render pass
func (l *Launcher) State() State {
	return l.state
}

// Render performs one pass: label, selector, action, and at most one dispatch.
// A user abort ends the pass as Idle without error. An error from the
// dispatched app is returned with the state already Dispatched.
func (l *Launcher) Render(ctx context.Context, host Host) (State, error) {
	l.state = Idle

	host.Label(PromptLabel)

	if len(l.names) == 0 {
		host.Label(EmptyLabel)
		return Idle, nil
	}

	if p, ok := host.(Preselector); ok && l.defaultApp != "" {
		if _, known := l.registry.Lookup(l.defaultApp); known {
			p.Preselect(l.defaultApp)
		}
	}

	selected, err := host.Select(ctx, SelectTitle, l.names)
	if err != nil {
		return l.idleOn(err)
	}

	pressed, err := host.Button(ctx, ButtonLabel)
	if err != nil {
		return l.idleOn(err)
	}
	if !pressed {
		l.logger.Debug().Str("app", selected).Msg("Selection not confirmed")
		return Idle, nil
	}

	target, err := l.dispatcher.Lookup(selected, l.registry)
	if err != nil {
		return Idle, err
	}

	l.state = Dispatched
	return Dispatched, l.dispatcher.Invoke(target)
}

// Serve renders once, or keeps rendering while loop is set and the
// previous pass dispatched an app.
func (l *Launcher) Serve(ctx context.Context, host Host, loop bool) error {
	for {
		state, err := l.Render(ctx, host)
		if err != nil {
			return err
		}
		if !loop || state != Dispatched {
			return nil
		}
		if ctx.Err() != nil {
			return nil
		}
	}
}

func (l *Launcher) idleOn(err error) (State, error) {
	if errors.Is(err, ErrAborted) {
		l.logger.Debug().Msg("Prompt aborted")
		return Idle, nil
	}
	return Idle, err
}
