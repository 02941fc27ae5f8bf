package tui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/quantmind-br/dashlaunch/internal/launcher"
)

var (
	_ launcher.Host        = (*Host)(nil)
	_ launcher.Preselector = (*Host)(nil)
)

// HostOptions contains options for the interactive host
type HostOptions struct {
	Theme      string
	Accessible bool
	AltScreen  bool
	Input      io.Reader
	Output     io.Writer
}

// Host renders launcher prompts as huh forms
type Host struct {
	opts      HostOptions
	out       io.Writer
	preselect string
}

// NewHost creates an interactive host
func NewHost(opts HostOptions) *Host {
	out := opts.Output
	if out == nil {
		out = os.Stdout
	}
	return &Host{opts: opts, out: out}
}

// Label prints a styled line
func (h *Host) Label(text string) {
	fmt.Fprintln(h.out, LabelStyle.Render(text))
}

// Preselect sets the option highlighted when the next Select opens
func (h *Host) Preselect(option string) {
	h.preselect = option
}

// Select shows a single-choice list and returns the chosen option
func (h *Host) Select(ctx context.Context, title string, options []string) (string, error) {
	value := h.initialSelection(options)
	if err := h.run(ctx, newSelectForm(title, options, &value)); err != nil {
		return "", err
	}
	return value, nil
}

// Button asks for confirmation of the current selection
func (h *Host) Button(ctx context.Context, label string) (bool, error) {
	confirmed := true
	if err := h.run(ctx, newConfirmForm(label, &confirmed)); err != nil {
		return false, err
	}
	return confirmed, nil
}

func (h *Host) initialSelection(options []string) string {
	if h.preselect != "" && slices.Contains(options, h.preselect) {
		return h.preselect
	}
	if len(options) > 0 {
		return options[0]
	}
	return ""
}

func (h *Host) run(ctx context.Context, form *huh.Form) error {
	form = h.configure(form)
	return mapFormError(form.RunWithContext(ctx))
}

func (h *Host) configure(form *huh.Form) *huh.Form {
	form = form.
		WithTheme(Theme(h.opts.Theme)).
		WithAccessible(h.opts.Accessible).
		WithOutput(h.out)
	if h.opts.Input != nil {
		form = form.WithInput(h.opts.Input)
	}
	if h.opts.AltScreen && !h.opts.Accessible {
		form = form.WithProgramOptions(tea.WithAltScreen())
	}
	return form
}

// mapFormError turns user and context cancellation into launcher.ErrAborted
func mapFormError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, huh.ErrUserAborted),
		errors.Is(err, context.Canceled),
		errors.Is(err, context.DeadlineExceeded):
		return fmt.Errorf("%w: %v", launcher.ErrAborted, err)
	default:
		return err
	}
}
