package launcher

import (
	"context"
	"fmt"
	"io"
	"slices"
)

//go:generate mockgen -destination=../mocks/host_mock.go -package=mocks . Host,Preselector

// Labels rendered by the launcher
const (
	PromptLabel = "Select an app from the dropdown list"
	EmptyLabel  = "No runnable apps found in the manifest"
	SelectTitle = "Select the app"
	ButtonLabel = "Run selected app"
)

// Host is the UI boundary the launcher renders through
type Host interface {
	// Label renders a line of text
	Label(text string)
	// Select renders a single-choice control and returns the chosen option
	Select(ctx context.Context, title string, options []string) (string, error)
	// Button renders a momentary action and reports whether it was activated
	Button(ctx context.Context, label string) (bool, error)
}

// Preselector is implemented by hosts that accept a suggested default selection
type Preselector interface {
	Preselect(option string)
}

// StaticHost is a non-interactive Host with a fixed selection and answer
type StaticHost struct {
	// Selection is returned by Select; empty picks the first option
	Selection string
	// Confirm is returned by Button
	Confirm bool
	// Out receives labels when set
	Out io.Writer
}

// Label writes text to Out
func (h *StaticHost) Label(text string) {
	if h.Out != nil {
		fmt.Fprintln(h.Out, text)
	}
}

// Select returns the configured selection if it is one of the options
func (h *StaticHost) Select(_ context.Context, _ string, options []string) (string, error) {
	if h.Selection == "" {
		if len(options) == 0 {
			return "", fmt.Errorf("%w: no options", ErrUnknownApp)
		}
		return options[0], nil
	}
	if !slices.Contains(options, h.Selection) {
		return "", fmt.Errorf("%w: %q (available: %v)", ErrUnknownApp, h.Selection, options)
	}
	return h.Selection, nil
}

// Button returns Confirm
func (h *StaticHost) Button(_ context.Context, _ string) (bool, error) {
	return h.Confirm, nil
}
