package tui

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/charmbracelet/huh"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quantmind-br/dashlaunch/internal/config"
	"github.com/quantmind-br/dashlaunch/internal/launcher"
)

func TestHost_Label(t *testing.T) {
	var buf bytes.Buffer
	h := NewHost(HostOptions{Output: &buf})

	h.Label(launcher.PromptLabel)

	assert.Contains(t, buf.String(), launcher.PromptLabel)
	assert.True(t, bytes.HasSuffix(buf.Bytes(), []byte("\n")))
}

func TestHost_InitialSelection(t *testing.T) {
	options := []string{"Hello", "System Info", "About"}

	tests := []struct {
		name      string
		preselect string
		options   []string
		expected  string
	}{
		{name: "first option by default", options: options, expected: "Hello"},
		{name: "known preselect", preselect: "About", options: options, expected: "About"},
		{name: "unknown preselect ignored", preselect: "Gone", options: options, expected: "Hello"},
		{name: "no options", preselect: "About", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHost(HostOptions{Output: &bytes.Buffer{}})
			if tt.preselect != "" {
				h.Preselect(tt.preselect)
			}
			assert.Equal(t, tt.expected, h.initialSelection(tt.options))
		})
	}
}

func TestMapFormError(t *testing.T) {
	other := errors.New("terminal gone")

	tests := []struct {
		name    string
		err     error
		aborted bool
	}{
		{name: "user abort", err: huh.ErrUserAborted, aborted: true},
		{name: "context cancelled", err: context.Canceled, aborted: true},
		{name: "deadline", err: context.DeadlineExceeded, aborted: true},
		{name: "other error", err: other},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := mapFormError(tt.err)
			require.Error(t, err)
			assert.Equal(t, tt.aborted, errors.Is(err, launcher.ErrAborted))
		})
	}

	assert.NoError(t, mapFormError(nil))
	assert.ErrorIs(t, mapFormError(other), other)
}

func TestHost_Configure(t *testing.T) {
	value := "A"
	form := newSelectForm(launcher.SelectTitle, []string{"A", "B"}, &value)

	h := NewHost(HostOptions{
		Theme:      "dracula",
		Accessible: true,
		AltScreen:  true,
		Input:      &bytes.Buffer{},
		Output:     &bytes.Buffer{},
	})

	assert.NotNil(t, h.configure(form))
}

func TestTheme(t *testing.T) {
	for _, name := range config.Themes {
		t.Run(name, func(t *testing.T) {
			assert.NotNil(t, Theme(name))
		})
	}

	assert.NotNil(t, Theme("unknown"))
}
