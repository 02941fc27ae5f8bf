package utils

import (
	"os"

	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

type fder interface {
	Fd() uintptr
}

// IsTerminal reports whether v is a file attached to a terminal
func IsTerminal(v any) bool {
	f, ok := v.(fder)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// PlainOutput reports whether output written to w should carry no styling:
// NO_COLOR is set, w is not a terminal, or the terminal has no colors
func PlainOutput(w any) bool {
	if os.Getenv("NO_COLOR") != "" {
		return true
	}
	if !IsTerminal(w) {
		return true
	}
	return termenv.ColorProfile() == termenv.Ascii
}
