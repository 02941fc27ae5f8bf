package apps

import "github.com/charmbracelet/lipgloss"

// Palette is the shared look of the built-in apps. It has no entry point,
// so a manifest entry pointing at it is never offered.
type Palette struct {
	Title lipgloss.Style
	Key   lipgloss.Style
	Value lipgloss.Style
	Box   lipgloss.Style
}

// DefaultPalette returns the palette used by the built-in apps
func DefaultPalette() *Palette {
	accent := lipgloss.AdaptiveColor{Light: "#5A56E0", Dark: "#7571F9"}
	muted := lipgloss.AdaptiveColor{Light: "#9B9B9B", Dark: "#5C5C5C"}

	return &Palette{
		Title: lipgloss.NewStyle().Bold(true).Foreground(accent),
		Key:   lipgloss.NewStyle().Foreground(muted).Width(10),
		Value: lipgloss.NewStyle().Bold(true),
		Box: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(accent).
			Padding(1, 2),
	}
}
