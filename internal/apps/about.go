package apps

import (
	_ "embed"
	"fmt"
	"io"

	"github.com/charmbracelet/glamour"
)

//go:embed content/about.md
var aboutMarkdown string

// About renders the bundled documentation as terminal markdown
type About struct {
	out   io.Writer
	style string
	width int
}

func (a *About) Run() error {
	rendered, err := renderMarkdown(aboutMarkdown, a.style, a.width)
	if err != nil {
		return fmt.Errorf("failed to render about page: %w", err)
	}
	_, err = fmt.Fprint(a.out, rendered)
	return err
}

// renderMarkdown renders content with a glamour standard style, or
// auto-detects one when style is empty
func renderMarkdown(content, style string, width int) (string, error) {
	var opts []glamour.TermRendererOption
	if style != "" {
		opts = append(opts, glamour.WithStandardStyle(style))
	} else {
		opts = append(opts, glamour.WithAutoStyle())
	}
	if width > 0 {
		opts = append(opts, glamour.WithWordWrap(width))
	}

	renderer, err := glamour.NewTermRenderer(opts...)
	if err != nil {
		return "", err
	}
	return renderer.Render(content)
}
