package apps

import (
	"io"
	"os"

	"github.com/quantmind-br/dashlaunch/internal/catalog"
	"github.com/quantmind-br/dashlaunch/pkg/version"
)

// Module paths of the built-in apps
const (
	PathHello   = "demo.hello"
	PathSysInfo = "demo.sysinfo"
	PathTheme   = "demo.theme"
	PathAbout   = "docs.about"
)

// StylePlain renders markdown without colors or terminal escapes
const StylePlain = "notty"

// Options contains options for the built-in apps
type Options struct {
	Out     io.Writer
	Version version.Info
	// MarkdownStyle is a glamour standard style ("dark", "light", "notty");
	// empty auto-detects from the terminal
	MarkdownStyle string
	Width         int
}

// NewCatalog returns a catalog holding every built-in app
func NewCatalog(opts Options) *catalog.Catalog {
	out := opts.Out
	if out == nil {
		out = os.Stdout
	}
	palette := DefaultPalette()

	c := catalog.New()
	c.MustRegister(PathHello, &Hello{out: out, palette: palette})
	c.MustRegister(PathSysInfo, &SysInfo{out: out, palette: palette, info: opts.Version})
	c.MustRegister(PathTheme, palette)
	c.MustRegister(PathAbout, &About{out: out, style: opts.MarkdownStyle, width: opts.Width})
	return c
}
