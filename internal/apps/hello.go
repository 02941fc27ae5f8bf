package apps

import (
	"fmt"
	"io"
)

// Hello prints a greeting box
type Hello struct {
	out     io.Writer
	palette *Palette
}

func (h *Hello) Run() error {
	body := h.palette.Title.Render("Hello from dashlaunch") + "\n\n" +
		"Add your own apps to the catalog and list them in apps.json."
	_, err := fmt.Fprintln(h.out, h.palette.Box.Render(body))
	return err
}
