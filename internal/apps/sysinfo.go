package apps

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/quantmind-br/dashlaunch/pkg/version"
)

// SysInfo prints build and runtime information
type SysInfo struct {
	out     io.Writer
	palette *Palette
	info    version.Info
}

func (s *SysInfo) Run() error {
	rows := make([]string, 0, len(s.info.Fields()))
	for _, f := range s.info.Fields() {
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top,
			s.palette.Key.Render(f.Label),
			s.palette.Value.Render(f.Value),
		))
	}

	body := s.palette.Title.Render("System") + "\n\n" + strings.Join(rows, "\n")
	_, err := fmt.Fprintln(s.out, s.palette.Box.Render(body))
	return err
}
