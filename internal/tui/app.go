package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/quantmind-br/dashlaunch/internal/config"
)

type screen int

const (
	screenMenu screen = iota
	screenForm
	screenUnsaved
	screenDone
	screenFailed
)

const editorTitle = "dashlaunch configuration"

// Options contains options for the configuration editor
type Options struct {
	Config     *config.Config
	SaveFunc   func(*config.Config) error
	Accessible bool
}

// Model is the bubbletea model of the configuration editor.
// Category forms edit a draft copy of the values; the draft replaces
// the values only when its form completes.
type Model struct {
	screen     screen
	values     *ConfigValues
	draft      *ConfigValues
	form       *huh.Form
	cursor     int
	dirty      bool
	err        error
	save       func(*config.Config) error
	accessible bool
}

// NewModel creates an editor seeded from opts.Config, or defaults
func NewModel(opts Options) Model {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.Default()
	}
	return Model{
		screen:     screenMenu,
		values:     FromConfig(cfg),
		save:       opts.SaveFunc,
		accessible: opts.Accessible,
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if k, ok := msg.(tea.KeyMsg); ok {
		switch m.screen {
		case screenMenu:
			return m.menuKey(k)
		case screenUnsaved:
			return m.unsavedKey(k)
		case screenDone, screenFailed:
			return m, tea.Quit
		case screenForm:
			if k.String() == "esc" {
				return m.closeForm(false), nil
			}
		}
	}

	if m.screen == screenForm {
		return m.stepForm(msg)
	}
	return m, nil
}

// menuKey handles the category list; the row after the last category saves
func (m Model) menuKey(k tea.KeyMsg) (tea.Model, tea.Cmd) {
	last := len(Categories)

	switch k.String() {
	case "up", "k":
		m.cursor = max(m.cursor-1, 0)
	case "down", "j":
		m.cursor = min(m.cursor+1, last)
	case "s":
		return m.commit()
	case "enter":
		if m.cursor == last {
			return m.commit()
		}
		return m.openForm(Categories[m.cursor].ID)
	case "q", "esc", "ctrl+c":
		if m.dirty {
			m.screen = screenUnsaved
			return m, nil
		}
		return m, tea.Quit
	}
	return m, nil
}

func (m Model) unsavedKey(k tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch strings.ToLower(k.String()) {
	case "y":
		return m.commit()
	case "n":
		return m, tea.Quit
	case "c", "esc":
		m.screen = screenMenu
	}
	return m, nil
}

func (m Model) openForm(category string) (tea.Model, tea.Cmd) {
	draft := *m.values
	form := GetFormForCategory(category, &draft)
	if form == nil {
		return m, nil
	}
	if m.accessible {
		form = form.WithAccessible(true)
	}
	m.draft = &draft
	m.form = form
	m.screen = screenForm
	return m, form.Init()
}

func (m Model) stepForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.form.Update(msg)
	if f, ok := next.(*huh.Form); ok {
		m.form = f
	}
	switch m.form.State {
	case huh.StateCompleted:
		return m.closeForm(true), nil
	case huh.StateAborted:
		return m.closeForm(false), nil
	}
	return m, cmd
}

func (m Model) closeForm(keep bool) Model {
	if keep && m.draft != nil && *m.draft != *m.values {
		m.values = m.draft
		m.dirty = true
	}
	m.draft = nil
	m.form = nil
	m.screen = screenMenu
	return m
}

// commit validates the values and hands them to the save function
func (m Model) commit() (tea.Model, tea.Cmd) {
	cfg, err := m.values.ToConfig()
	if err == nil && m.save != nil {
		err = m.save(cfg)
	}
	if err != nil {
		m.err = err
		m.screen = screenFailed
		return m, nil
	}
	m.dirty = false
	m.screen = screenDone
	return m, nil
}

func (m Model) View() string {
	var b strings.Builder
	b.WriteString(TitleStyle.Render(editorTitle))
	b.WriteString("\n\n")

	switch m.screen {
	case screenMenu:
		b.WriteString(m.menuView())
	case screenForm:
		b.WriteString(m.form.View())
	case screenUnsaved:
		b.WriteString(unsavedView())
	case screenDone:
		b.WriteString(SuccessStyle.Render("Configuration saved."))
		b.WriteString("\n\nPress any key to exit.")
	case screenFailed:
		b.WriteString(ErrorStyle.Render(fmt.Sprintf("Could not save: %v", m.err)))
		b.WriteString("\n\nPress any key to exit.")
	}
	return b.String()
}

func (m Model) menuView() string {
	var b strings.Builder

	row := func(i int, text, detail string) {
		style, cursor := UnselectedStyle, "  "
		if i == m.cursor {
			style, cursor = SelectedStyle, "> "
		}
		b.WriteString(style.Render(cursor + text))
		if detail != "" {
			b.WriteString(DescriptionStyle.Render("  " + detail))
		}
		b.WriteString("\n")
	}

	for i, cat := range Categories {
		detail := m.summary(cat.ID)
		if i == m.cursor {
			detail = cat.Description
		}
		row(i, fmt.Sprintf("%-10s", cat.Name), detail)
	}

	b.WriteString("\n")
	save := "Save Configuration"
	if m.dirty {
		save += " *"
	}
	row(len(Categories), save, "")

	b.WriteString(HelpStyle.Render("↑/↓ move • enter edit • s save • q quit"))
	return b.String()
}

// summary is the one-line current value shown beside a category
func (m Model) summary(category string) string {
	v := m.values
	switch category {
	case "manifest":
		return v.ManifestPath
	case "interface":
		return fmt.Sprintf("theme %s, sort %s", v.Theme, v.Sort)
	case "history":
		if !v.HistoryEnabled {
			return "off"
		}
		return "ttl " + v.HistoryTTL
	case "logging":
		return v.LogLevel + "/" + v.LogFormat
	}
	return ""
}

func unsavedView() string {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(warnColor).
		Padding(1, 2).
		Render("Unsaved changes.\n\nSave before quitting?\n\n[y] save  [n] discard  [c] back")
}

// Err returns the error that ended the session, if any
func (m Model) Err() error {
	return m.err
}

// Saved reports whether the configuration was written
func (m Model) Saved() bool {
	return m.screen == screenDone
}

// Run starts the configuration editor and blocks until it exits
func Run(opts Options) error {
	var progOpts []tea.ProgramOption
	if !opts.Accessible {
		progOpts = append(progOpts, tea.WithAltScreen())
	}

	final, err := tea.NewProgram(NewModel(opts), progOpts...).Run()
	if err != nil {
		return err
	}
	if m, ok := final.(Model); ok {
		return m.Err()
	}
	return nil
}
