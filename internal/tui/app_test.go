package tui

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quantmind-br/dashlaunch/internal/config"
)

func key(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func press(t *testing.T, m Model, keys ...string) Model {
	t.Helper()
	var model tea.Model = m
	for _, k := range keys {
		model, _ = model.Update(key(k))
	}
	out, ok := model.(Model)
	require.True(t, ok)
	return out
}

func TestModel_CursorStaysInRange(t *testing.T) {
	m := NewModel(Options{Config: defaultConfig(t)})

	m = press(t, m, "up")
	assert.Equal(t, 0, m.cursor)

	m = press(t, m, "down", "down", "j")
	assert.Equal(t, 3, m.cursor)

	m = press(t, m, "down", "down", "down")
	assert.Equal(t, len(Categories), m.cursor)

	m = press(t, m, "up", "k")
	assert.Equal(t, len(Categories)-2, m.cursor)
}

func TestModel_EscapeDiscardsDraft(t *testing.T) {
	m := NewModel(Options{Config: defaultConfig(t), Accessible: true})

	m = press(t, m, "enter")
	require.Equal(t, screenForm, m.screen)
	require.NotNil(t, m.form)
	require.NotNil(t, m.draft)

	m.draft.ManifestPath = "other.yaml"
	m = press(t, m, "esc")

	assert.Equal(t, screenMenu, m.screen)
	assert.Nil(t, m.draft)
	assert.Equal(t, config.DefaultManifestPath, m.values.ManifestPath)
	assert.False(t, m.dirty)
}

func TestModel_CloseFormKeepsChangedDraft(t *testing.T) {
	m := NewModel(Options{Config: defaultConfig(t), Accessible: true})
	m = press(t, m, "enter")
	require.NotNil(t, m.draft)

	m.draft.ManifestPath = "other.yaml"
	m = m.closeForm(true)

	assert.Equal(t, "other.yaml", m.values.ManifestPath)
	assert.True(t, m.dirty)
	assert.Contains(t, m.View(), "Save Configuration *")
}

func TestModel_CloseFormUnchangedIsClean(t *testing.T) {
	m := NewModel(Options{Config: defaultConfig(t), Accessible: true})
	m = press(t, m, "enter")

	m = m.closeForm(true)

	assert.False(t, m.dirty)
	assert.Equal(t, screenMenu, m.screen)
}

func TestModel_Save(t *testing.T) {
	var saved *config.Config
	m := NewModel(Options{
		Config: defaultConfig(t),
		SaveFunc: func(c *config.Config) error {
			saved = c
			return nil
		},
	})

	m = press(t, m, "s")

	require.NotNil(t, saved)
	assert.Equal(t, config.DefaultManifestPath, saved.Manifest.Path)
	assert.True(t, m.Saved())
	assert.NoError(t, m.Err())
	assert.Contains(t, m.View(), "Configuration saved")
}

func TestModel_SaveRowSaves(t *testing.T) {
	called := false
	m := NewModel(Options{
		Config:   defaultConfig(t),
		SaveFunc: func(*config.Config) error { called = true; return nil },
	})

	m = press(t, m, "down", "down", "down", "down", "enter")

	assert.True(t, called)
	assert.True(t, m.Saved())
}

func TestModel_SaveError(t *testing.T) {
	m := NewModel(Options{
		Config:   defaultConfig(t),
		SaveFunc: func(*config.Config) error { return errors.New("disk full") },
	})

	m = press(t, m, "s")

	assert.False(t, m.Saved())
	assert.EqualError(t, m.Err(), "disk full")
	assert.Contains(t, m.View(), "disk full")
}

func TestModel_InvalidValuesAreNotSaved(t *testing.T) {
	called := false
	m := NewModel(Options{
		Config:   defaultConfig(t),
		SaveFunc: func(*config.Config) error { called = true; return nil },
	})
	m.values.HistoryTTL = "soon"

	m = press(t, m, "s")

	assert.False(t, called)
	assert.Error(t, m.Err())
	assert.Equal(t, screenFailed, m.screen)
}

func TestModel_QuitWhenDirtyAsksToConfirm(t *testing.T) {
	m := NewModel(Options{Config: defaultConfig(t)})
	m.dirty = true

	m = press(t, m, "q")
	assert.Equal(t, screenUnsaved, m.screen)
	assert.Contains(t, m.View(), "Unsaved changes")

	m = press(t, m, "c")
	assert.Equal(t, screenMenu, m.screen)
}

func TestModel_QuitWhenCleanExits(t *testing.T) {
	m := NewModel(Options{Config: defaultConfig(t)})

	_, cmd := m.Update(key("q"))

	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestModel_View(t *testing.T) {
	m := NewModel(Options{Config: defaultConfig(t)})

	view := m.View()

	assert.Contains(t, view, "dashlaunch configuration")
	for _, name := range GetCategoryNames() {
		assert.Contains(t, view, name)
	}
	assert.Contains(t, view, "Save Configuration")
	assert.Contains(t, view, Categories[0].Description)
	assert.Contains(t, view, "theme "+m.values.Theme)
}
