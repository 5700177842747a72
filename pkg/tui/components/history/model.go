// Package history is the "My Journey" view: the journal rendered as
// markdown in a scrolling viewport.
package history

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"

	"tableflip.dev/positivity/pkg/entry"
	"tableflip.dev/positivity/pkg/printers"
	"tableflip.dev/positivity/pkg/tui/theme"
	"tableflip.dev/positivity/pkg/tui/ui"
)

// Model scrolls through rendered entries.
type Model struct {
	th       theme.Theme
	viewport viewport.Model
	entries  []*entry.Entry
	err      error

	width  int
	height int
}

func New(th theme.Theme) *Model {
	vp := viewport.New(0, 0)
	vp.MouseWheelEnabled = true
	return &Model{th: th, viewport: vp}
}

func (m *Model) Init() tea.Cmd { return nil }

// Keys exposes the scrolling bindings for the help bar.
func (m *Model) Keys() []key.Binding {
	return []key.Binding{m.viewport.KeyMap.Up, m.viewport.KeyMap.Down, m.viewport.KeyMap.PageDown}
}

// SetEntries replaces the entries and re-renders them.
func (m *Model) SetEntries(entries []*entry.Entry) {
	m.entries = entries
	m.render()
	m.viewport.GotoTop()
}

func (m *Model) Update(msg tea.Msg) (ui.Component, tea.Cmd) {
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m *Model) SetSize(width, height int) {
	if m.width == width && m.height == height {
		return
	}
	m.width = width
	m.height = height
	m.viewport.Width = max(width, 1)
	m.viewport.Height = max(height, 1)
	m.render()
}

func (m *Model) View() string {
	if m.err != nil {
		return "history unavailable: " + m.err.Error()
	}
	return m.viewport.View()
}

func (m *Model) render() {
	style := "light"
	if m.th.Dark {
		style = "dark"
	}
	wrap := max(m.width-2, 20)
	renderer, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(wrap),
	)
	if err != nil {
		m.err = err
		return
	}
	content, err := renderer.Render(printers.HistoryMarkdown(m.entries))
	if err != nil {
		m.err = err
		return
	}
	m.err = nil
	m.viewport.SetContent(strings.TrimRight(content, "\n"))
}
