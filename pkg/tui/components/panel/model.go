// Package panel renders framed, titled boxes for the TUI.
package panel

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"tableflip.dev/positivity/pkg/tui/theme"
)

// Model renders a titled panel with body lines.
type Model struct {
	title      string
	lines      []string
	width      int
	frameStyle lipgloss.Style
	titleStyle lipgloss.Style
	bodyStyle  lipgloss.Style
}

// New returns a panel styled by th.
func New(th theme.PanelTheme) Model {
	return Model{
		frameStyle: th.Frame,
		titleStyle: th.Title,
		bodyStyle:  th.Body,
	}
}

// SetContent updates the panel title and body lines.
func (m *Model) SetContent(title string, lines []string) {
	m.title = title
	m.lines = lines
}

// SetWidth fixes the outer width; zero sizes the panel to its content.
func (m *Model) SetWidth(width int) {
	m.width = width
}

// Reset clears panel content.
func (m *Model) Reset() {
	m.title = ""
	m.lines = nil
}

// View returns the rendered panel and its height in lines.
func (m Model) View() (string, int) {
	var content []string
	if m.title != "" {
		content = append(content, m.titleStyle.Render(m.title))
	}
	for _, line := range m.lines {
		content = append(content, m.bodyStyle.Render(line))
	}
	frame := m.frameStyle
	if m.width > 0 {
		frame = frame.Width(max(m.width-frame.GetHorizontalBorderSize(), 1))
	}
	view := frame.Render(strings.Join(content, "\n"))
	return view, lipgloss.Height(view)
}
