// Package sidebar renders navigation, the streak and the daily wisdom.
package sidebar

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"

	"tableflip.dev/positivity/pkg/app"
	"tableflip.dev/positivity/pkg/controller"
	"tableflip.dev/positivity/pkg/tui/components/panel"
	"tableflip.dev/positivity/pkg/tui/events"
	"tableflip.dev/positivity/pkg/tui/theme"
	"tableflip.dev/positivity/pkg/tui/ui"
)

const (
	Brand        = "Positivity"
	WisdomTitle  = "Daily Wisdom"
	MinWidth     = 24
	defaultWidth = 28
)

// Model is the left-hand navigation column.
type Model struct {
	ctrl    *controller.Controller
	th      theme.Theme
	spinner spinner.Model

	wisdom string
	stats  app.UserStats

	width  int
	height int
}

// New builds a sidebar that reflects ctrl's active view.
func New(ctrl *controller.Controller, th theme.Theme) *Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = th.Footer.Status
	return &Model{ctrl: ctrl, th: th, spinner: sp, width: defaultWidth}
}

// Init starts the spinner shown until the wisdom arrives.
func (m *Model) Init() tea.Cmd {
	return m.spinner.Tick
}

// Update records wisdom and keeps the spinner alive while waiting for it.
func (m *Model) Update(msg tea.Msg) (ui.Component, tea.Cmd) {
	switch msg := msg.(type) {
	case events.WisdomMsg:
		m.wisdom = msg.Text
		return m, nil
	case spinner.TickMsg:
		if m.wisdom != "" {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}
	return m, nil
}

// SetStats updates the streak shown under the navigation.
func (m *Model) SetStats(s app.UserStats) {
	m.stats = s
}

// Wisdom is the wisdom text once loaded.
func (m *Model) Wisdom() string {
	return m.wisdom
}

func (m *Model) SetSize(width, height int) {
	m.width = max(width, MinWidth)
	m.height = height
}

func (m *Model) View() string {
	inner := m.width - m.th.Sidebar.Frame.GetHorizontalFrameSize()

	var b strings.Builder
	b.WriteString(m.th.Sidebar.Brand.Render(Brand))
	b.WriteString("\n")
	for i, v := range controller.Views() {
		label := fmt.Sprintf("%d %s", i+1, v)
		if v == m.ctrl.View() {
			b.WriteString(m.th.Sidebar.Selected.Render(label))
		} else {
			b.WriteString(m.th.Sidebar.Item.Render(label))
		}
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(m.th.Sidebar.Label.Render("Day Streak"))
	fmt.Fprintf(&b, " %d\n", m.stats.CurrentStreak)
	b.WriteString(StreakDots(m.stats))
	b.WriteString("\n")

	nav := m.th.Sidebar.Frame.Width(m.width - m.th.Sidebar.Frame.GetHorizontalBorderSize()).Render(b.String())

	wisdom := m.wisdom
	if wisdom == "" {
		wisdom = m.spinner.View() + " listening for wisdom…"
	}
	p := panel.New(m.th.Panel)
	p.SetWidth(m.width)
	p.SetContent(WisdomTitle, []string{m.th.Sidebar.Wisdom.Render(wordwrap.String(wisdom, max(inner, 1)))})
	box, _ := p.View()

	return lipgloss.JoinVertical(lipgloss.Left, nav, box)
}

// StreakDots renders the streak slots, filled slots shaded along a gradient.
func StreakDots(s app.UserStats) string {
	colors := theme.StreakColors(len(s.StreakBar))
	dots := make([]string, len(s.StreakBar))
	for i, on := range s.StreakBar {
		if on {
			dots[i] = lipgloss.NewStyle().Foreground(colors[i]).Render("●")
		} else {
			dots[i] = lipgloss.NewStyle().Faint(true).Render("○")
		}
	}
	return strings.Join(dots, " ")
}
