// Package insights shows streak and sentiment statistics.
package insights

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"tableflip.dev/positivity/pkg/app"
	"tableflip.dev/positivity/pkg/entry"
	"tableflip.dev/positivity/pkg/printers"
	"tableflip.dev/positivity/pkg/tui/components/panel"
	"tableflip.dev/positivity/pkg/tui/components/sidebar"
	"tableflip.dev/positivity/pkg/tui/theme"
	"tableflip.dev/positivity/pkg/tui/ui"
)

const barWidth = 20

type Model struct {
	th    theme.Theme
	stats app.UserStats

	width  int
	height int
}

func New(th theme.Theme) *Model {
	return &Model{th: th}
}

func (m *Model) Init() tea.Cmd { return nil }

func (m *Model) Update(tea.Msg) (ui.Component, tea.Cmd) { return m, nil }

// SetStats replaces the statistics shown.
func (m *Model) SetStats(s app.UserStats) {
	m.stats = s
}

func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}

func (m *Model) View() string {
	s := m.stats
	half := max(m.width/2, 24)

	total := panel.New(m.th.Panel)
	total.SetWidth(half)
	total.SetContent("Total Entries", []string{fmt.Sprintf("%d", s.TotalEntries)})
	totalView, _ := total.View()

	streak := panel.New(m.th.Panel)
	streak.SetWidth(half)
	streak.SetContent("Day Streak", []string{fmt.Sprintf("%d  %s", s.CurrentStreak, sidebar.StreakDots(s))})
	streakView, _ := streak.View()

	top := lipgloss.JoinHorizontal(lipgloss.Top, totalView, streakView)
	if m.width > 0 && lipgloss.Width(top) > m.width {
		top = lipgloss.JoinVertical(lipgloss.Left, totalView, streakView)
	}

	landscape := panel.New(m.th.Panel)
	landscape.SetWidth(max(m.width, 2*half))
	landscape.SetContent("Emotional Landscape", m.distribution())
	landscapeView, _ := landscape.View()

	today := m.th.Form.Hint.Render(printers.TodayMessage(s))
	if s.JournaledToday {
		today = m.th.Footer.Status.Render(printers.TodayMessage(s))
	}
	return lipgloss.JoinVertical(lipgloss.Left, top, landscapeView, "", today)
}

func (m *Model) distribution() []string {
	if len(m.stats.Sentiments) == 0 {
		return []string{m.th.Form.Hint.Render(printers.NoSentimentData)}
	}
	most := 0
	for _, n := range m.stats.Sentiments {
		most = max(most, n)
	}
	var lines []string
	for _, s := range entry.Sentiments() {
		n, ok := m.stats.Sentiments[s]
		if !ok {
			continue
		}
		width := max(n*barWidth/most, 1)
		label := fmt.Sprintf("%-10s", s)
		bar := m.th.Sentiment(s).Render(strings.Repeat("█", width))
		lines = append(lines, fmt.Sprintf("%s %s %d", label, bar, n))
	}
	return lines
}
