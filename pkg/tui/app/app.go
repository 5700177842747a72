// Package app is the root Bubble Tea model: a sidebar next to the active
// view, with a help footer. AI calls run as commands; their results are
// applied to the controller on the update loop.
package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	appsvc "tableflip.dev/positivity/pkg/app"
	"tableflip.dev/positivity/pkg/controller"
	"tableflip.dev/positivity/pkg/entry"
	"tableflip.dev/positivity/pkg/tui/components/gratitude"
	"tableflip.dev/positivity/pkg/tui/components/history"
	"tableflip.dev/positivity/pkg/tui/components/insights"
	"tableflip.dev/positivity/pkg/tui/components/panel"
	"tableflip.dev/positivity/pkg/tui/components/reframe"
	"tableflip.dev/positivity/pkg/tui/components/sidebar"
	"tableflip.dev/positivity/pkg/tui/events"
	"tableflip.dev/positivity/pkg/tui/theme"
	"tableflip.dev/positivity/pkg/tui/ui"
	"tableflip.dev/positivity/pkg/tui/ui/overlay"
)

const (
	SavedGratitude = "Your positivity has been recorded."
	SavedReframe   = "Perspective embraced."
	sidebarWidth   = 30
	footerHeight   = 2
)

type keyed interface {
	Keys() []key.Binding
}

// Model is the root model.
type Model struct {
	ctx  context.Context
	svc  *appsvc.Service
	ctrl *controller.Controller
	th   theme.Theme
	keys KeyMap
	help help.Model

	sidebar   *sidebar.Model
	gratitude *gratitude.Model
	reframe   *reframe.Model
	history   *history.Model
	insights  *insights.Model

	focused  controller.View
	showHelp bool
	status   string
	err      error

	width  int
	height int
}

// New builds the root model over svc with the terminal's theme.
func New(ctx context.Context, svc *appsvc.Service) *Model {
	return NewWithTheme(ctx, svc, theme.Default())
}

// NewWithTheme builds the root model with an explicit theme.
func NewWithTheme(ctx context.Context, svc *appsvc.Service, th theme.Theme) *Model {
	ctrl := controller.New(svc)
	h := help.New()
	h.Styles.ShortKey = th.Footer.Status
	h.Styles.ShortDesc = th.Footer.Help
	h.Styles.FullKey = th.Footer.Status
	h.Styles.FullDesc = th.Footer.Help
	m := &Model{
		ctx:       ctx,
		svc:       svc,
		ctrl:      ctrl,
		th:        th,
		keys:      defaultKeys(),
		help:      h,
		sidebar:   sidebar.New(ctrl, th),
		gratitude: gratitude.New(ctrl, th),
		reframe:   reframe.New(ctrl, th),
		history:   history.New(th),
		insights:  insights.New(th),
		focused:   ctrl.View(),
	}
	m.refresh()
	return m
}

// Controller exposes the interaction state, mainly for tests.
func (m *Model) Controller() *controller.Controller {
	return m.ctrl
}

func (m *Model) Init() tea.Cmd {
	return tea.Batch(
		m.sidebar.Init(),
		m.loadWisdom(),
		m.navigate(m.focused),
	)
}

func (m *Model) loadWisdom() tea.Cmd {
	return func() tea.Msg {
		return events.WisdomMsg{Text: m.svc.DailyWisdom(m.ctx)}
	}
}

func (m *Model) component(v controller.View) ui.Component {
	switch v {
	case controller.ViewReframe:
		return m.reframe
	case controller.ViewHistory:
		return m.history
	case controller.ViewInsights:
		return m.insights
	default:
		return m.gratitude
	}
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.layout()
		return m, nil

	case tea.KeyMsg:
		return m, m.handleKey(msg)

	case spinner.TickMsg:
		var cmds []tea.Cmd
		for _, c := range []ui.Component{m.sidebar, m.gratitude, m.reframe} {
			_, cmd := c.Update(msg)
			cmds = append(cmds, cmd)
		}
		return m, tea.Batch(cmds...)

	case events.WisdomMsg:
		_, cmd := m.sidebar.Update(msg)
		return m, cmd

	case events.NavigateMsg:
		return m, m.navigate(msg.View)

	case events.SubmitGratitudeMsg:
		items, err := m.ctrl.BeginGratitude()
		if err != nil {
			m.status = ""
			return m, nil
		}
		m.status = gratitude.BusyLabel
		return m, func() tea.Msg {
			return events.AnalysisMsg{Items: items, Analysis: m.svc.AnalyzeGratitude(m.ctx, items)}
		}

	case events.AnalysisMsg:
		e, err := m.ctrl.FinishGratitude(m.ctx, msg.Items, msg.Analysis)
		return m, m.saved(events.SavedMsg{Entry: e, Err: err}, SavedGratitude)

	case events.RequestSuggestionsMsg:
		challenge, err := m.ctrl.BeginSuggestions()
		if err != nil {
			return m, nil
		}
		m.status = reframe.BusyLabel
		return m, func() tea.Msg {
			return events.SuggestionsMsg{Suggestions: m.svc.SuggestReframes(m.ctx, challenge)}
		}

	case events.SuggestionsMsg:
		m.ctrl.FinishSuggestions(msg.Suggestions)
		m.status = ""
		return m, m.reframe.Sync()

	case events.SaveReframeMsg:
		e, err := m.ctrl.SaveReframe(m.ctx)
		return m, m.saved(events.SavedMsg{Entry: e, Err: err}, SavedReframe)

	case events.EntriesChangedMsg:
		m.refresh()
		return m, nil
	}

	_, cmd := m.component(m.focused).Update(msg)
	return m, cmd
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	if m.showHelp {
		switch {
		case key.Matches(msg, m.keys.Quit):
			return tea.Quit
		case key.Matches(msg, m.keys.Close):
			m.showHelp = false
		}
		return nil
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return nil
	case key.Matches(msg, m.keys.Next):
		m.ctrl.Next()
		return m.navigate(m.ctrl.View())
	case key.Matches(msg, m.keys.Prev):
		m.ctrl.Prev()
		return m.navigate(m.ctrl.View())
	case key.Matches(msg, m.keys.Write):
		return m.navigate(controller.ViewWrite)
	case key.Matches(msg, m.keys.Reframe):
		return m.navigate(controller.ViewReframe)
	case key.Matches(msg, m.keys.History):
		return m.navigate(controller.ViewHistory)
	case key.Matches(msg, m.keys.Insights):
		return m.navigate(controller.ViewInsights)
	}

	m.err = nil
	_, cmd := m.component(m.focused).Update(msg)
	return cmd
}

// navigate moves keyboard focus to v.
func (m *Model) navigate(v controller.View) tea.Cmd {
	m.ctrl.Navigate(v)
	if f, ok := m.component(m.focused).(ui.Focusable); ok {
		f.Blur()
	}
	m.focused = m.ctrl.View()
	if f, ok := m.component(m.focused).(ui.Focusable); ok {
		return f.Focus()
	}
	return nil
}

// saved applies the result of a save. The controller has already switched
// to the history view on success.
func (m *Model) saved(msg events.SavedMsg, done string) tea.Cmd {
	slog.Debug("tui: "+msg.Describe(), slog.String("view", m.ctrl.View().String()))
	if msg.Err != nil {
		m.err = msg.Err
		m.status = ""
		return nil
	}
	m.err = nil
	m.status = done
	m.refresh()
	m.gratitude.Sync()
	cmd := m.reframe.Sync()
	return tea.Batch(cmd, m.navigate(m.ctrl.View()))
}

// refresh reloads the entry-derived views from the service.
func (m *Model) refresh() {
	entries, err := m.svc.Entries()
	if err != nil {
		m.err = err
		entries = []*entry.Entry{}
	}
	m.history.SetEntries(entries)
	stats := appsvc.Stats(entries, m.svc.CurrentTime())
	m.sidebar.SetStats(stats)
	m.insights.SetStats(stats)
}

func (m *Model) layout() {
	side := sidebarWidth
	if m.width < 80 {
		side = sidebar.MinWidth
	}
	bodyHeight := max(m.height-footerHeight, 1)
	m.sidebar.SetSize(side, bodyHeight)
	contentWidth := max(m.width-side-1, 20)
	for _, v := range controller.Views() {
		m.component(v).SetSize(contentWidth, bodyHeight)
	}
	m.help.Width = m.width
}

func (m *Model) View() string {
	body := lipgloss.JoinHorizontal(lipgloss.Top,
		m.sidebar.View(),
		" ",
		m.component(m.focused).View(),
	)
	if m.height > 0 {
		body = lipgloss.NewStyle().Height(max(m.height-footerHeight, 1)).MaxHeight(max(m.height-footerHeight, 1)).Render(body)
	}
	view := lipgloss.JoinVertical(lipgloss.Left, body, m.footer())

	if m.showHelp && m.width > 0 && m.height > 0 {
		view = overlay.Compose(view, m.width, m.height, m.helpPanel(), overlay.Centered)
	}
	return view
}

func (m *Model) footer() string {
	var status string
	switch {
	case m.err != nil:
		status = m.th.Footer.Error.Render(fmt.Sprintf("Something went wrong: %v", m.err))
	case m.status != "":
		status = m.th.Footer.Status.Render(m.status)
	}
	bindings := m.keys.ShortHelp()
	if k, ok := m.component(m.focused).(keyed); ok {
		bindings = append(k.Keys(), bindings...)
	}
	return lipgloss.JoinVertical(lipgloss.Left, status, m.help.ShortHelpView(bindings))
}

func (m *Model) helpPanel() string {
	p := panel.New(m.th.Panel)
	p.SetContent("Keys", []string{m.help.FullHelpView(m.keys.FullHelp())})
	view, _ := p.View()
	return view
}

// Run starts the program and blocks until it exits.
func Run(ctx context.Context, svc *appsvc.Service, opts ...tea.ProgramOption) error {
	opts = append([]tea.ProgramOption{tea.WithAltScreen(), tea.WithContext(ctx)}, opts...)
	p := tea.NewProgram(New(ctx, svc), opts...)
	_, err := p.Run()
	return err
}
