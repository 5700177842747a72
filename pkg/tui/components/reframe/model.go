// Package reframe is the three-stage cognitive reframing view.
package reframe

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"

	"tableflip.dev/positivity/pkg/controller"
	"tableflip.dev/positivity/pkg/tui/events"
	"tableflip.dev/positivity/pkg/tui/theme"
	"tableflip.dev/positivity/pkg/tui/ui"
)

const (
	OwnLabel     = "Write my own"
	RequestLabel = "Find Perspectives"
	SaveLabel    = "Embrace Perspective"
	BusyLabel    = "Looking for other angles…"
	EmptyLabel   = "No suggestions this time. Write your own below."
)

// KeyMap lists the view's bindings.
type KeyMap struct {
	Submit key.Binding
	Up     key.Binding
	Down   key.Binding
	Choose key.Binding
	Back   key.Binding
}

func defaultKeys() KeyMap {
	return KeyMap{
		Submit: key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "continue")),
		Up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:   key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Choose: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "choose")),
		Back:   key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
	}
}

// Model drives controller.ReframeFlow.
type Model struct {
	ctrl      *controller.Controller
	th        theme.Theme
	keys      KeyMap
	challenge textarea.Model
	text      textarea.Model
	spinner   spinner.Model
	cursor    int
	focused   bool
	// stage is the flow stage the inputs were last synced for.
	stage controller.Stage

	width  int
	height int
}

// New builds the reframe view over ctrl.Reframe.
func New(ctrl *controller.Controller, th theme.Theme) *Model {
	newArea := func(placeholder string) textarea.Model {
		ta := textarea.New()
		ta.Placeholder = placeholder
		ta.ShowLineNumbers = false
		ta.Prompt = ""
		ta.CharLimit = 0
		ta.SetHeight(4)
		return ta
	}
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = th.Footer.Status
	m := &Model{
		ctrl:      ctrl,
		th:        th,
		keys:      defaultKeys(),
		challenge: newArea("What's weighing on you?"),
		text:      newArea("Write the perspective in your own words..."),
		spinner:   sp,
	}
	m.challenge.SetValue(ctrl.Reframe.Challenge)
	m.stage = ctrl.Reframe.Stage()
	return m
}

func (m *Model) Init() tea.Cmd {
	return nil
}

// Keys exposes the bindings relevant to the current stage.
func (m *Model) Keys() []key.Binding {
	switch m.ctrl.Reframe.Stage() {
	case controller.StageChoose:
		return []key.Binding{m.keys.Up, m.keys.Down, m.keys.Choose, m.keys.Back}
	case controller.StageEdit:
		return []key.Binding{m.keys.Submit, m.keys.Back}
	default:
		return []key.Binding{m.keys.Submit}
	}
}

func (m *Model) Focus() tea.Cmd {
	m.focused = true
	return m.focusStage()
}

func (m *Model) Blur() {
	m.focused = false
	m.challenge.Blur()
	m.text.Blur()
}

func (m *Model) focusStage() tea.Cmd {
	m.challenge.Blur()
	m.text.Blur()
	if !m.focused {
		return nil
	}
	switch m.ctrl.Reframe.Stage() {
	case controller.StageChallenge:
		return m.challenge.Focus()
	case controller.StageEdit:
		return m.text.Focus()
	}
	return nil
}

// Cursor is the highlighted row in StageChoose. The row after the
// suggestions is "Write my own".
func (m *Model) Cursor() int {
	return m.cursor
}

// Sync aligns the inputs with the controller after it changed stage.
func (m *Model) Sync() tea.Cmd {
	r := &m.ctrl.Reframe
	if m.challenge.Value() != r.Challenge {
		m.challenge.SetValue(r.Challenge)
	}
	if r.Stage() == m.stage {
		return nil
	}
	m.stage = r.Stage()
	switch m.stage {
	case controller.StageChoose:
		m.cursor = 0
	case controller.StageEdit:
		m.text.SetValue(r.Text)
	}
	return m.focusStage()
}

func (m *Model) Update(msg tea.Msg) (ui.Component, tea.Cmd) {
	r := &m.ctrl.Reframe
	switch msg := msg.(type) {
	case spinner.TickMsg:
		if !r.Busy() {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case tea.KeyMsg:
		if r.Busy() {
			return m, nil
		}
		switch r.Stage() {
		case controller.StageChallenge:
			return m, m.updateChallenge(msg)
		case controller.StageChoose:
			return m, m.updateChoose(msg)
		case controller.StageEdit:
			return m, m.updateEdit(msg)
		}
	}
	return m, nil
}

func (m *Model) updateChallenge(msg tea.KeyMsg) tea.Cmd {
	r := &m.ctrl.Reframe
	if key.Matches(msg, m.keys.Submit) {
		if !r.CanRequest() {
			return nil
		}
		return tea.Batch(m.spinner.Tick, func() tea.Msg { return events.RequestSuggestionsMsg{} })
	}
	var cmd tea.Cmd
	m.challenge, cmd = m.challenge.Update(msg)
	r.Challenge = m.challenge.Value()
	return cmd
}

func (m *Model) updateChoose(msg tea.KeyMsg) tea.Cmd {
	rows := len(m.ctrl.Reframe.Suggestions()) + 1
	switch {
	case key.Matches(msg, m.keys.Up):
		m.cursor = (m.cursor + rows - 1) % rows
	case key.Matches(msg, m.keys.Down):
		m.cursor = (m.cursor + 1) % rows
	case key.Matches(msg, m.keys.Back):
		m.ctrl.Back()
		return m.Sync()
	case key.Matches(msg, m.keys.Choose):
		var err error
		if m.cursor == rows-1 {
			err = m.ctrl.WriteOwn()
		} else {
			err = m.ctrl.Choose(m.cursor)
		}
		if err != nil {
			return nil
		}
		return m.Sync()
	}
	return nil
}

func (m *Model) updateEdit(msg tea.KeyMsg) tea.Cmd {
	r := &m.ctrl.Reframe
	switch {
	case key.Matches(msg, m.keys.Back):
		m.ctrl.Back()
		return m.Sync()
	case key.Matches(msg, m.keys.Submit):
		if !r.CanSave() {
			return nil
		}
		return func() tea.Msg { return events.SaveReframeMsg{} }
	}
	var cmd tea.Cmd
	m.text, cmd = m.text.Update(msg)
	r.Text = m.text.Value()
	return cmd
}

func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.challenge.SetWidth(max(width-4, 10))
	m.text.SetWidth(max(width-4, 10))
}

func (m *Model) View() string {
	r := &m.ctrl.Reframe
	stage := r.Stage()

	var b strings.Builder
	b.WriteString(m.th.Panel.Title.Render("Reframe"))
	b.WriteString("  ")
	b.WriteString(m.progress(stage))
	b.WriteString("\n\n")
	b.WriteString(m.th.Form.Prompt.Render(fmt.Sprintf("%d. %s", stage, stage)))
	b.WriteString("\n")

	switch stage {
	case controller.StageChallenge:
		b.WriteString(m.th.Form.Hint.Render("Describe a difficult moment. We'll look for other ways to see it."))
		b.WriteString("\n")
		b.WriteString(m.challenge.View())
		b.WriteString("\n\n")
		switch {
		case r.Busy():
			b.WriteString(m.spinner.View() + " " + m.th.Form.Hint.Render(BusyLabel))
		case r.CanRequest():
			b.WriteString(m.th.Form.Button.Render(RequestLabel))
		default:
			b.WriteString(m.th.Form.Disabled.Render(RequestLabel))
		}
	case controller.StageChoose:
		b.WriteString(m.th.Form.Hint.Render(m.wrap("“" + r.Challenge + "”")))
		b.WriteString("\n\n")
		suggestions := r.Suggestions()
		if len(suggestions) == 0 {
			b.WriteString(m.th.Form.Hint.Render(EmptyLabel))
			b.WriteString("\n")
		}
		for i, s := range suggestions {
			b.WriteString(m.row(i, s.Perspective))
			b.WriteString("\n")
			b.WriteString(m.th.Form.Choice.Render(m.wrap("  " + s.Explanation)))
			b.WriteString("\n")
		}
		b.WriteString(m.row(len(suggestions), OwnLabel))
	case controller.StageEdit:
		if p := r.Perspective(); p != "" {
			b.WriteString(m.th.Entry.Badge.Render(p))
			b.WriteString("\n")
		}
		b.WriteString(m.text.View())
		b.WriteString("\n\n")
		if r.CanSave() {
			b.WriteString(m.th.Form.Button.Render(SaveLabel))
		} else {
			b.WriteString(m.th.Form.Disabled.Render(SaveLabel))
		}
	}
	if m.width <= 0 {
		return b.String()
	}
	return lipgloss.NewStyle().MaxWidth(m.width).Render(b.String())
}

func (m *Model) row(i int, label string) string {
	if i == m.cursor {
		return m.th.Form.Chosen.Render(label)
	}
	return m.th.Form.Choice.Render(label)
}

func (m *Model) wrap(s string) string {
	if m.width <= 4 {
		return s
	}
	return wordwrap.String(s, m.width-4)
}

func (m *Model) progress(current controller.Stage) string {
	steps := []controller.Stage{controller.StageChallenge, controller.StageChoose, controller.StageEdit}
	dots := make([]string, len(steps))
	for i, s := range steps {
		if s <= current {
			dots[i] = m.th.Entry.Badge.Render("●")
		} else {
			dots[i] = m.th.Form.Counter.Render("○")
		}
	}
	return strings.Join(dots, " ")
}
