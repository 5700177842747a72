// Package gratitude is the Daily Journal form: three good things.
package gratitude

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"tableflip.dev/positivity/pkg/app"
	"tableflip.dev/positivity/pkg/controller"
	"tableflip.dev/positivity/pkg/tui/events"
	"tableflip.dev/positivity/pkg/tui/theme"
	"tableflip.dev/positivity/pkg/tui/ui"
)

const (
	Title       = "Three Good Things"
	Subtitle    = "What went well today, and why?"
	SubmitLabel = "Save Entry"
	BusyLabel   = "Reflecting…"
)

var placeholders = [3]string{
	"I am grateful for...",
	"Something that made me smile...",
	"A small win today...",
}

// KeyMap lists the form's bindings.
type KeyMap struct {
	Next   key.Binding
	Prev   key.Binding
	Submit key.Binding
}

func defaultKeys() KeyMap {
	return KeyMap{
		Next:   key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next field")),
		Prev:   key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "previous field")),
		Submit: key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "save entry")),
	}
}

// Model edits controller.GratitudeForm through three text areas.
type Model struct {
	ctrl    *controller.Controller
	th      theme.Theme
	keys    KeyMap
	inputs  [3]textarea.Model
	focus   int
	spinner spinner.Model
	focused bool

	width  int
	height int
}

// New builds the form over ctrl.Gratitude.
func New(ctrl *controller.Controller, th theme.Theme) *Model {
	m := &Model{ctrl: ctrl, th: th, keys: defaultKeys()}
	for i := range m.inputs {
		ta := textarea.New()
		ta.Placeholder = placeholders[i]
		ta.CharLimit = app.MaxItemLength
		ta.ShowLineNumbers = false
		ta.Prompt = ""
		ta.SetHeight(2)
		ta.SetValue(ctrl.Gratitude.Items[i])
		m.inputs[i] = ta
	}
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = th.Footer.Status
	m.spinner = sp
	return m
}

func (m *Model) Init() tea.Cmd {
	return nil
}

// Keys exposes the bindings for the help bar.
func (m *Model) Keys() []key.Binding {
	return []key.Binding{m.keys.Next, m.keys.Prev, m.keys.Submit}
}

// Focus gives keyboard input to the active field.
func (m *Model) Focus() tea.Cmd {
	m.focused = true
	return m.inputs[m.focus].Focus()
}

func (m *Model) Blur() {
	m.focused = false
	for i := range m.inputs {
		m.inputs[i].Blur()
	}
}

// FocusedField is the index of the field receiving input.
func (m *Model) FocusedField() int {
	return m.focus
}

// Sync reloads the text areas from the controller, for example after a
// saved entry cleared the form.
func (m *Model) Sync() {
	for i := range m.inputs {
		if m.inputs[i].Value() != m.ctrl.Gratitude.Items[i] {
			m.inputs[i].SetValue(m.ctrl.Gratitude.Items[i])
		}
	}
}

func (m *Model) Update(msg tea.Msg) (ui.Component, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		if !m.ctrl.Gratitude.Busy() {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Submit):
			if !m.ctrl.Gratitude.CanSubmit() {
				return m, nil
			}
			return m, tea.Batch(m.spinner.Tick, func() tea.Msg { return events.SubmitGratitudeMsg{} })
		case key.Matches(msg, m.keys.Next):
			return m, m.move(1)
		case key.Matches(msg, m.keys.Prev):
			return m, m.move(-1)
		}
		if m.ctrl.Gratitude.Busy() {
			return m, nil
		}
		var cmd tea.Cmd
		m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
		m.ctrl.Gratitude.SetItem(m.focus, m.inputs[m.focus].Value())
		return m, cmd
	}
	return m, nil
}

func (m *Model) move(delta int) tea.Cmd {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + delta + len(m.inputs)) % len(m.inputs)
	if !m.focused {
		return nil
	}
	return m.inputs[m.focus].Focus()
}

func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	for i := range m.inputs {
		m.inputs[i].SetWidth(max(width-4, 10))
	}
}

func (m *Model) View() string {
	form := &m.ctrl.Gratitude

	var b strings.Builder
	b.WriteString(m.th.Panel.Title.Render(Title))
	b.WriteString("\n")
	b.WriteString(m.th.Form.Hint.Render(Subtitle))
	b.WriteString("\n\n")
	for i := range m.inputs {
		fmt.Fprintf(&b, "%s ", m.th.Form.Prompt.Render(fmt.Sprintf("%d.", i+1)))
		counter := fmt.Sprintf("%d/%d", len([]rune(form.Items[i])), app.MaxItemLength)
		if form.Remaining(i) < 0 {
			b.WriteString(m.th.Form.Over.Render(counter))
		} else {
			b.WriteString(m.th.Form.Counter.Render(counter))
		}
		b.WriteString("\n")
		b.WriteString(m.inputs[i].View())
		b.WriteString("\n\n")
	}

	switch {
	case form.Busy():
		b.WriteString(m.spinner.View() + " " + m.th.Form.Hint.Render(BusyLabel))
	case form.CanSubmit():
		b.WriteString(m.th.Form.Button.Render(SubmitLabel))
		b.WriteString(" ")
		b.WriteString(m.th.Form.Hint.Render("ctrl+s"))
	default:
		b.WriteString(m.th.Form.Disabled.Render(SubmitLabel))
	}
	if m.width <= 0 {
		return b.String()
	}
	return lipgloss.NewStyle().MaxWidth(m.width).Render(b.String())
}
