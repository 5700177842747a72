package ui

import tea "github.com/charmbracelet/bubbletea"

// Component defines the contract for the journal's Bubble Tea views.
type Component interface {
	Init() tea.Cmd
	Update(tea.Msg) (Component, tea.Cmd)
	View() string
	SetSize(width, height int)
}

// Focusable is implemented by components that take keyboard input.
type Focusable interface {
	Focus() tea.Cmd
	Blur()
}
