package app

import "github.com/charmbracelet/bubbles/key"

// KeyMap lists the global bindings. View bindings are reported by the views.
type KeyMap struct {
	Next     key.Binding
	Prev     key.Binding
	Write    key.Binding
	Reframe  key.Binding
	History  key.Binding
	Insights key.Binding
	Help     key.Binding
	Close    key.Binding
	Quit     key.Binding
}

func defaultKeys() KeyMap {
	return KeyMap{
		Next:     key.NewBinding(key.WithKeys("ctrl+n"), key.WithHelp("ctrl+n", "next view")),
		Prev:     key.NewBinding(key.WithKeys("ctrl+p"), key.WithHelp("ctrl+p", "previous view")),
		Write:    key.NewBinding(key.WithKeys("alt+1"), key.WithHelp("alt+1", "daily journal")),
		Reframe:  key.NewBinding(key.WithKeys("alt+2"), key.WithHelp("alt+2", "reframe")),
		History:  key.NewBinding(key.WithKeys("alt+3"), key.WithHelp("alt+3", "my journey")),
		Insights: key.NewBinding(key.WithKeys("alt+4"), key.WithHelp("alt+4", "insights")),
		Help:     key.NewBinding(key.WithKeys("f1"), key.WithHelp("f1", "help")),
		Close:    key.NewBinding(key.WithKeys("esc", "f1"), key.WithHelp("esc", "close help")),
		Quit:     key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Write, k.Reframe, k.History, k.Insights},
		{k.Next, k.Prev, k.Help, k.Quit},
	}
}
