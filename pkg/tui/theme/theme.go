package theme

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/muesli/termenv"

	"tableflip.dev/positivity/pkg/entry"
)

// Theme centralizes Lip Gloss styles for the Bubble Tea UI.
type Theme struct {
	Dark    bool
	Footer  FooterTheme
	Panel   PanelTheme
	Sidebar SidebarTheme
	Form    FormTheme
	Entry   EntryTheme
}

// FooterTheme groups styles used by the bottom status and help bar.
type FooterTheme struct {
	Help   lipgloss.Style
	Status lipgloss.Style
	Error  lipgloss.Style
}

// PanelTheme styles framed panels and headings.
type PanelTheme struct {
	Frame lipgloss.Style
	Title lipgloss.Style
	Body  lipgloss.Style
}

// SidebarTheme styles the navigation column.
type SidebarTheme struct {
	Frame    lipgloss.Style
	Brand    lipgloss.Style
	Item     lipgloss.Style
	Selected lipgloss.Style
	Wisdom   lipgloss.Style
	Label    lipgloss.Style
}

// FormTheme styles the write and reframe forms.
type FormTheme struct {
	Prompt   lipgloss.Style
	Counter  lipgloss.Style
	Over     lipgloss.Style
	Button   lipgloss.Style
	Disabled lipgloss.Style
	Choice   lipgloss.Style
	Chosen   lipgloss.Style
	Hint     lipgloss.Style
}

// EntryTheme styles history cards.
type EntryTheme struct {
	Date    lipgloss.Style
	Badge   lipgloss.Style
	Insight lipgloss.Style
	Tag     lipgloss.Style
}

const (
	accentDark  = "#A78BFA"
	accentLight = "#6D28D9"
	streakStart = "#F59E0B"
	streakEnd   = "#F43F5E"
)

// Default returns the built-in theme, adapted to the terminal background.
func Default() Theme {
	return New(termenv.HasDarkBackground())
}

// New returns the theme for a dark or light background.
func New(dark bool) Theme {
	accent := lipgloss.Color(accentLight)
	muted := lipgloss.Color("243")
	if dark {
		accent = lipgloss.Color(accentDark)
		muted = lipgloss.Color("245")
	}
	frame := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(muted).
		Padding(0, 1)

	return Theme{
		Dark: dark,
		Footer: FooterTheme{
			Help:   lipgloss.NewStyle().Foreground(muted),
			Status: lipgloss.NewStyle().Foreground(accent),
			Error:  lipgloss.NewStyle().Foreground(lipgloss.Color("160")),
		},
		Panel: PanelTheme{
			Frame: frame,
			Title: lipgloss.NewStyle().Bold(true).Foreground(accent),
			Body:  lipgloss.NewStyle(),
		},
		Sidebar: SidebarTheme{
			Frame:    frame,
			Brand:    lipgloss.NewStyle().Bold(true).Foreground(accent).MarginBottom(1),
			Item:     lipgloss.NewStyle().PaddingLeft(2),
			Selected: lipgloss.NewStyle().PaddingLeft(1).Bold(true).Foreground(accent).SetString("›"),
			Wisdom:   lipgloss.NewStyle().Italic(true).Foreground(muted),
			Label:    lipgloss.NewStyle().Bold(true).Underline(true),
		},
		Form: FormTheme{
			Prompt:   lipgloss.NewStyle().Bold(true),
			Counter:  lipgloss.NewStyle().Foreground(muted),
			Over:     lipgloss.NewStyle().Foreground(lipgloss.Color("160")),
			Button:   lipgloss.NewStyle().Bold(true).Padding(0, 2).Background(accent).Foreground(lipgloss.Color("231")),
			Disabled: lipgloss.NewStyle().Padding(0, 2).Foreground(muted).Strikethrough(true),
			Choice:   lipgloss.NewStyle().PaddingLeft(2),
			Chosen:   lipgloss.NewStyle().PaddingLeft(1).Bold(true).Foreground(accent).SetString("›"),
			Hint:     lipgloss.NewStyle().Foreground(muted).Italic(true),
		},
		Entry: EntryTheme{
			Date:    lipgloss.NewStyle().Bold(true),
			Badge:   lipgloss.NewStyle().Foreground(accent),
			Insight: lipgloss.NewStyle().Italic(true).Foreground(muted),
			Tag:     lipgloss.NewStyle().Foreground(muted),
		},
	}
}

// Sentiment returns the badge style for s.
func (t Theme) Sentiment(s entry.Sentiment) lipgloss.Style {
	colors := map[entry.Sentiment]string{
		entry.Joyful:    "#FACC15",
		entry.Grateful:  "#F472B6",
		entry.Peaceful:  "#34D399",
		entry.Resilient: "#60A5FA",
		entry.Hopeful:   "#A78BFA",
	}
	c, ok := colors[s]
	if !ok {
		return t.Entry.Badge.Foreground(lipgloss.Color("245"))
	}
	return t.Entry.Badge.Foreground(lipgloss.Color(c))
}

// StreakColors blends from amber to rose across n streak slots.
func StreakColors(n int) []lipgloss.Color {
	if n <= 0 {
		return nil
	}
	start, _ := colorful.Hex(streakStart)
	end, _ := colorful.Hex(streakEnd)
	out := make([]lipgloss.Color, n)
	for i := range out {
		switch {
		case i == 0:
			out[i] = lipgloss.Color(start.Hex())
		case i == n-1:
			out[i] = lipgloss.Color(end.Hex())
		default:
			t := float64(i) / float64(n-1)
			out[i] = lipgloss.Color(start.BlendLuv(end, t).Clamped().Hex())
		}
	}
	return out
}
