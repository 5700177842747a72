package sidebar

import (
	"regexp"
	"strings"
	"testing"

	"tableflip.dev/positivity/pkg/app"
	"tableflip.dev/positivity/pkg/controller"
	"tableflip.dev/positivity/pkg/tui/events"
	"tableflip.dev/positivity/pkg/tui/theme"
)

var ansiPattern = regexp.MustCompile(`\x1b\[[0-9;:]*[A-Za-z~]`)

func stripANSI(s string) string {
	return ansiPattern.ReplaceAllString(s, "")
}

func TestViewListsViewsAndMarksActive(t *testing.T) {
	ctrl := controller.New(nil)
	ctrl.Navigate(controller.ViewInsights)
	m := New(ctrl, theme.New(true))
	m.SetSize(30, 20)

	view := stripANSI(m.View())
	for _, want := range []string{Brand, "1 Daily Journal", "2 Reframe", "3 My Journey", "› 4 Insights", WisdomTitle} {
		if !strings.Contains(view, want) {
			t.Fatalf("view missing %q:\n%s", want, view)
		}
	}
}

func TestWisdomReplacesSpinner(t *testing.T) {
	m := New(controller.New(nil), theme.New(true))
	m.SetSize(30, 20)
	if !strings.Contains(stripANSI(m.View()), "listening for wisdom") {
		t.Fatalf("expected loading text before wisdom")
	}

	_, _ = m.Update(events.WisdomMsg{Text: "Small steps still move you forward."})
	view := stripANSI(m.View())
	if strings.Contains(view, "listening for wisdom") {
		t.Fatalf("loading text should be gone:\n%s", view)
	}
	if !strings.Contains(strings.Join(strings.Fields(view), " "), "Small steps still") {
		t.Fatalf("wisdom missing:\n%s", view)
	}
}

func TestStreakDots(t *testing.T) {
	s := app.UserStats{CurrentStreak: 2, StreakBar: [app.StreakBarSlots]bool{true, true}}
	got := stripANSI(StreakDots(s))
	if got != "● ● ○ ○ ○" {
		t.Fatalf("StreakDots = %q", got)
	}
}
