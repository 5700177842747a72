package theme

import (
	"testing"

	"github.com/charmbracelet/lipgloss"

	"tableflip.dev/positivity/pkg/entry"
)

func TestStreakColorsEndpoints(t *testing.T) {
	got := StreakColors(5)
	if len(got) != 5 {
		t.Fatalf("expected 5 colors, got %d", len(got))
	}
	if got[0] != lipgloss.Color("#f59e0b") {
		t.Fatalf("first color = %s", got[0])
	}
	if got[4] != lipgloss.Color("#f43f5e") {
		t.Fatalf("last color = %s", got[4])
	}
	if StreakColors(0) != nil {
		t.Fatalf("expected nil for zero slots")
	}
}

func TestSentimentStyles(t *testing.T) {
	th := New(true)
	joy := th.Sentiment(entry.Joyful).GetForeground()
	unknown := th.Sentiment(entry.Sentiment("meh")).GetForeground()
	if joy == unknown {
		t.Fatalf("known sentiment should have its own color")
	}
}
