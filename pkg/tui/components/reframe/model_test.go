package reframe

import (
	"context"
	"regexp"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"tableflip.dev/positivity/pkg/ai"
	"tableflip.dev/positivity/pkg/controller"
	"tableflip.dev/positivity/pkg/entry"
	"tableflip.dev/positivity/pkg/tui/events"
	"tableflip.dev/positivity/pkg/tui/theme"
)

var ansiPattern = regexp.MustCompile(`\x1b\[[0-9;:]*[A-Za-z~]`)

func stripANSI(s string) string {
	return ansiPattern.ReplaceAllString(s, "")
}

type nopJournal struct{}

func (nopJournal) AnalyzeGratitude(context.Context, [3]string) ai.AnalysisResult {
	return ai.FallbackAnalysis()
}

func (nopJournal) RecordGratitude(context.Context, [3]string, ai.AnalysisResult) (*entry.Entry, error) {
	return nil, nil
}

func (nopJournal) SuggestReframes(context.Context, string) []ai.ReframeSuggestion {
	return ai.FallbackReframes()
}

func (nopJournal) SaveReframe(context.Context, string, string, string) (*entry.Entry, error) {
	return nil, nil
}

func newModel() (*Model, *controller.Controller) {
	ctrl := controller.New(nopJournal{})
	ctrl.Navigate(controller.ViewReframe)
	m := New(ctrl, theme.New(true))
	m.SetSize(70, 30)
	m.Focus()
	return m, ctrl
}

func press(k tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: k}
}

func emits[T any](t *testing.T, cmd tea.Cmd) bool {
	t.Helper()
	if cmd == nil {
		return false
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		for _, c := range batch {
			if emits[T](t, c) {
				return true
			}
		}
		return false
	}
	_, ok := msg.(T)
	return ok
}

// toChoose types a challenge and delivers suggestions as the root model would.
func toChoose(t *testing.T, m *Model, ctrl *controller.Controller) {
	t.Helper()
	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("missed the bus")})
	_, cmd := m.Update(press(tea.KeyCtrlS))
	if !emits[events.RequestSuggestionsMsg](t, cmd) {
		t.Fatalf("ctrl+s should request suggestions")
	}
	if _, err := ctrl.BeginSuggestions(); err != nil {
		t.Fatalf("BeginSuggestions: %v", err)
	}
	ctrl.FinishSuggestions(ai.FallbackReframes())
	m.Sync()
}

func TestChallengeRequiresText(t *testing.T) {
	m, _ := newModel()
	if _, cmd := m.Update(press(tea.KeyCtrlS)); cmd != nil {
		t.Fatalf("blank challenge must not request suggestions")
	}
	view := stripANSI(m.View())
	if !strings.Contains(view, "1. Identify the Challenge") {
		t.Fatalf("expected stage heading:\n%s", view)
	}
}

func TestChooseSuggestionThenSave(t *testing.T) {
	m, ctrl := newModel()
	toChoose(t, m, ctrl)

	view := stripANSI(m.View())
	for _, want := range []string{"2. Choose a Path", "Growth", "Curiosity", "Optimism", OwnLabel} {
		if !strings.Contains(view, want) {
			t.Fatalf("choose view missing %q:\n%s", want, view)
		}
	}

	m.Update(press(tea.KeyDown))
	m.Update(press(tea.KeyEnter))
	if ctrl.Reframe.Stage() != controller.StageEdit {
		t.Fatalf("expected edit stage, got %v", ctrl.Reframe.Stage())
	}
	if ctrl.Reframe.Perspective() != "Curiosity" {
		t.Fatalf("perspective = %q", ctrl.Reframe.Perspective())
	}
	if !strings.Contains(stripANSI(m.View()), "I wonder what new possibilities") {
		t.Fatalf("edit area should be prefilled:\n%s", stripANSI(m.View()))
	}

	_, cmd := m.Update(press(tea.KeyCtrlS))
	if !emits[events.SaveReframeMsg](t, cmd) {
		t.Fatalf("ctrl+s should save in edit stage")
	}
}

func TestWriteOwnStartsEmpty(t *testing.T) {
	m, ctrl := newModel()
	toChoose(t, m, ctrl)

	m.Update(press(tea.KeyUp))
	if m.Cursor() != 3 {
		t.Fatalf("up from first row should wrap to %q, got %d", OwnLabel, m.Cursor())
	}
	m.Update(press(tea.KeyEnter))
	if ctrl.Reframe.Stage() != controller.StageEdit || ctrl.Reframe.Text != "" {
		t.Fatalf("expected empty edit stage, got %v %q", ctrl.Reframe.Stage(), ctrl.Reframe.Text)
	}
	if _, cmd := m.Update(press(tea.KeyCtrlS)); cmd != nil {
		t.Fatalf("empty reframe must not save")
	}
	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("Buses come back.")})
	if ctrl.Reframe.Text != "Buses come back." {
		t.Fatalf("text = %q", ctrl.Reframe.Text)
	}
}

func TestBackKeepsThenDiscardsSuggestions(t *testing.T) {
	m, ctrl := newModel()
	toChoose(t, m, ctrl)
	m.Update(press(tea.KeyEnter))

	m.Update(press(tea.KeyEsc))
	if ctrl.Reframe.Stage() != controller.StageChoose || len(ctrl.Reframe.Suggestions()) != 3 {
		t.Fatalf("esc from edit should keep suggestions")
	}
	m.Update(press(tea.KeyEsc))
	if ctrl.Reframe.Stage() != controller.StageChallenge || len(ctrl.Reframe.Suggestions()) != 0 {
		t.Fatalf("esc from choose should discard suggestions")
	}
	if !strings.Contains(stripANSI(m.View()), "missed the bus") {
		t.Fatalf("challenge text should survive going back")
	}
}
