// Package events defines the messages exchanged between the root model and
// its components.
package events

import (
	"fmt"

	"tableflip.dev/positivity/pkg/ai"
	"tableflip.dev/positivity/pkg/controller"
	"tableflip.dev/positivity/pkg/entry"
)

// WisdomMsg carries the session's daily wisdom.
type WisdomMsg struct {
	Text string
}

// SubmitGratitudeMsg asks the root model to analyze and record the form.
type SubmitGratitudeMsg struct{}

// AnalysisMsg returns the AI analysis for a gratitude submission.
type AnalysisMsg struct {
	Items    [3]string
	Analysis ai.AnalysisResult
}

// RequestSuggestionsMsg asks the root model to fetch reframe suggestions.
type RequestSuggestionsMsg struct{}

// SuggestionsMsg returns reframe suggestions for the current challenge.
type SuggestionsMsg struct {
	Suggestions []ai.ReframeSuggestion
}

// SaveReframeMsg asks the root model to save the reframe being edited.
type SaveReframeMsg struct{}

// SavedMsg reports a new entry or a failure to save one.
type SavedMsg struct {
	Entry *entry.Entry
	Err   error
}

// Describe renders the result for logs.
func (m SavedMsg) Describe() string {
	if m.Err != nil {
		return fmt.Sprintf("save failed: %v", m.Err)
	}
	if m.Entry == nil {
		return "saved: <nil>"
	}
	return fmt.Sprintf("saved id:%s kind:%s", m.Entry.ID, m.Entry.Kind())
}

// NavigateMsg switches the active view.
type NavigateMsg struct {
	View controller.View
}

// EntriesChangedMsg tells views that depend on the log to refresh.
type EntriesChangedMsg struct{}
