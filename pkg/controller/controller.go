// Package controller holds the interaction state shared by the TUI and the
// interactive CLI: which view is active, the gratitude form and the reframe
// flow. It decides when an action is available; rendering lives elsewhere.
package controller

import (
	"context"
	"errors"

	"tableflip.dev/positivity/pkg/ai"
	"tableflip.dev/positivity/pkg/entry"
)

var (
	ErrIncomplete = errors.New("controller: form incomplete")
	ErrBusy       = errors.New("controller: request already in flight")
	ErrStage      = errors.New("controller: not available at this stage")
)

// View is one of the four top-level screens.
type View int

const (
	ViewWrite View = iota
	ViewReframe
	ViewHistory
	ViewInsights
)

// Views lists the views in navigation order.
func Views() []View {
	return []View{ViewWrite, ViewReframe, ViewHistory, ViewInsights}
}

func (v View) String() string {
	switch v {
	case ViewWrite:
		return "Daily Journal"
	case ViewReframe:
		return "Reframe"
	case ViewHistory:
		return "My Journey"
	case ViewInsights:
		return "Insights"
	default:
		return "Unknown"
	}
}

// Journal is what the controller needs from the application service.
type Journal interface {
	AnalyzeGratitude(ctx context.Context, items [3]string) ai.AnalysisResult
	RecordGratitude(ctx context.Context, items [3]string, analysis ai.AnalysisResult) (*entry.Entry, error)
	SuggestReframes(ctx context.Context, challenge string) []ai.ReframeSuggestion
	SaveReframe(ctx context.Context, challenge, reframe, perspective string) (*entry.Entry, error)
}

// Controller tracks the active view and both writing flows.
type Controller struct {
	journal Journal
	view    View

	Gratitude GratitudeForm
	Reframe   ReframeFlow
}

// New starts on the writing view.
func New(j Journal) *Controller {
	return &Controller{
		journal: j,
		view:    ViewWrite,
		Reframe: ReframeFlow{stage: StageChallenge, chosen: -1},
	}
}

func (c *Controller) View() View {
	return c.view
}

// Navigate switches the active view. Form state is kept.
func (c *Controller) Navigate(v View) {
	for _, known := range Views() {
		if v == known {
			c.view = v
			return
		}
	}
}

// Next cycles to the following view.
func (c *Controller) Next() {
	c.view = Views()[(int(c.view)+1)%len(Views())]
}

// Prev cycles to the preceding view.
func (c *Controller) Prev() {
	n := len(Views())
	c.view = Views()[(int(c.view)+n-1)%n]
}
