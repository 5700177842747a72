package controller

import (
	"context"
	"strings"

	"tableflip.dev/positivity/pkg/ai"
	"tableflip.dev/positivity/pkg/app"
	"tableflip.dev/positivity/pkg/entry"
)

// Stage is a step of the reframe flow.
type Stage int

const (
	// StageChallenge captures the difficult situation.
	StageChallenge Stage = iota + 1
	// StageChoose shows the suggested perspectives.
	StageChoose
	// StageEdit lets the chosen reframe be reworded before saving.
	StageEdit
)

func (s Stage) String() string {
	switch s {
	case StageChallenge:
		return "Identify the Challenge"
	case StageChoose:
		return "Choose a Path"
	case StageEdit:
		return "Internalize It"
	default:
		return "Unknown"
	}
}

// ReframeFlow is the three-stage reframing interaction.
type ReframeFlow struct {
	Challenge string
	// Text is the editable reframe in StageEdit.
	Text string

	stage       Stage
	suggestions []ai.ReframeSuggestion
	// chosen indexes suggestions; -1 means the user writes their own.
	chosen int
	busy   bool
}

func (r *ReframeFlow) Stage() Stage {
	if r.stage == 0 {
		return StageChallenge
	}
	return r.stage
}

// Suggestions returns a copy of the fetched suggestions.
func (r *ReframeFlow) Suggestions() []ai.ReframeSuggestion {
	return append([]ai.ReframeSuggestion{}, r.suggestions...)
}

// Chosen returns the selected suggestion index, or -1.
func (r *ReframeFlow) Chosen() int {
	return r.chosen
}

// Perspective is the label recorded with the reframe; empty when the user
// wrote their own.
func (r *ReframeFlow) Perspective() string {
	if r.chosen < 0 || r.chosen >= len(r.suggestions) {
		return ""
	}
	return r.suggestions[r.chosen].Perspective
}

// Busy reports whether suggestions are being fetched.
func (r *ReframeFlow) Busy() bool {
	return r.busy
}

// CanRequest reports whether suggestions can be requested.
func (r *ReframeFlow) CanRequest() bool {
	return r.Stage() == StageChallenge && !r.busy && strings.TrimSpace(r.Challenge) != ""
}

// CanSave reports whether the reframe can be saved.
func (r *ReframeFlow) CanSave() bool {
	return r.Stage() == StageEdit && strings.TrimSpace(r.Text) != ""
}

func (r *ReframeFlow) reset() {
	*r = ReframeFlow{stage: StageChallenge, chosen: -1}
}

// BeginSuggestions marks the flow busy and returns the challenge to send.
func (c *Controller) BeginSuggestions() (string, error) {
	r := &c.Reframe
	if r.busy {
		return "", ErrBusy
	}
	if r.Stage() != StageChallenge {
		return "", ErrStage
	}
	challenge := strings.TrimSpace(r.Challenge)
	if challenge == "" {
		return "", ErrIncomplete
	}
	r.busy = true
	return challenge, nil
}

// FinishSuggestions caches suggestions and moves to StageChoose.
func (c *Controller) FinishSuggestions(suggestions []ai.ReframeSuggestion) {
	r := &c.Reframe
	r.busy = false
	r.suggestions = append([]ai.ReframeSuggestion{}, suggestions...)
	r.chosen = -1
	r.Text = ""
	r.stage = StageChoose
}

// RequestSuggestions fetches suggestions synchronously.
func (c *Controller) RequestSuggestions(ctx context.Context) error {
	challenge, err := c.BeginSuggestions()
	if err != nil {
		return err
	}
	c.FinishSuggestions(c.journal.SuggestReframes(ctx, challenge))
	return nil
}

// Choose picks suggestion i and copies its explanation into Text.
func (c *Controller) Choose(i int) error {
	r := &c.Reframe
	if r.Stage() != StageChoose {
		return ErrStage
	}
	if i < 0 || i >= len(r.suggestions) {
		return ErrIncomplete
	}
	r.chosen = i
	r.Text = r.suggestions[i].Explanation
	r.stage = StageEdit
	return nil
}

// WriteOwn skips the suggestions and starts from an empty reframe.
func (c *Controller) WriteOwn() error {
	r := &c.Reframe
	if r.Stage() != StageChoose {
		return ErrStage
	}
	r.chosen = -1
	r.Text = ""
	r.stage = StageEdit
	return nil
}

// Back steps the flow back. From StageEdit the suggestions are kept; from
// StageChoose they are discarded.
func (c *Controller) Back() {
	r := &c.Reframe
	switch r.Stage() {
	case StageEdit:
		r.stage = StageChoose
	case StageChoose:
		r.suggestions = nil
		r.chosen = -1
		r.Text = ""
		r.stage = StageChallenge
	}
}

// SaveReframe stores the reframe, resets the flow and switches to history.
func (c *Controller) SaveReframe(ctx context.Context) (*entry.Entry, error) {
	r := &c.Reframe
	if r.Stage() != StageEdit {
		return nil, ErrStage
	}
	if !r.CanSave() {
		return nil, ErrIncomplete
	}
	perspective := r.Perspective()
	if perspective == "" {
		perspective = app.ReframeLabel
	}
	e, err := c.journal.SaveReframe(ctx, r.Challenge, r.Text, perspective)
	if err != nil {
		return nil, err
	}
	r.reset()
	c.Navigate(ViewHistory)
	return e, nil
}
