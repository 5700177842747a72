package controller

import (
	"context"

	"tableflip.dev/positivity/pkg/ai"
	"tableflip.dev/positivity/pkg/app"
	"tableflip.dev/positivity/pkg/entry"
)

// GratitudeForm holds the three good things being written.
type GratitudeForm struct {
	Items [3]string
	busy  bool
}

// SetItem replaces item i; out of range is ignored.
func (f *GratitudeForm) SetItem(i int, text string) {
	if i < 0 || i >= len(f.Items) {
		return
	}
	f.Items[i] = text
}

// Valid reports whether every item is non-blank and within the length limit.
func (f *GratitudeForm) Valid() bool {
	_, err := app.CleanItems(f.Items)
	return err == nil
}

// CanSubmit reports whether submit is available.
func (f *GratitudeForm) CanSubmit() bool {
	return !f.busy && f.Valid()
}

// Busy reports whether an analysis is in flight.
func (f *GratitudeForm) Busy() bool {
	return f.busy
}

// Remaining is how many characters item i may still grow by.
func (f *GratitudeForm) Remaining(i int) int {
	if i < 0 || i >= len(f.Items) {
		return 0
	}
	return app.MaxItemLength - len([]rune(f.Items[i]))
}

func (f *GratitudeForm) reset() {
	*f = GratitudeForm{}
}

// BeginGratitude validates the form and marks it busy. The returned items are
// trimmed and ready for analysis.
func (c *Controller) BeginGratitude() ([3]string, error) {
	if c.Gratitude.busy {
		return [3]string{}, ErrBusy
	}
	items, err := app.CleanItems(c.Gratitude.Items)
	if err != nil {
		return [3]string{}, ErrIncomplete
	}
	c.Gratitude.busy = true
	return items, nil
}

// FinishGratitude stores items with analysis, clears the form and switches to
// the history view. On failure the form keeps its text and becomes available
// again.
func (c *Controller) FinishGratitude(ctx context.Context, items [3]string, analysis ai.AnalysisResult) (*entry.Entry, error) {
	c.Gratitude.busy = false
	e, err := c.journal.RecordGratitude(ctx, items, analysis)
	if err != nil {
		return nil, err
	}
	c.Gratitude.reset()
	c.Navigate(ViewHistory)
	return e, nil
}

// SubmitGratitude runs the whole submission synchronously.
func (c *Controller) SubmitGratitude(ctx context.Context) (*entry.Entry, error) {
	items, err := c.BeginGratitude()
	if err != nil {
		return nil, err
	}
	return c.FinishGratitude(ctx, items, c.journal.AnalyzeGratitude(ctx, items))
}
