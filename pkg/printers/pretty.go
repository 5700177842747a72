// Package printers renders journal entries and insights for the terminal.
package printers

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/muesli/reflow/indent"
	"github.com/muesli/reflow/wordwrap"

	"tableflip.dev/positivity/pkg/entry"
)

const (
	DefaultWidth = 80
	// LayoutLongDate matches the history view date heading.
	LayoutLongDate = "Monday, January 2, 2006"

	EmptyHistoryTitle = "Your journey begins with the first step."
	EmptyHistoryHint  = "Start by adding your first entry today."
)

type PrettyPrint struct {
	// Out defaults to os.Stdout.
	Out    io.Writer
	Width  int
	ShowID bool
}

func (pp *PrettyPrint) out() io.Writer {
	if pp.Out == nil {
		return os.Stdout
	}
	return pp.Out
}

func (pp *PrettyPrint) width() int {
	if pp.Width <= 0 {
		return DefaultWidth
	}
	return pp.Width
}

func (pp *PrettyPrint) NewLine() {
	_, _ = fmt.Fprintln(pp.out(), "")
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)
	_, _ = t.Fprintln(pp.out(), title)
}

func (pp *PrettyPrint) TitleWithCount(title string, count int) {
	t := color.New(color.Bold, color.Underline)
	c := color.New(color.Faint)

	_, _ = t.Fprint(pp.out(), title)
	_, _ = c.Fprintf(pp.out(), " - %d", count)

	switch count {
	case 1:
		_, _ = c.Fprintln(pp.out(), " entry")
	default:
		_, _ = c.Fprintln(pp.out(), " entries")
	}
}

// History prints entries in the order given, newest first by convention.
func (pp *PrettyPrint) History(entries ...*entry.Entry) {
	if len(entries) == 0 {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Fprintln(pp.out(), EmptyHistoryTitle)
		_, _ = f.Fprintln(pp.out(), EmptyHistoryHint)
		pp.NewLine()
		return
	}
	for _, e := range entries {
		if e == nil {
			continue
		}
		pp.Entry(e)
	}
}

// Entry prints one entry as a card.
func (pp *PrettyPrint) Entry(e *entry.Entry) {
	w := pp.out()
	date := color.New(color.Bold)
	faint := color.New(color.Faint)
	label := color.New(color.Faint, color.Underline)

	_, _ = date.Fprint(w, e.Created.Local().Format(LayoutLongDate))
	if e.Kind() == entry.KindReframe {
		_, _ = color.New(color.FgBlue).Fprint(w, " [Reframe]")
	}
	if e.Sentiment != "" {
		_, _ = SentimentColor(e.Sentiment).Fprintf(w, " (%s)", e.Sentiment)
	}
	if pp.ShowID {
		_, _ = color.New(color.FgHiYellow, color.Italic, color.Faint).Fprintf(w, "  %s", e.ID)
	}
	_, _ = fmt.Fprintln(w)

	switch b := e.Body.(type) {
	case *entry.Reframe:
		_, _ = color.New(color.FgRed).Fprintln(w, "  The Challenge")
		_, _ = fmt.Fprintln(w, pp.block(b.Challenge, 4))
		_, _ = color.New(color.FgGreen).Fprintln(w, "  New Perspective")
		_, _ = fmt.Fprintln(w, pp.block(b.Reframe, 4))
	case *entry.Gratitude:
		for i, item := range b.Items {
			text := pp.block(item, 5)
			_, _ = fmt.Fprintf(w, "  %d. %s\n", i+1, strings.TrimLeft(text, " "))
		}
	}

	if e.Insight != "" {
		_, _ = label.Fprintln(w, "  Insight")
		_, _ = color.New(color.Italic).Fprintln(w, pp.block(e.Insight, 4))
	}
	if len(e.Tags) > 0 {
		tags := make([]string, 0, len(e.Tags))
		for _, t := range e.Tags {
			tags = append(tags, "#"+t)
		}
		_, _ = faint.Fprintf(w, "  %s\n", strings.Join(tags, " "))
	}
	pp.NewLine()
}

// block wraps text to the printer width and indents every line.
func (pp *PrettyPrint) block(text string, pad int) string {
	limit := pp.width() - pad
	if limit < 20 {
		limit = 20
	}
	return indent.String(wordwrap.String(strings.TrimSpace(text), limit), uint(pad))
}

// SentimentColor is the accent used for a sentiment badge.
func SentimentColor(s entry.Sentiment) *color.Color {
	switch s {
	case entry.Joyful:
		return color.New(color.FgHiYellow)
	case entry.Grateful:
		return color.New(color.FgHiMagenta)
	case entry.Peaceful:
		return color.New(color.FgHiCyan)
	case entry.Resilient:
		return color.New(color.FgHiRed)
	case entry.Hopeful:
		return color.New(color.FgHiGreen)
	default:
		return color.New(color.Faint)
	}
}
