package printers

import (
	"fmt"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/positivity/pkg/app"
	"tableflip.dev/positivity/pkg/entry"
	"tableflip.dev/positivity/pkg/timeutil"
)

const (
	JournaledToday    = "You've completed your journal today!"
	NotJournaledToday = "You haven't journaled yet today."
	NoSentimentData   = "Not enough data yet."
)

// TodayMessage is the daily status line for stats.
func TodayMessage(s app.UserStats) string {
	if s.JournaledToday {
		return JournaledToday
	}
	return NotJournaledToday
}

// StreakBar renders the streak slots as filled and empty dots.
func StreakBar(s app.UserStats) string {
	var b strings.Builder
	for i, on := range s.StreakBar {
		if i > 0 {
			b.WriteString(" ")
		}
		if on {
			b.WriteString("●")
		} else {
			b.WriteString("○")
		}
	}
	return b.String()
}

// Insights prints the summary table, the sentiment distribution and the
// journaled days of now's month.
func (pp *PrettyPrint) Insights(s app.UserStats, entries []*entry.Entry, now time.Time) {
	w := pp.out()

	tbl := uitable.New()
	tbl.MaxColWidth = uint(pp.width())
	tbl.AddRow("Total Entries", s.TotalEntries)
	tbl.AddRow("Day Streak", s.CurrentStreak)
	tbl.AddRow("", StreakBar(s))
	if s.HasLastEntry() {
		tbl.AddRow("Last Entry", s.LastEntryDate)
	}
	_, _ = fmt.Fprintln(w, tbl)
	pp.NewLine()

	pp.Title("Emotional Landscape")
	if len(s.Sentiments) == 0 {
		_, _ = color.New(color.Faint, color.Italic).Fprintln(w, NoSentimentData)
	} else {
		dist := uitable.New()
		for _, sentiment := range entry.Sentiments() {
			n, ok := s.Sentiments[sentiment]
			if !ok {
				continue
			}
			dist.AddRow(SentimentColor(sentiment).Sprint(sentiment), strings.Repeat("▇", n), n)
		}
		_, _ = fmt.Fprintln(w, dist)
	}
	pp.NewLine()

	pp.Month(now, entries...)

	status := color.New(color.Bold)
	if !s.JournaledToday {
		status = color.New(color.Faint)
	}
	_, _ = status.Fprintln(w, TodayMessage(s))
}

const weekWidth = len("11 12 13 14 15 16 17") // an example week

// Month prints a calendar of then's month, highlighting days with entries.
func (pp *PrettyPrint) Month(then time.Time, entries ...*entry.Entry) {
	journaled := make(map[string]bool, len(entries))
	for _, e := range entries {
		if e != nil {
			journaled[e.Date] = true
		}
	}

	w := pp.out()
	first := time.Date(then.Year(), then.Month(), 1, 12, 0, 0, 0, then.Location())
	tf := color.New(color.Italic)

	m := first.Format("January 2006")
	mid := (weekWidth - len(m)) / 2
	if mid < 0 {
		mid = 0
	}
	_, _ = tf.Fprintf(w, "%s%s\n", strings.Repeat(" ", mid), m)

	// Pad out the start of the month.
	d := first.Weekday()
	_, _ = fmt.Fprint(w, strings.Repeat("   ", int(d)))

	off := color.New(color.Faint)
	on := color.New(color.Bold, color.FgHiGreen)
	today := timeutil.Today(then)

	for day := first; day.Month() == first.Month(); day = day.AddDate(0, 0, 1) {
		date := timeutil.DateString(day)
		printer := off
		if journaled[date] {
			printer = on
		}
		if date == today {
			printer = color.New(append([]color.Attribute{color.Underline}, attrsFor(journaled[date])...)...)
		}
		_, _ = printer.Fprintf(w, "%2d ", day.Day())

		d++
		if d > time.Saturday {
			d = time.Sunday
			_, _ = fmt.Fprint(w, "\n")
		}
	}
	_, _ = fmt.Fprint(w, "\n\n")
}

func attrsFor(journaled bool) []color.Attribute {
	if journaled {
		return []color.Attribute{color.Bold, color.FgHiGreen}
	}
	return []color.Attribute{color.Faint}
}
