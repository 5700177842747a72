// Package timeutil holds calendar-date helpers shared by the stats, store and
// CLI layers. Dates are plain YYYY-MM-DD strings in the evaluator's zone.
package timeutil

import (
	"time"
)

// LayoutDate is the persisted calendar date layout.
const LayoutDate = "2006-01-02"

// DateString formats the calendar date of t in t's location.
func DateString(t time.Time) string {
	return t.Format(LayoutDate)
}

// Today returns the calendar date of now in now's location.
func Today(now time.Time) string {
	return DateString(now)
}

// Yesterday returns the calendar date before now's date.
func Yesterday(now time.Time) string {
	return PreviousDay(DateString(now))
}

// ParseDate parses a YYYY-MM-DD string as a zone-less calendar date.
func ParseDate(s string) (time.Time, error) {
	return time.Parse(LayoutDate, s)
}

// PreviousDay returns the calendar date one day before date. Arithmetic runs
// on UTC calendar dates so DST transitions cannot skip or repeat a day. An
// unparsable date yields "".
func PreviousDay(date string) string {
	return AddDays(date, -1)
}

// AddDays shifts a calendar date by n days.
func AddDays(date string, n int) string {
	t, err := ParseDate(date)
	if err != nil {
		return ""
	}
	return t.AddDate(0, 0, n).Format(LayoutDate)
}

// DaysBetween counts calendar days from a to b (b - a).
func DaysBetween(a, b string) (int, error) {
	ta, err := ParseDate(a)
	if err != nil {
		return 0, err
	}
	tb, err := ParseDate(b)
	if err != nil {
		return 0, err
	}
	return int(tb.Sub(ta).Hours() / 24), nil
}
