package app

import (
	"sort"
	"time"

	"github.com/samber/lo"

	"tableflip.dev/positivity/pkg/entry"
	"tableflip.dev/positivity/pkg/timeutil"
)

// StreakBarSlots is the number of days the streak bar shows.
const StreakBarSlots = 5

// UserStats summarizes the log for the insights view.
type UserStats struct {
	TotalEntries  int
	CurrentStreak int
	// LastEntryDate is the date of the most recently created entry, empty
	// when there are none.
	LastEntryDate  string
	JournaledToday bool
	// Sentiments counts entries per sentiment; entries without one are
	// skipped.
	Sentiments map[entry.Sentiment]int
	StreakBar  [StreakBarSlots]bool
}

// HasLastEntry reports whether any entry exists.
func (u UserStats) HasLastEntry() bool {
	return u.LastEntryDate != ""
}

// Stats derives UserStats from entries as seen at now. "Today" and
// "yesterday" are calendar dates in now's location.
func Stats(entries []*entry.Entry, now time.Time) UserStats {
	entries = lo.Filter(entries, func(e *entry.Entry, _ int) bool { return e != nil })

	stats := UserStats{
		TotalEntries:  len(entries),
		CurrentStreak: Streak(entries, now),
		Sentiments:    make(map[entry.Sentiment]int),
	}

	if latest, ok := mostRecentlyCreated(entries); ok {
		stats.LastEntryDate = latest.Date
	}
	stats.JournaledToday = stats.LastEntryDate == timeutil.Today(now)

	for _, e := range entries {
		if e.Sentiment != "" {
			stats.Sentiments[e.Sentiment]++
		}
	}
	for i := range stats.StreakBar {
		stats.StreakBar[i] = i < stats.CurrentStreak
	}
	return stats
}

// Streak counts consecutive calendar days ending at the most recent entry
// date. The streak is alive only if that date is today or yesterday.
func Streak(entries []*entry.Entry, now time.Time) int {
	dates := distinctDates(entries)
	if len(dates) == 0 {
		return 0
	}

	mostRecent := dates[0]
	if mostRecent != timeutil.Today(now) && mostRecent != timeutil.Yesterday(now) {
		return 0
	}

	streak := 1
	accepted := mostRecent
	for _, d := range dates[1:] {
		if gap, err := timeutil.DaysBetween(d, accepted); err != nil || gap != 1 {
			break
		}
		streak++
		accepted = d
	}
	return streak
}

// distinctDates returns the unique entry dates, newest first.
func distinctDates(entries []*entry.Entry) []string {
	dates := lo.Uniq(lo.FilterMap(entries, func(e *entry.Entry, _ int) (string, bool) {
		if e == nil || e.Date == "" {
			return "", false
		}
		return e.Date, true
	}))
	sort.Sort(sort.Reverse(sort.StringSlice(dates)))
	return dates
}

func mostRecentlyCreated(entries []*entry.Entry) (*entry.Entry, bool) {
	if len(entries) == 0 {
		return nil, false
	}
	return lo.MaxBy(entries, func(a, b *entry.Entry) bool {
		return a.Created.After(b.Created.Time)
	}), true
}
