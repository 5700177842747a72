package timeutil

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

const (
	// DefaultWindow is the history window used when none is provided.
	DefaultWindow = "1w"
)

var (
	windowPattern = regexp.MustCompile(`^\s*(\d+)\s*([a-z]+)`)
	unitDays      = map[string]int{
		"d":      1,
		"day":    1,
		"days":   1,
		"w":      7,
		"wk":     7,
		"wks":    7,
		"week":   7,
		"weeks":  7,
		"m":      30,
		"mo":     30,
		"month":  30,
		"months": 30,
		"y":      365,
		"yr":     365,
		"year":   365,
		"years":  365,
	}
)

// ParseWindow parses a human-friendly calendar window such as "3d", "2w" or
// "1w3d" into a number of days and its canonical label. Journal entries carry
// day-granular dates, so sub-day units are rejected. Empty input yields the
// default one-week window.
func ParseWindow(input string) (int, string, error) {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		trimmed = DefaultWindow
	}

	remaining := strings.ToLower(trimmed)
	total := 0
	for len(remaining) > 0 {
		matches := windowPattern.FindStringSubmatch(remaining)
		if len(matches) != 3 {
			return 0, "", fmt.Errorf("invalid window segment %q", strings.TrimSpace(remaining))
		}
		value, err := strconv.Atoi(matches[1])
		if err != nil {
			return 0, "", fmt.Errorf("invalid window value %q: %w", matches[1], err)
		}
		days, ok := unitDays[matches[2]]
		if !ok {
			return 0, "", fmt.Errorf("unsupported window unit %q", matches[2])
		}
		total += value * days
		remaining = remaining[len(matches[0]):]
	}

	if total <= 0 {
		return 0, "", fmt.Errorf("window must be at least one day")
	}
	return total, FormatWindow(total), nil
}

// FormatWindow renders a day count with week/day tokens.
func FormatWindow(days int) string {
	if days <= 0 {
		return "0d"
	}
	var b strings.Builder
	if w := days / 7; w > 0 {
		fmt.Fprintf(&b, "%dw", w)
	}
	if d := days % 7; d > 0 {
		fmt.Fprintf(&b, "%dd", d)
	}
	return b.String()
}

// WindowStart returns the first calendar date included in a window of days
// ending on now's date.
func WindowStart(now time.Time, days int) string {
	return AddDays(Today(now), -(days - 1))
}
