package overlay

import (
	"regexp"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"
)

// Placement positions an overlay. Horizontal and Vertical use Lip Gloss
// positions, so lipgloss.Center centres the overlay.
type Placement struct {
	Horizontal lipgloss.Position
	Vertical   lipgloss.Position
	MarginX    int
	MarginY    int
}

// Centered is the placement used for help and confirmation boxes.
var Centered = Placement{Horizontal: lipgloss.Center, Vertical: lipgloss.Center}

// Compose draws foreground on top of a width by height background. Background
// cells left of the overlay keep their styling; cells to its right are kept as
// plain text.
func Compose(background string, width, height int, foreground string, placement Placement) string {
	bgLines := normalize(background, width, height)
	if foreground == "" || width <= 0 || height <= 0 {
		return strings.Join(bgLines, "\n")
	}

	fgLines := strings.Split(foreground, "\n")
	overlayWidth := min(lipgloss.Width(foreground), width)
	overlayHeight := min(len(fgLines), height)

	offsetX := offset(width, overlayWidth, placement.Horizontal, placement.MarginX)
	offsetY := offset(height, overlayHeight, placement.Vertical, placement.MarginY)

	for row := 0; row < overlayHeight; row++ {
		y := offsetY + row
		base := bgLines[y]
		prefix := pad(truncate.String(base, uint(offsetX)), offsetX)
		suffix := plainSlice(base, offsetX+overlayWidth, width)
		bgLines[y] = prefix + pad(truncate.String(fgLines[row], uint(overlayWidth)), overlayWidth) + suffix
	}
	return strings.Join(bgLines, "\n")
}

func offset(total, size int, pos lipgloss.Position, margin int) int {
	free := total - size
	if free <= 0 {
		return 0
	}
	o := int(float64(free) * float64(pos))
	switch {
	case pos <= 0:
		o += margin
	case pos >= 1:
		o -= margin
	}
	return max(0, min(o, free))
}

func normalize(view string, width, height int) []string {
	lines := strings.Split(view, "\n")
	if len(lines) > height {
		lines = lines[:height]
	}
	for len(lines) < height {
		lines = append(lines, "")
	}
	for i := range lines {
		lines[i] = pad(truncate.String(lines[i], uint(max(width, 0))), width)
	}
	return lines
}

func pad(s string, width int) string {
	if w := lipgloss.Width(s); w < width {
		return s + strings.Repeat(" ", width-w)
	}
	return s
}

var ansiPattern = regexp.MustCompile(`\x1b\[[0-9;:]*[A-Za-z~]`)

func plainSlice(s string, start, end int) string {
	runes := []rune(ansiPattern.ReplaceAllString(s, ""))
	var b strings.Builder
	col := 0
	for _, r := range runes {
		w := lipgloss.Width(string(r))
		if col >= start && col+w <= end {
			b.WriteRune(r)
		}
		col += w
		if col >= end {
			break
		}
	}
	return b.String()
}
