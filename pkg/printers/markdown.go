package printers

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"

	"tableflip.dev/positivity/pkg/entry"
)

// HistoryMarkdown renders entries as a markdown document.
func HistoryMarkdown(entries []*entry.Entry) string {
	var b strings.Builder
	b.WriteString("# My Journey\n\n")
	if len(entries) == 0 {
		fmt.Fprintf(&b, "_%s_\n\n%s\n", EmptyHistoryTitle, EmptyHistoryHint)
		return b.String()
	}
	for _, e := range entries {
		if e == nil {
			continue
		}
		fmt.Fprintf(&b, "## %s", e.Created.Local().Format(LayoutLongDate))
		if e.Kind() == entry.KindReframe {
			b.WriteString(" · Reframe")
		}
		if e.Sentiment != "" {
			fmt.Fprintf(&b, " · _%s_", e.Sentiment)
		}
		b.WriteString("\n\n")

		switch body := e.Body.(type) {
		case *entry.Reframe:
			fmt.Fprintf(&b, "**The Challenge:** %s\n\n", body.Challenge)
			fmt.Fprintf(&b, "**New Perspective:** %s\n\n", body.Reframe)
		case *entry.Gratitude:
			for i, item := range body.Items {
				fmt.Fprintf(&b, "%d. %s\n", i+1, item)
			}
			b.WriteString("\n")
		}
		if e.Insight != "" {
			fmt.Fprintf(&b, "> %s\n\n", e.Insight)
		}
		if len(e.Tags) > 0 {
			tags := make([]string, 0, len(e.Tags))
			for _, t := range e.Tags {
				tags = append(tags, "`#"+t+"`")
			}
			b.WriteString(strings.Join(tags, " "))
			b.WriteString("\n\n")
		}
	}
	return b.String()
}

// RenderMarkdown styles md for the terminal. style is a glamour standard
// style name such as "dark", "light" or "notty".
func RenderMarkdown(md, style string, width int) (string, error) {
	if style == "" {
		style = "dark"
	}
	if width <= 0 {
		width = DefaultWidth
	}
	renderer, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return "", fmt.Errorf("printers: markdown renderer: %w", err)
	}
	return renderer.Render(md)
}
