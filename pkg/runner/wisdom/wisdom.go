package wisdom

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/muesli/reflow/wordwrap"
	"gopkg.in/yaml.v3"

	"tableflip.dev/positivity/pkg/app"
	"tableflip.dev/positivity/pkg/printers"
)

// Wisdom prints the daily wisdom line.
type Wisdom struct {
	Service *app.Service
	Format  printers.Format
	Width   int
	Out     io.Writer
}

type view struct {
	Wisdom   string `json:"wisdom" yaml:"wisdom"`
	Provider string `json:"provider" yaml:"provider"`
}

func (w *Wisdom) Do(ctx context.Context) error {
	out := w.Out
	if out == nil {
		out = os.Stdout
	}
	text := w.Service.DailyWisdom(ctx)

	v := view{Wisdom: text}
	if w.Service.AI != nil {
		v.Provider = w.Service.AI.ProviderName()
	}
	switch w.Format {
	case printers.FormatJSON:
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case printers.FormatYAML:
		enc := yaml.NewEncoder(out)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("wisdom: encode: %w", err)
		}
		return enc.Close()
	}

	width := w.Width
	if width <= 0 {
		width = printers.DefaultWidth
	}
	_, _ = color.New(color.Faint, color.Underline).Fprintln(out, "Daily Wisdom")
	_, _ = color.New(color.Italic).Fprintln(out, wordwrap.String(text, width))
	return nil
}
