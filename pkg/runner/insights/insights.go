package insights

import (
	"context"
	"io"
	"os"

	"tableflip.dev/positivity/pkg/app"
	"tableflip.dev/positivity/pkg/printers"
)

// Insights prints streak and sentiment statistics.
type Insights struct {
	Service *app.Service
	Format  printers.Format
	Width   int
	Out     io.Writer
}

func (i *Insights) Do(_ context.Context) error {
	out := i.Out
	if out == nil {
		out = os.Stdout
	}
	stats, err := i.Service.Stats()
	if err != nil {
		return err
	}

	switch i.Format {
	case printers.FormatJSON:
		return printers.StatsJSON(out, stats)
	case printers.FormatYAML:
		return printers.StatsYAML(out, stats)
	}

	entries, err := i.Service.Entries()
	if err != nil {
		return err
	}
	pp := &printers.PrettyPrint{Out: out, Width: i.Width}
	pp.Title("Insights")
	pp.Insights(stats, entries, i.Service.CurrentTime())
	return nil
}
