package write

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"

	"tableflip.dev/positivity/pkg/app"
	"tableflip.dev/positivity/pkg/controller"
	"tableflip.dev/positivity/pkg/entry"
	"tableflip.dev/positivity/pkg/printers"
	"tableflip.dev/positivity/pkg/prompt"
)

// Write records today's three good things.
type Write struct {
	Service *app.Service
	// Items are used as given unless Interactive is set.
	Items       []string
	Interactive bool
	Prompter    *prompt.Prompter
	Format      printers.Format
	Out         io.Writer
}

func (w *Write) out() io.Writer {
	if w.Out == nil {
		return os.Stdout
	}
	return w.Out
}

func (w *Write) Do(ctx context.Context) error {
	c := controller.New(w.Service)

	if w.Interactive {
		if w.Prompter == nil {
			w.Prompter = &prompt.Prompter{}
		}
		items, err := w.Prompter.Gratitude()
		if err != nil {
			return err
		}
		c.Gratitude.Items = items
	} else {
		if len(w.Items) != 3 {
			return fmt.Errorf("write: %w: exactly three good things are needed, got %d", controller.ErrIncomplete, len(w.Items))
		}
		copy(c.Gratitude.Items[:], w.Items)
	}

	if !c.Gratitude.CanSubmit() {
		return fmt.Errorf("write: %w: each good thing must be non-blank and at most %d characters", controller.ErrIncomplete, app.MaxItemLength)
	}

	e, err := c.SubmitGratitude(ctx)
	if err != nil {
		return err
	}
	return render(w.out(), w.Format, e, "Your positivity has been recorded.")
}

func render(out io.Writer, format printers.Format, e *entry.Entry, note string) error {
	switch format {
	case printers.FormatJSON:
		return printers.EntriesJSON(out, []*entry.Entry{e})
	case printers.FormatYAML:
		return printers.EntriesYAML(out, []*entry.Entry{e})
	}
	_, _ = color.New(color.Bold, color.FgGreen).Fprintln(out, "Wonderful!")
	_, _ = color.New(color.Faint).Fprintln(out, note)
	_, _ = fmt.Fprintln(out)
	pp := &printers.PrettyPrint{Out: out}
	pp.Entry(e)
	return nil
}
