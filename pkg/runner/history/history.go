package history

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/fatih/color"

	"tableflip.dev/positivity/pkg/app"
	"tableflip.dev/positivity/pkg/entry"
	"tableflip.dev/positivity/pkg/printers"
	"tableflip.dev/positivity/pkg/store"
	"tableflip.dev/positivity/pkg/timeutil"
)

// History prints the journal, newest first.
type History struct {
	Service *app.Service
	// Last limits output to a window such as "1w" or "3d". Empty means all.
	Last   string
	Follow bool
	Format printers.Format
	// Style is the glamour style used for markdown output.
	Style  string
	Width  int
	ShowID bool
	Out    io.Writer
}

func (h *History) out() io.Writer {
	if h.Out == nil {
		return os.Stdout
	}
	return h.Out
}

func (h *History) Do(ctx context.Context) error {
	entries, err := h.entries()
	if err != nil {
		return err
	}
	if err := h.print(entries, true); err != nil {
		return err
	}
	if !h.Follow {
		return nil
	}
	return h.follow(ctx, entries)
}

func (h *History) entries() ([]*entry.Entry, error) {
	if h.Last == "" {
		return h.Service.Entries()
	}
	days, _, err := timeutil.ParseWindow(h.Last)
	if err != nil {
		return nil, fmt.Errorf("history: --last: %w", err)
	}
	return h.Service.Since(days)
}

func (h *History) print(entries []*entry.Entry, header bool) error {
	out := h.out()
	switch h.Format {
	case printers.FormatJSON:
		return printers.EntriesJSON(out, entries)
	case printers.FormatYAML:
		return printers.EntriesYAML(out, entries)
	case printers.FormatMarkdown:
		rendered, err := printers.RenderMarkdown(printers.HistoryMarkdown(entries), h.Style, h.Width)
		if err != nil {
			return err
		}
		_, err = io.WriteString(out, rendered)
		return err
	}

	pp := &printers.PrettyPrint{Out: out, Width: h.Width, ShowID: h.ShowID}
	if header {
		title := "My Journey"
		if h.Last != "" {
			_, label, _ := timeutil.ParseWindow(h.Last)
			title = fmt.Sprintf("My Journey (last %s)", label)
		}
		pp.TitleWithCount(title, len(entries))
	}
	pp.History(entries...)
	return nil
}

// follow prints entries that appear after the initial listing until ctx is
// done.
func (h *History) follow(ctx context.Context, initial []*entry.Entry) error {
	events, err := h.Service.Watch(ctx)
	if err != nil {
		return fmt.Errorf("history: watch: %w", err)
	}
	seen := make(map[string]bool, len(initial))
	for _, e := range initial {
		seen[e.ID] = true
	}
	if h.Format == printers.FormatText {
		_, _ = color.New(color.Faint).Fprintln(h.out(), "Watching for new entries, ctrl+c to stop.")
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if ev.Type == store.EventWatchError {
				slog.Debug("history: watcher unsure, reloading", slog.String("event", ev.Type.String()))
			}
			if err := h.Service.Reload(ctx); err != nil {
				slog.Warn("history: reload", slog.String("error", err.Error()))
				continue
			}
			fresh, err := h.entries()
			if err != nil {
				return err
			}
			var added []*entry.Entry
			for _, e := range fresh {
				if !seen[e.ID] {
					seen[e.ID] = true
					added = append(added, e)
				}
			}
			if len(added) == 0 {
				continue
			}
			if err := h.print(added, false); err != nil {
				return err
			}
		}
	}
}
